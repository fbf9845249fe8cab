// Package builder generates synthetic inputs for the all-pairs shortest-path
// engine.
//
// RandomDistance produces a directed distance matrix with an exact number of
// edges, TargetEdges(n, density), sampled uniformly over ordered pairs with
// integer weights in [1,100] by default.
//
// Randomness is always explicit: pass WithSeed or WithRand for reproducible
// fixtures. Without either option a fresh time-seeded source is created for
// the call, and no package-level RNG state is shared between callers.
//
// Option constructors panic on meaningless values (WithRand(nil),
// WithWeightRange(0, 5)); the generator itself only returns sentinel errors.
package builder
