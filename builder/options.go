// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go — functional options and resolved configuration.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; the package-level math/rand source is never used.

package builder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvlath-apsp/matrix"
)

// Default generator weight range (inclusive).
const (
	DefaultMinWeight int32 = 1
	DefaultMaxWeight int32 = 100
)

// BuilderOption customizes a generator call before sampling begins.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved set of knobs for one generator call.
// It is passed by value; the rng pointer is the only shared state.
type builderConfig struct {
	rng  *rand.Rand // source of all random draws; never nil after resolve
	minW int32      // smallest edge weight (≥1)
	maxW int32      // largest edge weight (≥minW)
}

// WithRand supplies an explicit RNG. The generator advances its state.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a private *rand.Rand seeded with seed.
// Use this in tests and benchmarks to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightRange sets the inclusive edge-weight range.
// Panics unless 1 ≤ minW ≤ maxW < matrix.Inf.
func WithWeightRange(minW, maxW int32) BuilderOption {
	if minW < 1 || maxW < minW || maxW >= matrix.Inf {
		panic(fmt.Sprintf("builder: WithWeightRange requires 1 ≤ min ≤ max < Inf, got min=%d, max=%d", minW, maxW))
	}
	return func(c *builderConfig) {
		c.minW, c.maxW = minW, maxW
	}
}

// newBuilderConfig applies opts in order (last wins) over the defaults.
// Without WithSeed/WithRand a fresh time-seeded source is created.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		minW: DefaultMinWeight,
		maxW: DefaultMaxWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
