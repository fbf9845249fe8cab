// Package apsp computes all-pairs shortest paths on a dense distance matrix.
//
// Overview:
//
//   - FloydWarshall is the sequential baseline: classic k → i → j relaxation,
//     in place, O(n³) time and O(1) extra space.
//   - Engine runs the same recurrence on a fixed pool of worker goroutines
//     (github.com/panjf2000/ants/v2). For each intermediate node k it takes a
//     value snapshot of row k, splits the rows into disjoint ranges, lets each
//     worker relax only its own rows, and waits on a barrier before k+1.
//
// Guarantees:
//
//   - Determinism: for a fixed input, Engine.Relax produces a matrix identical
//     to FloydWarshall for every worker count and Partition.
//   - Race freedom without locks: every row has exactly one writer per
//     iteration and the shared snapshot is read-only while workers run.
//   - The pool is created once per Engine and reused across all iterations
//     and Relax calls; Release frees it.
//
// Error handling (sentinel errors):
//
//   - ErrBadWorkers:       worker count < 1.
//   - ErrEngineClosed:     Relax after Release.
//   - ErrUnknownPartition: ParsePartition with an unknown name.
//   - matrix.ErrNilMatrix: nil matrix argument.
//
// Example:
//
//	d, _ := builder.RandomDistance(512, 0.3, builder.WithSeed(1))
//	eng, err := apsp.NewEngine(8)
//	if err != nil { ... }
//	defer eng.Release()
//	if err := eng.Relax(d); err != nil { ... }
package apsp
