// Package matrix provides the dense distance grid shared by the generator and
// the all-pairs shortest-path engine.
//
// The package provides:
//
//   - Distance: an n×n row-major int32 matrix with a zero diagonal and the Inf
//     sentinel for missing edges.
//   - Row views (Row) for exclusive per-worker ownership, and value snapshots
//     (CopyRow) for read-only sharing across workers.
//   - Validators for the diagonal, generator weight range and the triangle
//     inequality that every relaxed matrix satisfies.
//
// Errors are package-level sentinels (ErrBadShape, ErrOutOfRange, ...);
// match them with errors.Is.
package matrix
