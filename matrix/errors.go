// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Callers match them via errors.Is; nothing here panics on
// user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Context is attached at the call site with fmt.Errorf("op: ...: %w", ErrX).
//
// ERROR PRIORITY:
// nil -> shape -> index -> diagonal -> weight range -> triangle.

var (
	// ErrNilMatrix indicates that a nil *Distance (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadShape is returned when the requested order is invalid (n < 1).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that literal rows did not form an n×n grid.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that a row or column index is outside [0,n).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonZeroDiagonal signals a diagonal cell other than 0.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrInvalidWeight signals a finite off-diagonal weight outside the
	// permitted range (or a negative value / a value above Inf).
	ErrInvalidWeight = errors.New("matrix: invalid edge weight")

	// ErrTriangleViolation signals that d[i][j] > d[i][k] + d[k][j] for some
	// finite pair, i.e. the matrix is not a shortest-path fixed point.
	ErrTriangleViolation = errors.New("matrix: triangle inequality violated")
)

// matrixErrorf prefixes err with the operation tag, keeping the sentinel
// reachable through errors.Is.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
