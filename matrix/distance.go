// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Distance is the canonical n×n all-pairs distance grid used by the
//     generator and the relaxation engine.
//   - Storage is one flat row-major []int32 (an arena of rows); Row(i) hands out
//     a live sub-slice so a worker can own whole rows without per-cell locking.
//
// Contract:
//   - Inf means "no edge / unreachable" and is never a real weight.
//   - The diagonal is 0 from construction on; Set refuses to change it.
//   - Off-diagonal cells hold Inf or a non-negative finite weight < Inf.

package matrix

import (
	"fmt"
	"strings"
)

// Inf is the sentinel for "no edge / no path". Two finite weights bounded by
// 100·(n-1) never reach it for any n a benchmark can hold in memory.
const Inf int32 = 1_000_000_000

// Operation tags for error wrapping.
const (
	opNewDistance = "NewDistance"
	opFromRows    = "FromRows"
	opAt          = "Distance.At"
	opSet         = "Distance.Set"
)

// Distance is a square, row-major matrix of int32 path lengths.
type Distance struct {
	n    int     // order (rows == cols)
	data []int32 // flat backing storage, len == n*n
}

// NewDistance allocates an n×n matrix with 0 on the diagonal and Inf elsewhere.
// Returns ErrBadShape for n < 1.
// Complexity: O(n²) time and memory.
func NewDistance(n int) (*Distance, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", opNewDistance, n, ErrBadShape)
	}

	data := make([]int32, n*n)
	for i := range data {
		data[i] = Inf
	}
	for i := 0; i < n; i++ {
		data[i*n+i] = 0 // distance to self
	}

	return &Distance{n: n, data: data}, nil
}

// FromRows copies literal rows into a new Distance.
// Every row must have len(rows) entries, the diagonal must be 0, and every
// off-diagonal cell must lie in [0, Inf] (ErrInvalidWeight otherwise).
func FromRows(rows [][]int32) (*Distance, error) {
	n := len(rows)
	if n < 1 {
		return nil, fmt.Errorf("%s: %w", opFromRows, ErrBadShape)
	}

	d := &Distance{n: n, data: make([]int32, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w",
				opFromRows, i, len(row), n, ErrNonSquare)
		}
		if row[i] != 0 {
			return nil, fmt.Errorf("%s: d[%d][%d]=%d: %w", opFromRows, i, i, row[i], ErrNonZeroDiagonal)
		}
		for j, w := range row {
			if j != i && (w < 0 || w > Inf) {
				return nil, fmt.Errorf("%s: d[%d][%d]=%d: %w", opFromRows, i, j, w, ErrInvalidWeight)
			}
		}
		copy(d.data[i*n:(i+1)*n], row)
	}

	return d, nil
}

// Order returns n for an n×n matrix.
func (d *Distance) Order() int {
	return d.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (d *Distance) indexOf(op string, row, col int) (int, error) {
	if row < 0 || row >= d.n || col < 0 || col >= d.n {
		return 0, fmt.Errorf("%s(%d,%d): %w", op, row, col, ErrOutOfRange)
	}

	return row*d.n + col, nil
}

// At returns the weight stored at (row, col).
func (d *Distance) At(row, col int) (int32, error) {
	idx, err := d.indexOf(opAt, row, col)
	if err != nil {
		return 0, err
	}

	return d.data[idx], nil
}

// Set stores w at (row, col).
//
// Errors:
//   - ErrOutOfRange for bad indices.
//   - ErrNonZeroDiagonal for a non-zero write on the diagonal.
//   - ErrInvalidWeight for w < 0 or w > Inf.
func (d *Distance) Set(row, col int, w int32) error {
	idx, err := d.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	if row == col && w != 0 {
		return fmt.Errorf("%s(%d,%d,%d): %w", opSet, row, col, w, ErrNonZeroDiagonal)
	}
	if w < 0 || w > Inf {
		return fmt.Errorf("%s(%d,%d,%d): %w", opSet, row, col, w, ErrInvalidWeight)
	}
	d.data[idx] = w

	return nil
}

// Row returns the live slice backing row i (len n). Writes through it mutate
// the matrix; the caller is responsible for exclusive ownership while writing.
// Panics on an out-of-range i, like a slice index would.
func (d *Distance) Row(i int) []int32 {
	return d.data[i*d.n : (i+1)*d.n : (i+1)*d.n]
}

// CopyRow copies row k into dst and returns it. dst is reused when its
// capacity is at least n, otherwise a new slice is allocated.
func (d *Distance) CopyRow(k int, dst []int32) []int32 {
	if cap(dst) < d.n {
		dst = make([]int32, d.n)
	}
	dst = dst[:d.n]
	copy(dst, d.data[k*d.n:(k+1)*d.n])

	return dst
}

// Clone returns a deep copy.
// Complexity: O(n²).
func (d *Distance) Clone() *Distance {
	data := make([]int32, len(d.data))
	copy(data, d.data)

	return &Distance{n: d.n, data: data}
}

// Equal reports whether d and other have the same order and identical cells.
func (d *Distance) Equal(other *Distance) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.n != other.n {
		return false
	}
	for i, v := range d.data {
		if other.data[i] != v {
			return false
		}
	}

	return true
}

// Reachable reports whether a finite path i→j is recorded.
// Out-of-range indices report false.
func (d *Distance) Reachable(i, j int) bool {
	v, err := d.At(i, j)

	return err == nil && v != Inf
}

// EdgeCount returns the number of finite off-diagonal cells.
// Complexity: O(n²).
func (d *Distance) EdgeCount() int {
	var i, j, count int
	for i = 0; i < d.n; i++ {
		base := i * d.n
		for j = 0; j < d.n; j++ {
			if i != j && d.data[base+j] != Inf {
				count++
			}
		}
	}

	return count
}

// String renders one bracketed row per line; Inf prints as "∞".
func (d *Distance) String() string {
	var sb strings.Builder
	for i := 0; i < d.n; i++ {
		sb.WriteByte('[')
		for j, v := range d.Row(i) {
			if j > 0 {
				sb.WriteString(", ")
			}
			if v == Inf {
				sb.WriteString("∞")
			} else {
				fmt.Fprintf(&sb, "%d", v)
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
