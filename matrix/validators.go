// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical invariant checks for Distance: diagonal, generator weight range,
//     and the shortest-path fixed point (triangle inequality).
//   - Checks are pure and allocate nothing on success.
//
// Note:
//   - Each validator checks nil first, then walks cells in row-major order, so
//     the first reported coordinate is stable for a given matrix.

package matrix

import "fmt"

// ValidateNotNil returns ErrNilMatrix for a nil matrix.
func ValidateNotNil(d *Distance) error {
	if d == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateDiagonal ensures d[i][i] == 0 for every i.
// Complexity: O(n).
func ValidateDiagonal(d *Distance) error {
	if err := ValidateNotNil(d); err != nil {
		return err
	}
	for i := 0; i < d.n; i++ {
		if v := d.data[i*d.n+i]; v != 0 {
			return fmt.Errorf("ValidateDiagonal: d[%d][%d]=%d: %w", i, i, v, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateEdgeWeights ensures every off-diagonal cell is Inf or lies in
// [minW, maxW]. It also checks the diagonal.
// Complexity: O(n²).
func ValidateEdgeWeights(d *Distance, minW, maxW int32) error {
	if err := ValidateDiagonal(d); err != nil {
		return err
	}

	var i, j int
	var v int32
	for i = 0; i < d.n; i++ {
		base := i * d.n
		for j = 0; j < d.n; j++ {
			if i == j {
				continue
			}
			v = d.data[base+j]
			if v != Inf && (v < minW || v > maxW) {
				return fmt.Errorf("ValidateEdgeWeights: d[%d][%d]=%d not in [%d,%d]: %w",
					i, j, v, minW, maxW, ErrInvalidWeight)
			}
		}
	}

	return nil
}

// CheckTriangle verifies d[i][j] <= d[i][k] + d[k][j] for all i, j, k where
// both right-hand terms are finite. A relaxed matrix always passes.
// Complexity: O(n³).
func CheckTriangle(d *Distance) error {
	if err := ValidateNotNil(d); err != nil {
		return err
	}

	n := d.n
	var (
		i, j, k      int
		ik, kj, ij   int32
		baseI, baseK int
	)
	for i = 0; i < n; i++ {
		baseI = i * n
		for k = 0; k < n; k++ {
			ik = d.data[baseI+k]
			if ik == Inf {
				continue
			}
			baseK = k * n
			for j = 0; j < n; j++ {
				kj = d.data[baseK+j]
				if kj == Inf {
					continue
				}
				ij = d.data[baseI+j]
				// int64 sum keeps the check honest for unrelaxed inputs.
				if int64(ij) > int64(ik)+int64(kj) {
					return fmt.Errorf("CheckTriangle: d[%d][%d]=%d > d[%d][%d]+d[%d][%d]=%d: %w",
						i, j, ij, i, k, k, j, int64(ik)+int64(kj), ErrTriangleViolation)
				}
			}
		}
	}

	return nil
}
