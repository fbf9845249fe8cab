// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - Sequential in-place Floyd–Warshall; the reference every parallel run is
//     compared against.
//
// Contract:
//   - matrix.Inf means "no path"; the diagonal is 0 (guaranteed by matrix).
//   - Strict improvement only, fixed k → i → j loop order.

package apsp

import (
	"fmt"

	"github.com/katalvlaran/lvlath-apsp/matrix"
)

const opFloydWarshall = "FloydWarshall"

// FloydWarshall computes all-pairs shortest paths in place on one goroutine.
//
// Reading d[k][j] live instead of from a snapshot is safe here: with a zero
// diagonal, row k cannot improve through k itself.
//
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(d *matrix.Distance) error {
	if err := matrix.ValidateNotNil(d); err != nil {
		return fmt.Errorf("%s: %w", opFloydWarshall, err)
	}

	n := d.Order()
	var (
		k, i, j int
		ik, kj  int32
		rowK    []int32
		rowI    []int32
	)
	for k = 0; k < n; k++ { // outer: intermediate vertex
		rowK = d.Row(k)
		for i = 0; i < n; i++ { // middle: source vertex
			rowI = d.Row(i)
			ik = rowI[k]
			if ik == matrix.Inf {
				continue // no path i→k
			}
			for j = 0; j < n; j++ { // inner: destination vertex
				kj = rowK[j]
				if kj == matrix.Inf {
					continue // no path k→j
				}
				if ik+kj < rowI[j] {
					rowI[j] = ik + kj
				}
			}
		}
	}

	return nil
}
