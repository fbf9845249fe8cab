// SPDX-License-Identifier: MIT
// Package: builder
//
// random_distance.go — RandomDistance(n, density): synthetic directed distance matrix.
//
// Canonical model:
//   - Start from matrix.NewDistance(n): zero diagonal, Inf elsewhere.
//   - Place exactly TargetEdges(n, density) distinct directed edges by
//     rejection sampling ordered pairs (u,v), u≠v, each with a uniform integer
//     weight in [minW,maxW].
//   - Edges are directed; u→v never implies v→u.
//
// Termination:
//   - The edge target is clamped to [0, n(n-1)] BEFORE the loop starts, so a
//     density above 1 (or a tiny n) can never request more edges than there
//     are free off-diagonal slots.
//
// Determinism:
//   - Draw order is (u, v, w) per accepted edge; a fixed seed yields a fixed matrix.

package builder

import (
	"math"

	"github.com/katalvlaran/lvlath-apsp/matrix"
)

const (
	methodRandomDistance = "RandomDistance"
	minRandomVertices    = 1
)

// TargetEdges returns the number of directed edges RandomDistance places:
// round(density·n·(n-1)) clamped to [0, n·(n-1)]. NaN density yields 0.
// Complexity: O(1).
func TargetEdges(n int, density float64) int {
	if n < minRandomVertices {
		return 0
	}
	slots := n * (n - 1)
	want := math.Round(density * float64(slots))
	switch {
	case math.IsNaN(want) || want <= 0:
		return 0
	case want >= float64(slots):
		return slots
	default:
		return int(want)
	}
}

// RandomDistance generates an n×n directed distance matrix with
// TargetEdges(n, density) edges.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - density is not range-checked; it only changes the clamped edge target.
//
// Complexity:
//   - Time: O(n²) to allocate plus expected O(E·s/(s-E)) draws for E edges in
//     s slots; near-complete targets cost more draws but always finish.
//   - Space: the returned matrix only.
func RandomDistance(n int, density float64, opts ...BuilderOption) (*matrix.Distance, error) {
	if n < minRandomVertices {
		return nil, builderErrorf(methodRandomDistance, ErrTooFewVertices, "n=%d < min=%d", n, minRandomVertices)
	}

	cfg := newBuilderConfig(opts...)
	d, err := matrix.NewDistance(n)
	if err != nil {
		return nil, builderErrorf(methodRandomDistance, err, "NewDistance(%d)", n)
	}

	target := TargetEdges(n, density)
	span := int(cfg.maxW-cfg.minW) + 1
	rng := cfg.rng

	var (
		u, v  int
		row   []int32
		added int
	)
	for added < target {
		u = rng.Intn(n)
		v = rng.Intn(n)
		if u == v {
			continue // no self-loops
		}
		row = d.Row(u)
		if row[v] != matrix.Inf {
			continue // slot already taken; redraw
		}
		row[v] = cfg.minW + int32(rng.Intn(span))
		added++
	}

	return d, nil
}
