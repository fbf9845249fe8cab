// SPDX-License-Identifier: MIT
// Package harness: sentinel error set.
// Configuration problems are reported here, before any matrix is generated;
// the engine itself never sees an invalid worker count or order.

package harness

import "errors"

var (
	// ErrInvalidConfig marks a RunConfig that cannot be executed
	// (Nodes < 1, Workers < 1, or an unknown partition).
	ErrInvalidConfig = errors.New("harness: invalid run config")

	// ErrInvalidSweep marks a sweep file with an empty or invalid axis.
	ErrInvalidSweep = errors.New("harness: invalid sweep")
)
