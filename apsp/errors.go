// SPDX-License-Identifier: MIT
// Package apsp: sentinel error set.
// The engine is total over a valid matrix; these sentinels only describe
// misuse (bad worker count, released engine, unknown partition name).

package apsp

import "errors"

var (
	// ErrBadWorkers is returned by NewEngine/Relax for a worker count < 1.
	ErrBadWorkers = errors.New("apsp: worker count must be ≥ 1")

	// ErrEngineClosed is returned by Relax after Release.
	ErrEngineClosed = errors.New("apsp: engine released")

	// ErrUnknownPartition is returned by ParsePartition for an unknown name.
	ErrUnknownPartition = errors.New("apsp: unknown partition")
)
