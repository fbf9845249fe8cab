// SPDX-License-Identifier: MIT
// Package: harness
//
// config.go — RunConfig, the immutable description of one benchmark run.

package harness

import (
	"fmt"

	"github.com/katalvlaran/lvlath-apsp/apsp"
)

// RunConfig describes one benchmark run. It is passed by value and never
// mutated after Validate.
type RunConfig struct {
	Nodes     int            // matrix order n
	Density   float64        // target edge density; clamped by the generator
	Workers   int            // engine pool size
	Seed      int64          // generator seed; 0 picks a time-based seed
	Partition apsp.Partition // row partitioning scheme
}

// Validate rejects configurations the engine must never be invoked with.
func (c RunConfig) Validate() error {
	if c.Nodes < 1 {
		return fmt.Errorf("nodes=%d, want ≥ 1: %w", c.Nodes, ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers=%d, want ≥ 1: %w", c.Workers, ErrInvalidConfig)
	}
	if c.Partition != apsp.PartitionBlocks && c.Partition != apsp.PartitionRows {
		return fmt.Errorf("partition=%s: %w", c.Partition, ErrInvalidConfig)
	}

	return nil
}
