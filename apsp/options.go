// SPDX-License-Identifier: MIT
// Package: apsp
//
// options.go — functional options for Engine.

package apsp

import (
	"fmt"
	"log/slog"
)

// Option customizes an Engine before its pool is created.
type Option func(*engineConfig)

type engineConfig struct {
	partition Partition
	log       *slog.Logger
}

func newEngineConfig(opts ...Option) engineConfig {
	cfg := engineConfig{partition: PartitionBlocks}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = slog.Default()
	}

	return cfg
}

// WithPartition selects the row partitioning scheme.
// Panics on a value that is neither PartitionBlocks nor PartitionRows.
func WithPartition(p Partition) Option {
	if p != PartitionBlocks && p != PartitionRows {
		panic(fmt.Sprintf("apsp: WithPartition(%d): unknown partition", int(p)))
	}
	return func(c *engineConfig) {
		c.partition = p
	}
}

// WithLogger sets the engine logger. A nil logger means slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(c *engineConfig) {
		c.log = log
	}
}
