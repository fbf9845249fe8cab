// SPDX-License-Identifier: MIT
// Package: harness
//
// host.go — host capacity probe, used to flag runs whose numbers would be
// meaningless (oversubscribed cores, matrix larger than free memory).

package harness

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// cellBytes is the size of one matrix cell (int32).
const cellBytes = 4

// HostInfo describes the machine a run executes on.
type HostInfo struct {
	LogicalCPUs     int
	AvailableMemory uint64 // bytes
}

// ProbeHost reads the logical CPU count and available memory.
func ProbeHost(ctx context.Context) (HostInfo, error) {
	cpus, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return HostInfo{}, fmt.Errorf("ProbeHost: cpu counts: %w", err)
	}
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return HostInfo{}, fmt.Errorf("ProbeHost: virtual memory: %w", err)
	}

	return HostInfo{LogicalCPUs: cpus, AvailableMemory: vm.Available}, nil
}

// MatrixBytes is the memory footprint of an n×n distance matrix.
func MatrixBytes(n int) uint64 {
	return uint64(n) * uint64(n) * cellBytes
}

// Warnings lists reasons why cfg may produce misleading timings on h.
// Zero-valued HostInfo fields are treated as unknown and skipped.
func (h HostInfo) Warnings(cfg RunConfig) []string {
	var out []string
	if h.LogicalCPUs > 0 && cfg.Workers > h.LogicalCPUs {
		out = append(out, fmt.Sprintf("workers=%d exceeds %d logical CPUs", cfg.Workers, h.LogicalCPUs))
	}
	if need := MatrixBytes(cfg.Nodes); h.AvailableMemory > 0 && need > h.AvailableMemory {
		out = append(out, fmt.Sprintf("matrix needs %d bytes, %d available", need, h.AvailableMemory))
	}

	return out
}
