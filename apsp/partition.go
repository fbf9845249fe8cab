// SPDX-License-Identifier: MIT
// Package: apsp
//
// partition.go — row ownership partitioning.
//
// Contract:
//   - A partition of n rows is a list of half-open ranges [lo,hi) that are
//     pairwise disjoint and together cover 0..n-1.
//   - During one iteration each range is owned by exactly one task, which is
//     the only writer to those rows; no cell has two writers.

package apsp

import (
	"fmt"
	"strings"
)

// Partition selects how rows are split into tasks for one iteration.
type Partition int

const (
	// PartitionBlocks hands each worker one contiguous block of rows.
	// Block sizes differ by at most one row.
	PartitionBlocks Partition = iota
	// PartitionRows submits one task per row; the pool balances them.
	PartitionRows
)

// String returns the lowercase name used on the command line and in TOML.
func (p Partition) String() string {
	switch p {
	case PartitionBlocks:
		return "blocks"
	case PartitionRows:
		return "rows"
	default:
		return fmt.Sprintf("Partition(%d)", int(p))
	}
}

// ParsePartition maps "blocks" / "rows" (case-insensitive) to a Partition.
func ParsePartition(s string) (Partition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blocks", "block", "":
		return PartitionBlocks, nil
	case "rows", "row":
		return PartitionRows, nil
	default:
		return 0, fmt.Errorf("ParsePartition(%q): %w", s, ErrUnknownPartition)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Partition) MarshalText() ([]byte, error) {
	if p != PartitionBlocks && p != PartitionRows {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(p), ErrUnknownPartition)
	}

	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so TOML and flag
// decoders accept the names directly.
func (p *Partition) UnmarshalText(text []byte) error {
	v, err := ParsePartition(string(text))
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// rowRange is a half-open range of owned rows.
type rowRange struct {
	lo, hi int
}

// split partitions n rows for the given worker count.
// Blocks: min(workers, n) ranges whose sizes differ by at most one.
// Rows: n single-row ranges.
func (p Partition) split(n, workers int) []rowRange {
	if n <= 0 {
		return nil
	}
	if p == PartitionRows {
		out := make([]rowRange, n)
		for i := range out {
			out[i] = rowRange{lo: i, hi: i + 1}
		}
		return out
	}

	blocks := workers
	if blocks > n {
		blocks = n
	}
	if blocks < 1 {
		blocks = 1
	}
	size, extra := n/blocks, n%blocks
	out := make([]rowRange, 0, blocks)
	lo := 0
	for b := 0; b < blocks; b++ {
		hi := lo + size
		if b < extra {
			hi++ // first n%blocks blocks take one extra row
		}
		out = append(out, rowRange{lo: lo, hi: hi})
		lo = hi
	}

	return out
}
