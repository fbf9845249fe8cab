// SPDX-License-Identifier: MIT
// Package: harness
//
// run.go — one timed benchmark run.
//
// Timeline:
//
//	generate (untimed) ─┬─ total start
//	                    ├─ NewEngine (pool spin-up)
//	                    ├─ work start ── Relax ── work stop
//	                    ├─ Release (pool teardown)
//	                    └─ total stop
//
// Overhead = Total − Work, i.e. the cost of owning a worker pool.

package harness

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvlath-apsp/apsp"
	"github.com/katalvlaran/lvlath-apsp/builder"
)

// Result holds the measurements of one run.
type Result struct {
	Nodes    int
	Workers  int
	Density  float64
	Edges    int           // directed edges placed by the generator
	Total    time.Duration // pool lifetime including Relax
	Work     time.Duration // Relax only
	Overhead time.Duration // Total − Work
}

// Run validates cfg, generates the input, and times the relaxation.
// ctx is checked once before generation; a started run always completes.
func Run(ctx context.Context, cfg RunConfig, log *slog.Logger) (Result, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var opts []builder.BuilderOption
	if cfg.Seed != 0 {
		opts = append(opts, builder.WithSeed(cfg.Seed))
	}
	genStart := time.Now()
	d, err := builder.RandomDistance(cfg.Nodes, cfg.Density, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("generate: %w", err)
	}
	edges := d.EdgeCount()
	log.Debug("Generated graph.",
		"nodes", cfg.Nodes, "density", cfg.Density, "edges", edges, "took", time.Since(genStart))

	totalStart := time.Now()
	eng, err := apsp.NewEngine(cfg.Workers, apsp.WithPartition(cfg.Partition), apsp.WithLogger(log))
	if err != nil {
		return Result{}, fmt.Errorf("engine: %w", err)
	}

	workStart := time.Now()
	err = eng.Relax(d)
	work := time.Since(workStart)

	eng.Release()
	total := time.Since(totalStart)
	if err != nil {
		return Result{}, fmt.Errorf("relax: %w", err)
	}

	res := Result{
		Nodes:    cfg.Nodes,
		Workers:  cfg.Workers,
		Density:  cfg.Density,
		Edges:    edges,
		Total:    total,
		Work:     work,
		Overhead: total - work,
	}
	log.Debug("Run complete.",
		"nodes", res.Nodes, "workers", res.Workers, "work", res.Work, "overhead", res.Overhead)

	return res, nil
}
