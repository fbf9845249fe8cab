// Package apspbench is a parallel all-pairs shortest-path benchmark: seeded
// synthetic directed graphs, a Floyd–Warshall engine on a fixed worker pool,
// and a timing harness that reports table and CSV rows.
//
// Under the hood, everything is organized under four packages and one command:
//
//	matrix/         — Distance grid, Inf sentinel, invariant validators
//	builder/        — RandomDistance generator with a clamped edge target
//	apsp/           — sequential FloydWarshall and the pooled Engine
//	harness/        — RunConfig, timed runs, reports, TOML sweeps, host probe
//	cmd/apspbench/  — command-line entry point
//
// Quick start:
//
//	go run ./cmd/apspbench 1024 0.3 8 --header
//	go run ./cmd/apspbench sweep --config cmd/apspbench/sweep.example.toml
package apspbench
