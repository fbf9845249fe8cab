// SPDX-License-Identifier: MIT
// Package: harness
//
// sweep.go — TOML-described parameter sweeps and strong-scaling summaries.
//
// A sweep file lists the axes; every combination becomes one RunConfig,
// ordered nodes → densities → workers so every worker count of a
// (nodes, density) pair runs back to back:
//
//	nodes     = [256, 512]
//	densities = [0.1, 0.5]
//	workers   = [1, 2, 4, 8]
//	seed      = 42        # optional; 0 = time-based
//	partition = "blocks"  # or "rows"
//	repeat    = 3         # optional; runs per combination

package harness

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/lvlath-apsp/apsp"
)

// Sweep is the decoded form of a sweep file.
type Sweep struct {
	Nodes     []int          `toml:"nodes"`
	Densities []float64      `toml:"densities"`
	Workers   []int          `toml:"workers"`
	Seed      int64          `toml:"seed"`
	Partition apsp.Partition `toml:"partition"`
	Repeat    int            `toml:"repeat"`
}

// LoadSweep decodes and validates the sweep file at path.
func LoadSweep(path string) (Sweep, error) {
	var s Sweep
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Sweep{}, fmt.Errorf("failed to load sweep file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Sweep{}, fmt.Errorf("sweep file %s: unknown keys %v: %w", path, undecoded, ErrInvalidSweep)
	}

	return s, s.Validate()
}

// DecodeSweep is LoadSweep for in-memory TOML.
func DecodeSweep(data string) (Sweep, error) {
	var s Sweep
	md, err := toml.Decode(data, &s)
	if err != nil {
		return Sweep{}, fmt.Errorf("failed to decode sweep: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Sweep{}, fmt.Errorf("unknown keys %v: %w", undecoded, ErrInvalidSweep)
	}

	return s, s.Validate()
}

// Validate checks that every axis is non-empty and every combination is a
// valid RunConfig.
func (s Sweep) Validate() error {
	if len(s.Nodes) == 0 || len(s.Densities) == 0 || len(s.Workers) == 0 {
		return fmt.Errorf("nodes, densities and workers must be non-empty: %w", ErrInvalidSweep)
	}
	if s.Repeat < 0 {
		return fmt.Errorf("repeat=%d: %w", s.Repeat, ErrInvalidSweep)
	}
	for _, cfg := range s.Configs() {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSweep, err)
		}
	}

	return nil
}

// Configs expands the axes into run configurations, Repeat times each.
func (s Sweep) Configs() []RunConfig {
	repeat := s.Repeat
	if repeat < 1 {
		repeat = 1
	}
	out := make([]RunConfig, 0, len(s.Nodes)*len(s.Densities)*len(s.Workers)*repeat)
	for _, n := range s.Nodes {
		for _, density := range s.Densities {
			for _, w := range s.Workers {
				for r := 0; r < repeat; r++ {
					out = append(out, RunConfig{
						Nodes:     n,
						Density:   density,
						Workers:   w,
						Seed:      s.Seed,
						Partition: s.Partition,
					})
				}
			}
		}
	}

	return out
}

// RunSweep executes every configuration in order. onResult, if non-nil, is
// called after each run; an error from it stops the sweep. Cancelling ctx
// stops the sweep before the next run starts.
func RunSweep(ctx context.Context, s Sweep, log *slog.Logger, onResult func(Result) error) ([]Result, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	cfgs := s.Configs()
	results := make([]Result, 0, len(cfgs))
	for i, cfg := range cfgs {
		log.Info("Starting run.", "run", i+1, "of", len(cfgs),
			"nodes", cfg.Nodes, "density", cfg.Density, "workers", cfg.Workers)

		res, err := Run(ctx, cfg, log)
		if err != nil {
			return results, fmt.Errorf("run %d/%d: %w", i+1, len(cfgs), err)
		}
		results = append(results, res)

		if onResult != nil {
			if err := onResult(res); err != nil {
				return results, err
			}
		}
	}

	return results, nil
}

// Scaling is a result annotated against the 1-worker run of the same
// (nodes, density) pair.
type Scaling struct {
	Result
	Speedup    float64 // baseline work / work; 0 without a baseline
	Efficiency float64 // Speedup / workers
}

type scaleKey struct {
	nodes   int
	density float64
}

// Summarize computes speedup and efficiency for each result. The baseline of
// a (nodes, density) pair is the mean work time of its 1-worker runs.
func Summarize(results []Result) []Scaling {
	type acc struct {
		sum   float64
		count int
	}
	base := make(map[scaleKey]acc)
	for _, r := range results {
		if r.Workers != 1 {
			continue
		}
		k := scaleKey{r.Nodes, r.Density}
		a := base[k]
		a.sum += r.Work.Seconds()
		a.count++
		base[k] = a
	}

	out := make([]Scaling, len(results))
	for i, r := range results {
		out[i].Result = r
		a, ok := base[scaleKey{r.Nodes, r.Density}]
		work := r.Work.Seconds()
		if !ok || work == 0 {
			continue
		}
		out[i].Speedup = (a.sum / float64(a.count)) / work
		out[i].Efficiency = out[i].Speedup / float64(r.Workers)
	}

	return out
}
