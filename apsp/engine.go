// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - Parallel in-place Floyd–Warshall over a *matrix.Distance.
//   - One fixed-size ants pool per Engine, reused across every iteration and
//     every Relax call until Release.
//
// Iteration k (strictly increasing):
//  1. snapshot row k by value into an engine-owned buffer;
//  2. submit one task per row range (disjoint ownership, see partition.go);
//  3. each task relaxes d[i][j] via k using only its own rows and the snapshot;
//  4. wait for every task (barrier) before k+1 starts.
//
// The snapshot is written only between barriers and read only inside them,
// and every row has exactly one writer per iteration, so the matrix needs no
// locks or atomics.

package apsp

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/lvlath-apsp/matrix"
	"github.com/panjf2000/ants/v2"
)

const opRelax = "Engine.Relax"

// Stats counts engine activity since construction.
type Stats struct {
	Relaxations int    // completed Relax calls
	Iterations  int    // completed k-iterations (barriers released)
	Tasks       uint64 // row-range tasks submitted to the pool
}

// Engine relaxes distance matrices on a fixed worker pool.
// Relax calls on one Engine are serialized.
type Engine struct {
	workers   int
	partition Partition
	log       *slog.Logger

	pool *ants.PoolWithFunc

	mu       sync.Mutex // guards everything below
	released bool
	snap     []int32   // row-k snapshot, reused across iterations
	tasks    []rowTask // per-range task records, rebuilt per Relax
	stats    Stats
}

// rowTask is the unit handed to a pool worker: relax rows [lo,hi) via k.
type rowTask struct {
	d      *matrix.Distance
	snap   []int32
	k      int
	lo, hi int
	wg     *sync.WaitGroup
}

// NewEngine creates an engine backed by a pool of exactly workers goroutines.
// Returns ErrBadWorkers for workers < 1.
func NewEngine(workers int, opts ...Option) (*Engine, error) {
	if workers < 1 {
		return nil, fmt.Errorf("NewEngine(workers=%d): %w", workers, ErrBadWorkers)
	}
	cfg := newEngineConfig(opts...)

	pool, err := ants.NewPoolWithFunc(workers, runTask,
		ants.WithPreAlloc(true),
		ants.WithDisablePurge(true), // keep workers parked between iterations
	)
	if err != nil {
		return nil, fmt.Errorf("NewEngine(workers=%d): ants pool: %w", workers, err)
	}

	return &Engine{
		workers:   workers,
		partition: cfg.partition,
		log:       cfg.log,
		pool:      pool,
	}, nil
}

// runTask is the pool function shared by every worker.
func runTask(arg interface{}) {
	t := arg.(*rowTask)
	defer t.wg.Done()
	relaxRows(t.d, t.snap, t.k, t.lo, t.hi)
}

// relaxRows applies d[i][j] = min(d[i][j], d[i][k] + snap[j]) for i in [lo,hi).
// snap is row k as it stood before this iteration.
func relaxRows(d *matrix.Distance, snap []int32, k, lo, hi int) {
	var (
		i, j   int
		ik, kj int32
		cand   int32
		row    []int32
	)
	for i = lo; i < hi; i++ {
		row = d.Row(i)
		ik = row[k]
		if ik == matrix.Inf { // i cannot reach k
			continue
		}
		for j, kj = range snap {
			if kj == matrix.Inf {
				continue
			}
			// Both terms < Inf = 1e9, so the sum fits in int32.
			cand = ik + kj
			if cand < row[j] {
				row[j] = cand
			}
		}
	}
}

// Workers returns the pool size.
func (e *Engine) Workers() int {
	return e.workers
}

// Partition returns the configured row partitioning scheme.
func (e *Engine) Partition() Partition {
	return e.partition
}

// Stats returns a copy of the activity counters.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.stats
}

// Relax rewrites d in place to its all-pairs shortest-path fixed point.
// On success d[i][j] is the shortest directed i→j path length or matrix.Inf.
//
// The result is identical for every worker count and partition scheme.
// An order-1 matrix is already a fixed point and never reaches the pool.
//
// Errors: matrix.ErrNilMatrix for nil d, ErrEngineClosed after Release.
// Complexity: O(n³) work, O(n) extra memory.
func (e *Engine) Relax(d *matrix.Distance) error {
	if err := matrix.ValidateNotNil(d); err != nil {
		return fmt.Errorf("%s: %w", opRelax, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.released {
		return fmt.Errorf("%s: %w", opRelax, ErrEngineClosed)
	}

	n := d.Order()
	if n <= 1 {
		e.stats.Relaxations++
		return nil
	}

	ranges := e.partition.split(n, e.workers)
	var wg sync.WaitGroup
	e.tasks = e.tasks[:0]
	for _, r := range ranges {
		e.tasks = append(e.tasks, rowTask{d: d, lo: r.lo, hi: r.hi, wg: &wg})
	}
	e.log.Debug("Relax starting.",
		"n", n, "workers", e.workers, "partition", e.partition.String(), "tasks", len(e.tasks))

	var k int
	for k = 0; k < n; k++ {
		e.snap = d.CopyRow(k, e.snap)

		wg.Add(len(e.tasks))
		for idx := range e.tasks {
			t := &e.tasks[idx]
			t.k, t.snap = k, e.snap
			if err := e.pool.Invoke(t); err != nil {
				// Tasks from idx on were never handed out.
				wg.Add(-(len(e.tasks) - idx))
				wg.Wait()
				return fmt.Errorf("%s: k=%d: submit rows [%d,%d): %w", opRelax, k, t.lo, t.hi, err)
			}
			e.stats.Tasks++
		}
		wg.Wait() // barrier: k+1 must see every row of iteration k

		e.stats.Iterations++
	}
	e.stats.Relaxations++
	e.log.Debug("Relax finished.", "n", n, "iterations", k)

	return nil
}

// Release stops the pool's workers. Further Relax calls return
// ErrEngineClosed. Safe to call more than once.
func (e *Engine) Release() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.released {
		return
	}
	e.released = true
	e.pool.Release()
}

// Relax is the one-shot form: build an Engine with workers goroutines,
// relax d, and release the pool.
func Relax(d *matrix.Distance, workers int, opts ...Option) error {
	e, err := NewEngine(workers, opts...)
	if err != nil {
		return err
	}
	defer e.Release()

	return e.Relax(d)
}
