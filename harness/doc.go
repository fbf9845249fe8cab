// Package harness times the all-pairs shortest-path engine and reports the
// measurements.
//
// A run generates a seeded random matrix (untimed), then measures the total
// lifetime of a worker pool and, inside it, the relaxation alone; the
// difference is reported as overhead. Each run prints one aligned table row
// and one CSV row, all times in seconds:
//
//	| 512    | 8       | 0.30    | 0.081234      | 0.080001         | 0.001233   |
//	512,8,0.30,0.081234,0.080001,0.001233
//
// Sweeps read their axes from a TOML file (LoadSweep) and can be summarized
// as speedup/efficiency against the 1-worker baseline (Summarize).
package harness
