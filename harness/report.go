// SPDX-License-Identifier: MIT
// Package: harness
//
// report.go — textual reporting: one aligned table row and one CSV row per run.
// All times are seconds; density has 2 decimals, times have 6.

package harness

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	tableRowFormat = "| %-6d | %-7d | %-7.2f | %-13.6f | %-16.6f | %-10.6f |\n"
	tableHdrFormat = "| %-6s | %-7s | %-7s | %-13s | %-16s | %-10s |\n"
	csvRowFormat   = "%d,%d,%.2f,%.6f,%.6f,%.6f\n"

	// CSVHeader names the columns written by WriteCSVRow.
	CSVHeader = "nodes,threads,density,total_s,work_s,overhead_s"
)

// WriteHeader writes the table header and its rule.
func WriteHeader(w io.Writer) error {
	if _, err := fmt.Fprintf(w, tableHdrFormat,
		"Nodes", "Threads", "Density", "Total (s)", "Work (s)", "Overhead"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "|%s|%s|%s|%s|%s|%s|\n",
		rule(8), rule(9), rule(9), rule(15), rule(18), rule(12))

	return err
}

// WriteTableRow writes r as one aligned table line.
func WriteTableRow(w io.Writer, r Result) error {
	_, err := fmt.Fprintf(w, tableRowFormat,
		r.Nodes, r.Workers, r.Density, r.Total.Seconds(), r.Work.Seconds(), r.Overhead.Seconds())

	return err
}

// WriteCSVRow writes r as one CSV line (see CSVHeader).
func WriteCSVRow(w io.Writer, r Result) error {
	_, err := fmt.Fprintf(w, csvRowFormat,
		r.Nodes, r.Workers, r.Density, r.Total.Seconds(), r.Work.Seconds(), r.Overhead.Seconds())

	return err
}

// WriteResult writes the table line followed by the CSV line.
func WriteResult(w io.Writer, r Result) error {
	if err := WriteTableRow(w, r); err != nil {
		return err
	}

	return WriteCSVRow(w, r)
}

// AppendCSV appends r to the CSV file at path, creating it with CSVHeader
// when it does not exist or is empty.
func AppendCSV(path string, r Result) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("AppendCSV: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("AppendCSV: %w", err)
	}
	if st.Size() == 0 {
		if _, err = fmt.Fprintln(f, CSVHeader); err != nil {
			return fmt.Errorf("AppendCSV: %w", err)
		}
	}
	if err = WriteCSVRow(f, r); err != nil {
		return fmt.Errorf("AppendCSV: %w", err)
	}

	return nil
}

func rule(n int) string {
	return strings.Repeat("-", n)
}

// WriteScaling writes a speedup/efficiency table for a sweep summary.
// Rows without a 1-worker baseline print "-".
func WriteScaling(w io.Writer, rows []Scaling) error {
	if _, err := fmt.Fprintf(w, "| %-6s | %-7s | %-7s | %-8s | %-10s |\n",
		"Nodes", "Threads", "Density", "Speedup", "Efficiency"); err != nil {
		return err
	}
	for _, s := range rows {
		if s.Speedup == 0 {
			if _, err := fmt.Fprintf(w, "| %-6d | %-7d | %-7.2f | %-8s | %-10s |\n",
				s.Nodes, s.Workers, s.Density, "-", "-"); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "| %-6d | %-7d | %-7.2f | %-8.3f | %-10.3f |\n",
			s.Nodes, s.Workers, s.Density, s.Speedup, s.Efficiency); err != nil {
			return err
		}
	}

	return nil
}
