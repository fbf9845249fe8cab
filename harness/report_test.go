package harness_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/lvlath-apsp/harness"
	"github.com/stretchr/testify/require"
)

var sample = harness.Result{
	Nodes:    4,
	Workers:  2,
	Density:  0.5,
	Edges:    6,
	Total:    1500 * time.Millisecond,
	Work:     1250 * time.Millisecond,
	Overhead: 250 * time.Millisecond,
}

func TestWriteHeader(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, harness.WriteHeader(&buf))
	require.Equal(t,
		"| Nodes  | Threads | Density | Total (s)     | Work (s)         | Overhead   |\n"+
			"|--------|---------|---------|---------------|------------------|------------|\n",
		buf.String())
}

func TestWriteResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, harness.WriteResult(&buf, sample))
	require.Equal(t,
		"| 4      | 2       | 0.50    | 1.500000      | 1.250000         | 0.250000   |\n"+
			"4,2,0.50,1.500000,1.250000,0.250000\n",
		buf.String())
}

func TestAppendCSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "floyd_results.csv")
	require.NoError(t, harness.AppendCSV(path, sample))

	second := sample
	second.Workers = 4
	require.NoError(t, harness.AppendCSV(path, second))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t,
		harness.CSVHeader+"\n"+
			"4,2,0.50,1.500000,1.250000,0.250000\n"+
			"4,4,0.50,1.500000,1.250000,0.250000\n",
		string(data))
}

func TestAppendCSV_BadPath(t *testing.T) {
	t.Parallel()

	err := harness.AppendCSV(filepath.Join(t.TempDir(), "missing", "out.csv"), sample)
	require.Error(t, err)
}

func TestWriteScaling(t *testing.T) {
	t.Parallel()

	rows := harness.Summarize([]harness.Result{
		{Nodes: 64, Workers: 1, Density: 0.1, Work: 4 * time.Second},
		{Nodes: 64, Workers: 2, Density: 0.1, Work: 2 * time.Second},
		{Nodes: 32, Workers: 2, Density: 0.1, Work: time.Second},
	})

	var buf bytes.Buffer
	require.NoError(t, harness.WriteScaling(&buf, rows))
	require.Equal(t,
		"| Nodes  | Threads | Density | Speedup  | Efficiency |\n"+
			"| 64     | 1       | 0.10    | 1.000    | 1.000      |\n"+
			"| 64     | 2       | 0.10    | 2.000    | 1.000      |\n"+
			"| 32     | 2       | 0.10    | -        | -          |\n",
		buf.String())
}
