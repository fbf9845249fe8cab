package apsp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireCover asserts that ranges are disjoint, ordered and cover [0,n).
func requireCover(t *testing.T, ranges []rowRange, n int) {
	t.Helper()

	next := 0
	for _, r := range ranges {
		require.Equal(t, next, r.lo)
		require.Greater(t, r.hi, r.lo)
		next = r.hi
	}
	require.Equal(t, n, next)
}

func TestSplitBlocks(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 5, 17, 64} {
		for _, w := range []int{1, 2, 3, 8, 100} {
			ranges := PartitionBlocks.split(n, w)
			requireCover(t, ranges, n)

			want := w
			if n < w {
				want = n
			}
			require.Len(t, ranges, want, "n=%d w=%d", n, w)

			minSize, maxSize := n, 0
			for _, r := range ranges {
				size := r.hi - r.lo
				minSize = min(minSize, size)
				maxSize = max(maxSize, size)
			}
			require.LessOrEqual(t, maxSize-minSize, 1)
		}
	}

	require.Nil(t, PartitionBlocks.split(0, 4))
}

func TestSplitRows(t *testing.T) {
	t.Parallel()

	ranges := PartitionRows.split(4, 2)
	requireCover(t, ranges, 4)
	require.Len(t, ranges, 4)
}

func TestParsePartition(t *testing.T) {
	t.Parallel()

	cases := map[string]Partition{
		"blocks": PartitionBlocks,
		"Block":  PartitionBlocks,
		"":       PartitionBlocks,
		"rows":   PartitionRows,
		" ROW ":  PartitionRows,
	}
	for in, want := range cases {
		got, err := ParsePartition(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParsePartition("diagonal")
	require.ErrorIs(t, err, ErrUnknownPartition)
}

func TestPartitionText(t *testing.T) {
	t.Parallel()

	var p Partition
	require.NoError(t, p.UnmarshalText([]byte("rows")))
	require.Equal(t, PartitionRows, p)
	require.Equal(t, "rows", p.String())

	b, err := PartitionBlocks.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "blocks", string(b))

	_, err = Partition(7).MarshalText()
	require.ErrorIs(t, err, ErrUnknownPartition)
	require.Equal(t, "Partition(7)", Partition(7).String())
	require.ErrorIs(t, p.UnmarshalText([]byte("?")), ErrUnknownPartition)
}
