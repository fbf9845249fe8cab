package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlath-apsp/builder"
	"github.com/katalvlaran/lvlath-apsp/matrix"
	"github.com/stretchr/testify/require"
)

func TestTargetEdges(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		n       int
		density float64
		want    int
	}{
		{"single node", 1, 0.5, 0},
		{"zero density", 10, 0, 0},
		{"half", 10, 0.5, 45},
		{"rounds half up", 3, 0.25, 2},  // 1.5 → 2
		{"rounds down", 3, 0.2, 1},      // 1.2 → 1
		{"complete", 10, 1, 90},
		{"clamped above one", 4, 3.5, 12},
		{"negative density", 5, -0.4, 0},
		{"nan density", 5, math.NaN(), 0},
		{"bad order", 0, 0.5, 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, builder.TargetEdges(tc.n, tc.density))
		})
	}
}

func TestRandomDistance_TooFewVertices(t *testing.T) {
	t.Parallel()

	_, err := builder.RandomDistance(0, 0.5, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

// TestRandomDistance_EdgeCountBound checks the exact edge count, the weight
// range, the zero diagonal and the absence of self-loops across densities,
// including the ones that would never terminate without clamping.
func TestRandomDistance_EdgeCountBound(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n       int
		density float64
	}{
		{1, 0.5},
		{1, 5},
		{2, 1},
		{2, 2},
		{3, 0.25},
		{10, 0},
		{10, 0.1},
		{25, 0.5},
		{25, 0.95},
		{25, 1},
		{12, 1.7},
		{12, -1},
	}
	for i, tc := range cases {
		d, err := builder.RandomDistance(tc.n, tc.density, builder.WithSeed(int64(100+i)))
		require.NoError(t, err)
		require.Equal(t, tc.n, d.Order())

		want := builder.TargetEdges(tc.n, tc.density)
		require.LessOrEqual(t, want, tc.n*(tc.n-1))
		require.Equal(t, want, d.EdgeCount(), "n=%d density=%v", tc.n, tc.density)
		require.NoError(t, matrix.ValidateEdgeWeights(d, 1, 100))
	}
}

func TestRandomDistance_SingleNode(t *testing.T) {
	t.Parallel()

	d, err := builder.RandomDistance(1, 1, builder.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, "[0]\n", d.String())
}

func TestRandomDistance_SeedIsReproducible(t *testing.T) {
	t.Parallel()

	a, err := builder.RandomDistance(30, 0.3, builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.RandomDistance(30, 0.3, builder.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	c, err := builder.RandomDistance(30, 0.3, builder.WithSeed(43))
	require.NoError(t, err)
	require.False(t, a.Equal(c))
}

// TestRandomDistance_Directed confirms that sampling is asymmetric: a sparse
// graph is overwhelmingly likely to contain some u→v without v→u.
func TestRandomDistance_Directed(t *testing.T) {
	t.Parallel()

	d, err := builder.RandomDistance(40, 0.2, builder.WithSeed(3))
	require.NoError(t, err)

	oneWay := 0
	for u := 0; u < d.Order(); u++ {
		for v := 0; v < d.Order(); v++ {
			if u != v && d.Reachable(u, v) && !d.Reachable(v, u) {
				oneWay++
			}
		}
	}
	require.Positive(t, oneWay)
}

func TestRandomDistance_WeightRange(t *testing.T) {
	t.Parallel()

	d, err := builder.RandomDistance(15, 1, builder.WithSeed(9), builder.WithWeightRange(5, 5))
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateEdgeWeights(d, 5, 5))
	require.Equal(t, 15*14, d.EdgeCount())
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithWeightRange(0, 10) })
	require.Panics(t, func() { builder.WithWeightRange(10, 9) })
	require.Panics(t, func() { builder.WithWeightRange(1, matrix.Inf) })
	require.NotPanics(t, func() { builder.WithWeightRange(1, 1) })
}
