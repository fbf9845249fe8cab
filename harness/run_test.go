package harness_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvlath-apsp/builder"
	"github.com/katalvlaran/lvlath-apsp/harness"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	cfg := harness.RunConfig{Nodes: 48, Density: 0.25, Workers: 3, Seed: 11}
	res, err := harness.Run(context.Background(), cfg, slogt.New(t))
	require.NoError(t, err)

	require.Equal(t, 48, res.Nodes)
	require.Equal(t, 3, res.Workers)
	require.Equal(t, 0.25, res.Density)
	require.Equal(t, builder.TargetEdges(48, 0.25), res.Edges)
	require.Positive(t, res.Work)
	require.GreaterOrEqual(t, res.Total, res.Work)
	require.Equal(t, res.Total-res.Work, res.Overhead)
}

func TestRun_SingleNode(t *testing.T) {
	t.Parallel()

	res, err := harness.Run(context.Background(), harness.RunConfig{Nodes: 1, Density: 1, Workers: 2, Seed: 1}, nil)
	require.NoError(t, err)
	require.Zero(t, res.Edges)
}

func TestRun_RejectsBeforeWork(t *testing.T) {
	t.Parallel()

	_, err := harness.Run(context.Background(), harness.RunConfig{Nodes: 10, Workers: 0}, slogt.New(t))
	require.ErrorIs(t, err, harness.ErrInvalidConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = harness.Run(ctx, harness.RunConfig{Nodes: 10, Workers: 1}, slogt.New(t))
	require.ErrorIs(t, err, context.Canceled)
}
