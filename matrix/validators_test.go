package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-apsp/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators_Nil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateDiagonal(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateEdgeWeights(nil, 1, 100), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.CheckTriangle(nil), matrix.ErrNilMatrix)
}

func TestValidateEdgeWeights(t *testing.T) {
	t.Parallel()

	inf := matrix.Inf
	ok, err := matrix.FromRows([][]int32{
		{0, 1, inf},
		{100, 0, 50},
		{inf, inf, 0},
	})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateDiagonal(ok))
	require.NoError(t, matrix.ValidateEdgeWeights(ok, 1, 100))

	// 101 is a legal cell value but outside the generator range.
	require.NoError(t, ok.Set(2, 0, 101))
	require.ErrorIs(t, matrix.ValidateEdgeWeights(ok, 1, 100), matrix.ErrInvalidWeight)
}

func TestCheckTriangle(t *testing.T) {
	t.Parallel()

	inf := matrix.Inf
	// 0→1 (3), 1→2 (1), but 0→2 recorded as 10: not a fixed point.
	d, err := matrix.FromRows([][]int32{
		{0, 3, 10},
		{inf, 0, 1},
		{inf, inf, 0},
	})
	require.NoError(t, err)
	require.ErrorIs(t, matrix.CheckTriangle(d), matrix.ErrTriangleViolation)

	require.NoError(t, d.Set(0, 2, 4))
	require.NoError(t, matrix.CheckTriangle(d))
}
