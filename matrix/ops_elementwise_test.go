// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hottopixx/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSign(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, matrix.Sign(0.3))
	assert.Equal(t, -1.0, matrix.Sign(-7))
	assert.Equal(t, 0.0, matrix.Sign(0))
	assert.True(t, math.IsNaN(matrix.Sign(math.NaN())))
}

func TestClip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, matrix.Clip(-0.5, 0, 1))
	assert.Equal(t, 1.0, matrix.Clip(1.5, 0, 1))
	assert.Equal(t, 0.25, matrix.Clip(0.25, 0, 1))
}

func TestSignDiff(t *testing.T) {
	t.Parallel()

	got, err := matrix.SignDiff(nil, []float64{1, 2, 3}, []float64{0, 2, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, -1}, got)

	// dst with enough capacity is reused.
	dst := make([]float64, 3)
	got, err = matrix.SignDiff(dst, []float64{-1, 5, 0}, []float64{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 1, 0}, got)
	assert.Equal(t, []float64{-1, 1, 0}, dst)

	_, err = matrix.SignDiff(nil, []float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAddRowShiftInPlace(t *testing.T) {
	t.Parallel()

	d := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	require.NoError(t, matrix.AddRowShiftInPlace(d, []float64{10, -1}))
	want := mat.NewDense(2, 3, []float64{
		11, 12, 13,
		3, 4, 5,
	})
	assert.True(t, mat.Equal(want, d), "got\n%v", mat.Formatted(d))

	require.ErrorIs(t, matrix.AddRowShiftInPlace(d, []float64{1}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.AddRowShiftInPlace(nil, []float64{1}), matrix.ErrNilMatrix)
}
