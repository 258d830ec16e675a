// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hottopixx/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestDiagonalAndTrace(t *testing.T) {
	t.Parallel()

	m := mat.NewDense(3, 3, []float64{
		1, 9, 9,
		9, 2, 9,
		9, 9, 3,
	})
	d, err := matrix.Diagonal(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, d)

	tr, err := matrix.Trace(m)
	require.NoError(t, err)
	assert.Equal(t, 6.0, tr)

	_, err = matrix.Diagonal(mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Trace(mat.NewDense(3, 2, nil))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Trace(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestColumn(t *testing.T) {
	t.Parallel()

	m := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	col, err := matrix.Column(m, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, col)

	col[0] = 100
	assert.Equal(t, 2.0, m.At(0, 1), "Column must return a copy")

	_, err = matrix.Column(m, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
