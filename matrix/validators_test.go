// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hottopixx/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestValidateNotNil covers untyped nil, typed nil and a real matrix.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	var typedNil *mat.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(mat.NewDense(1, 1, nil)))
}

// TestValidateNonEmpty rejects the zero-value Dense.
func TestValidateNonEmpty(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateNonEmpty(&mat.Dense{}), matrix.ErrBadShape)
	require.ErrorIs(t, matrix.ValidateNonEmpty(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNonEmpty(mat.NewDense(2, 3, nil)))
}

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    mat.Matrix
		wantErr error
	}{
		{"equal 2x3", mat.NewDense(2, 3, nil), mat.NewDense(2, 3, nil), nil},
		{"row mismatch", mat.NewDense(2, 3, nil), mat.NewDense(3, 3, nil), matrix.ErrDimensionMismatch},
		{"col mismatch", mat.NewDense(2, 3, nil), mat.NewDense(2, 4, nil), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateSquare covers square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSquare(mat.NewDense(3, 3, nil)))
	require.ErrorIs(t, matrix.ValidateSquare(mat.NewDense(3, 2, nil)), matrix.ErrNonSquare)
}

// TestValidateVecLenAndIndex covers nil vectors, wrong lengths and index bounds.
func TestValidateVecLenAndIndex(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))

	require.ErrorIs(t, matrix.ValidateIndex(-1, 3), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateIndex(3, 3), matrix.ErrOutOfRange)
	require.NoError(t, matrix.ValidateIndex(0, 3))
}

// TestValidateFinite rejects NaN and both infinities.
func TestValidateFinite(t *testing.T) {
	t.Parallel()

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		m := mat.NewDense(2, 2, []float64{0, 1, 2, bad})
		require.ErrorIs(t, matrix.ValidateFinite(m), matrix.ErrNaNInf)
		require.ErrorIs(t, matrix.ValidateFiniteVec([]float64{1, bad}), matrix.ErrNaNInf)
	}
	require.NoError(t, matrix.ValidateFinite(mat.NewDense(1, 2, []float64{-1, 1})))
	require.NoError(t, matrix.ValidateFiniteVec(nil))
}
