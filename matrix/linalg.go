// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Validated accessors on top of gonum: Diagonal, Trace, Column.
//   - gonum panics on shape violations; these wrappers return sentinels.

package matrix

import "gonum.org/v1/gonum/mat"

// Diagonal returns a fresh copy of the main diagonal of a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape, ErrNonSquare.
//
// Complexity: O(n).
func Diagonal(m mat.Matrix) ([]float64, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf("Diagonal", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("Diagonal", err)
	}
	n, _ := m.Dims()
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i] = m.At(i, i)
	}

	return d, nil
}

// Trace returns the sum of the diagonal of a square matrix.
// Complexity: O(n).
func Trace(m mat.Matrix) (float64, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return 0, matrixErrorf("Trace", err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf("Trace", err)
	}

	return mat.Trace(m), nil
}

// Column copies column j of m into a fresh slice.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape, ErrOutOfRange.
//
// Complexity: O(rows).
func Column(m mat.Matrix, j int) ([]float64, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf("Column", err)
	}
	_, c := m.Dims()
	if err := ValidateIndex(j, c); err != nil {
		return nil, matrixErrorf("Column", err)
	}

	return mat.Col(nil, j, m), nil
}
