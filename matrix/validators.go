// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for shape/nil/index/finiteness checks.
//   - Return sentinels wrapped with a validator tag so call sites can wrap
//     again uniformly.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing.
//   - ValidateFinite is O(r*c); every other validator is O(1).

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *mat.Dense stored in the interface is treated as nil as well.
// Complexity: O(1).
func ValidateNotNil(m mat.Matrix) error {
	if m == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*mat.Dense); ok && d == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonEmpty ensures m is non-nil and has at least one row and column.
// A zero-value mat.Dense reports Dims()==(0,0) and is rejected with ErrBadShape.
// Complexity: O(1).
func ValidateNonEmpty(m mat.Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if r, c := m.Dims(); r <= 0 || c <= 0 {
		return matrixErrorf("ValidateNonEmpty", ErrBadShape)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are non-nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b mat.Matrix) error {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br {
		return matrixErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if ac != bc {
		return matrixErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square.
// Assumes m is non-nil.
// Complexity: O(1).
func ValidateSquare(m mat.Matrix) error {
	if r, c := m.Dims(); r != c {
		return matrixErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures x is non-nil and has exactly n elements.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return matrixErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return matrixErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex ensures 0 <= i < n.
// Complexity: O(1).
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return matrixErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}

// ValidateFinite rejects any NaN or ±Inf entry of m.
// Assumes m is non-nil. Rows are scanned first-to-last, so the first
// offending cell in row-major order is the one reported.
// Complexity: O(r*c).
func ValidateFinite(m mat.Matrix) error {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return matrixErrorf("ValidateFinite", ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateFiniteVec is the vector form of ValidateFinite.
// Complexity: O(len(x)).
func ValidateFiniteVec(x []float64) error {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return matrixErrorf("ValidateFiniteVec", ErrNaNInf)
		}
	}

	return nil
}
