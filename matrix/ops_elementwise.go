// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise and broadcast kernels used by the solver hot path
//     (sub-gradient sign, per-row dual shift) and by the projector (clipping).
//
// Determinism & Performance:
//   - Fixed loop orders; in-place kernels work on gonum's row views and
//     allocate nothing.

package matrix

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Sign returns -1, 0 or +1 following the sign of x.
// Zero maps to zero (not to ±1 as math.Copysign would); NaN maps to NaN.
// Complexity: O(1).
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x // ±0 or NaN
	}
}

// Clip returns x limited to [lo, hi]. Assumes lo <= hi.
// Complexity: O(1).
func Clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

// SignDiff writes sign(a[i]-b[i]) into dst and returns it.
// If dst is nil or too short a new slice is allocated.
//
// Errors:
//   - ErrDimensionMismatch when len(a) != len(b).
//
// Complexity: O(n).
func SignDiff(dst, a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, matrixErrorf("SignDiff", ErrDimensionMismatch)
	}
	if len(dst) < len(a) {
		dst = make([]float64, len(a))
	}
	dst = dst[:len(a)]
	for i := range a {
		dst[i] = Sign(a[i] - b[i])
	}

	return dst, nil
}

// AddRowShiftInPlace computes d[i,j] += shift[i] for every cell.
// Implementation:
//   - Stage 1: validate d and len(shift)==rows.
//   - Stage 2: add the row constant over gonum's raw row view.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape, ErrDimensionMismatch.
//
// Complexity: O(r*c) time, O(1) extra space.
func AddRowShiftInPlace(d *mat.Dense, shift []float64) error {
	if err := ValidateNonEmpty(d); err != nil {
		return matrixErrorf("AddRowShiftInPlace", err)
	}
	r, _ := d.Dims()
	if err := ValidateVecLen(shift, r); err != nil {
		return matrixErrorf("AddRowShiftInPlace", err)
	}
	for i := 0; i < r; i++ {
		floats.AddConst(shift[i], d.RawRowView(i))
	}

	return nil
}
