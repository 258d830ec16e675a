// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Small statistics used by the solver diagnostics and the input generator:
//     empty-safe Mean, descending top-k splits, L1 row normalization.
//
// Exposed API:
//   - Mean(x)            -> float64               // mean(∅) == 0
//   - SplitTopK(x, k)    -> (top, rest)           // k largest vs the others
//   - ArgTopK(x, k)      -> []int                 // indices of the k largest
//   - NormalizeRowsL1(X) -> (Y, norms)            // degenerate rows unchanged
//
// Determinism & Performance:
//   - Sorting uses stable order with index tie-break, so equal values always
//     come out in the same order.

package matrix

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Operation name constants for unified error wrapping.
const (
	opSplitTopK       = "SplitTopK"
	opArgTopK         = "ArgTopK"
	opNormalizeRowsL1 = "NormalizeRowsL1"
)

// Mean returns the arithmetic mean of x, defining the mean of an empty slice
// as 0 instead of NaN.
// Complexity: O(n).
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return stat.Mean(x, nil)
}

// SplitTopK partitions x into its k largest values (descending) and the
// remaining len(x)-k values (descending). x is not modified.
// Implementation:
//   - Stage 1: validate 0 <= k <= len(x).
//   - Stage 2: sort a copy in descending order.
//   - Stage 3: slice at k.
//
// Errors:
//   - ErrOutOfRange if k is outside [0, len(x)].
//
// Complexity:
//   - Time O(n log n), Space O(n).
func SplitTopK(x []float64, k int) (top, rest []float64, err error) {
	if k < 0 || k > len(x) {
		return nil, nil, matrixErrorf(opSplitTopK, ErrOutOfRange)
	}
	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	return sorted[:k], sorted[k:], nil
}

// ArgTopK returns the indices of the k largest values of x in descending
// value order; ties are broken by the lower index first.
//
// Errors:
//   - ErrOutOfRange if k is outside [0, len(x)].
//
// Complexity:
//   - Time O(n log n), Space O(n).
func ArgTopK(x []float64, k int) ([]int, error) {
	if k < 0 || k > len(x) {
		return nil, matrixErrorf(opArgTopK, ErrOutOfRange)
	}
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return x[idx[a]] > x[idx[b]] })

	return idx[:k], nil
}

// NormalizeRowsL1 returns a copy of X whose rows are scaled to unit L1 norm,
// together with the original row norms.
// Implementation:
//   - Stage 1: validate X (non-nil, non-empty).
//   - Stage 2: compute Σ|x_ij| per row.
//   - Stage 3: scale each row by 1/norm; rows with norm 0 (or non-finite
//     norm) are copied unchanged so callers can detect them via norms.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NormalizeRowsL1(X mat.Matrix) (*mat.Dense, []float64, error) {
	if err := ValidateNonEmpty(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}
	r, _ := X.Dims()
	Y := mat.DenseCopyOf(X)
	norms := make([]float64, r)
	for i := 0; i < r; i++ {
		row := Y.RawRowView(i)
		norms[i] = floats.Norm(row, 1)
		if norms[i] > 0 && !math.IsInf(norms[i], 0) {
			floats.Scale(1/norms[i], row)
		}
	}

	return Y, norms, nil
}
