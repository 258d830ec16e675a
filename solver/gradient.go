// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/hottopixx/matrix"
	"gonum.org/v1/gonum/mat"
)

// subgradient returns the f×f sub-gradient of ‖x - C·x‖₁ + beta·trace(C) -
// pᵀdiag(C) at the single data column x:
//
//	G = -sign(x - C·x)·xᵀ,  then  G[i,:] += beta - p[i].
//
// The dual shift covers the whole row i, not only the diagonal cell.
// sign(0) is 0, so an exactly reconstructed coordinate contributes nothing.
//
// Complexity: O(f²).
func subgradient(c *mat.Dense, x []float64, beta float64, p []float64) (*mat.Dense, error) {
	f := len(x)
	xv := mat.NewVecDense(f, x)

	var cx mat.VecDense
	cx.MulVec(c, xv)

	s, err := matrix.SignDiff(nil, x, cx.RawVector().Data)
	if err != nil {
		return nil, err
	}

	g := mat.NewDense(f, f, nil)
	g.Outer(-1, mat.NewVecDense(f, s), xv)

	shift := make([]float64, f)
	for i := range shift {
		shift[i] = beta - p[i]
	}
	if err = matrix.AddRowShiftInPlace(g, shift); err != nil {
		return nil, err
	}

	return g, nil
}
