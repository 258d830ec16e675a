// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/hottopixx/matrix"
	"gonum.org/v1/gonum/mat"
)

// Diagonal returns a fresh copy of diag(C), or nil for a zero Result.
func (res Result) Diagonal() []float64 {
	if res.C == nil {
		return nil
	}
	d, err := matrix.Diagonal(res.C)
	if err != nil {
		return nil
	}
	return d
}

// Boundary returns the indices of the k largest diagonal entries of C in
// descending order, ties broken by the lower index. k is clamped to [0, f].
// These are the rows FindC selected as boundary (extreme) rows.
func (res Result) Boundary(k int) []int {
	d := res.Diagonal()
	if k < 0 {
		k = 0
	}
	if k > len(d) {
		k = len(d)
	}
	idx, _ := matrix.ArgTopK(d, k)
	return idx
}

// Residual returns X - C·X. C must be f×f where f is the row count of X.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrBadShape for empty operands;
//   - matrix.ErrNonSquare when C is not square;
//   - matrix.ErrDimensionMismatch when C and X disagree on f.
func Residual(x, c mat.Matrix) (*mat.Dense, error) {
	for _, m := range []mat.Matrix{x, c} {
		if err := matrix.ValidateNonEmpty(m); err != nil {
			return nil, fmt.Errorf("solver: Residual: %w", err)
		}
	}
	if err := matrix.ValidateSquare(c); err != nil {
		return nil, fmt.Errorf("solver: Residual: %w", err)
	}
	f, n := x.Dims()
	if cf, _ := c.Dims(); cf != f {
		return nil, fmt.Errorf("solver: Residual: C is %d×%d, X has %d rows: %w",
			cf, cf, f, matrix.ErrDimensionMismatch)
	}

	out := mat.NewDense(f, n, nil)
	out.Mul(c, x)
	out.Sub(x, out)

	return out, nil
}
