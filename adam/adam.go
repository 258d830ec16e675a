// SPDX-License-Identifier: MIT

package adam

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hottopixx/matrix"
	"gonum.org/v1/gonum/mat"
)

// Step applies one Adam update of p along gradient g and returns the new
// parameter and state. When advance is true the bias-correction powers are
// multiplied by their decay rates after the update.
//
// No input is mutated. There is no numeric failure path: eps keeps the
// denominator away from zero.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrBadShape for missing operands;
//   - matrix.ErrDimensionMismatch when g, p, Moment and Velocity disagree;
//   - ErrBadParams from Params.Validate.
func Step(g, p mat.Matrix, st State, prm Params, advance bool) (*mat.Dense, State, error) {
	for _, m := range []mat.Matrix{g, p, st.Moment, st.Velocity} {
		if err := matrix.ValidateNonEmpty(m); err != nil {
			return nil, State{}, fmt.Errorf("adam: Step: %w", err)
		}
	}
	for _, m := range []mat.Matrix{p, st.Moment, st.Velocity} {
		if err := matrix.ValidateSameShape(g, m); err != nil {
			return nil, State{}, fmt.Errorf("adam: Step: %w", err)
		}
	}
	if err := prm.Validate(); err != nil {
		return nil, State{}, err
	}

	r, c := g.Dims()
	moment := mat.NewDense(r, c, nil)
	velocity := mat.NewDense(r, c, nil)
	next := mat.NewDense(r, c, nil)

	c1, c2 := prm.Coef1, prm.Coef2
	corr1, corr2 := 1-st.Coef1Pow, 1-st.Coef2Pow
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			gij := g.At(i, j)
			m := c1*st.Moment.At(i, j) + (1-c1)*gij
			v := c2*st.Velocity.At(i, j) + (1-c2)*gij*gij
			d := (m / corr1) / (prm.Eps + math.Sqrt(v/corr2))
			moment.Set(i, j, m)
			velocity.Set(i, j, v)
			next.Set(i, j, p.At(i, j)-prm.StepSize*d)
		}
	}

	out := State{
		Moment:   moment,
		Velocity: velocity,
		Coef1Pow: st.Coef1Pow,
		Coef2Pow: st.Coef2Pow,
	}
	if advance {
		out.Coef1Pow *= c1
		out.Coef2Pow *= c2
	}

	return next, out, nil
}
