// SPDX-License-Identifier: MIT

package adam

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hottopixx/matrix"
	"gonum.org/v1/gonum/mat"
)

// ErrBadParams is returned when a hyper-parameter is outside its domain.
var ErrBadParams = errors.New("adam: invalid parameters")

// Params holds the hyper-parameters of the update.
//
// Fields:
//   - StepSize — learning rate s (> 0).
//   - Coef1    — first-moment decay c1 in [0, 1).
//   - Coef2    — second-moment decay c2 in [0, 1).
//   - Eps      — floor added to the denominator (> 0).
type Params struct {
	StepSize float64
	Coef1    float64
	Coef2    float64
	Eps      float64
}

// DefaultParams returns s=0.01, c1=0.9, c2=0.999, eps=1e-8.
func DefaultParams() Params {
	return Params{
		StepSize: 0.01,
		Coef1:    0.9,
		Coef2:    0.999,
		Eps:      1e-8,
	}
}

// Validate checks every field against its domain.
func (p Params) Validate() error {
	fields := [...]struct {
		name string
		v    float64
	}{
		{"StepSize", p.StepSize}, {"Coef1", p.Coef1}, {"Coef2", p.Coef2}, {"Eps", p.Eps},
	}
	for _, fld := range fields {
		if math.IsNaN(fld.v) || math.IsInf(fld.v, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrBadParams, fld.name)
		}
	}
	switch {
	case p.StepSize <= 0:
		return fmt.Errorf("%w: StepSize must be > 0 (%g)", ErrBadParams, p.StepSize)
	case p.Coef1 < 0 || p.Coef1 >= 1:
		return fmt.Errorf("%w: Coef1 must lie in [0,1) (%g)", ErrBadParams, p.Coef1)
	case p.Coef2 < 0 || p.Coef2 >= 1:
		return fmt.Errorf("%w: Coef2 must lie in [0,1) (%g)", ErrBadParams, p.Coef2)
	case p.Eps <= 0:
		return fmt.Errorf("%w: Eps must be > 0 (%g)", ErrBadParams, p.Eps)
	}

	return nil
}

// State is the optimizer memory for one parameter matrix.
// Moment and Velocity share the parameter's shape; Coef1Pow and Coef2Pow
// are the bias-correction powers c1ᵗ and c2ᵗ.
type State struct {
	Moment   *mat.Dense
	Velocity *mat.Dense
	Coef1Pow float64
	Coef2Pow float64
}

// NewState returns zero moments of the given shape and powers initialised
// to the decay rates themselves (the first step corrects by 1-c1, 1-c2).
func NewState(rows, cols int, prm Params) (State, error) {
	if rows <= 0 || cols <= 0 {
		return State{}, fmt.Errorf("adam: NewState(%d,%d): %w", rows, cols, matrix.ErrBadShape)
	}
	if err := prm.Validate(); err != nil {
		return State{}, err
	}

	return State{
		Moment:   mat.NewDense(rows, cols, nil),
		Velocity: mat.NewDense(rows, cols, nil),
		Coef1Pow: prm.Coef1,
		Coef2Pow: prm.Coef2,
	}, nil
}
