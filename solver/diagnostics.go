// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/hottopixx/matrix"
	"gonum.org/v1/gonum/mat"
)

// diagnose reads d = diag(C), splits it into the r largest entries and the
// rest, and computes the three stopping diagnostics and the trace.
// Mean of an empty part is 0; validateInput keeps both parts non-empty.
func diagnose(c mat.Matrix, r int, beta float64) (Diagnostics, []float64, error) {
	d, err := matrix.Diagonal(c)
	if err != nil {
		return Diagnostics{}, nil, err
	}
	top, rest, err := matrix.SplitTopK(d, r)
	if err != nil {
		return Diagnostics{}, nil, err
	}

	var trace float64
	for _, v := range d {
		trace += v
	}

	return Diagnostics{
		Err1:  -matrix.Mean(top),
		Err2:  math.Abs(matrix.Mean(rest)),
		Err3:  math.Abs(beta) * math.Abs(trace-float64(r)),
		Trace: trace,
	}, d, nil
}

// DualStep is one ascent step on the trace multiplier:
// beta + s_d·(trace - r).
func DualStep(beta, dualStep, trace float64, r int) float64 {
	return beta + dualStep*(trace-float64(r))
}
