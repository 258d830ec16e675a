// SPDX-License-Identifier: MIT

package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestSubgradient checks G = -sign(x - C·x)·xᵀ plus the row shift by hand.
func TestSubgradient(t *testing.T) {
	t.Parallel()

	g, err := subgradient(mat.NewDense(2, 2, nil), []float64{1, 2}, 0.5, []float64{0.1, 0.2})
	require.NoError(t, err)
	want := mat.NewDense(2, 2, []float64{
		-0.6, -1.6,
		-0.7, -1.7,
	})
	assert.True(t, mat.EqualApprox(g, want, 1e-12), "got\n%v", mat.Formatted(g))

	// Exact reconstruction: sign is 0, only the dual shift remains.
	id := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	g, err = subgradient(id, []float64{1, 2}, 0, []float64{0.1, 0.2})
	require.NoError(t, err)
	want = mat.NewDense(2, 2, []float64{
		-0.1, -0.1,
		-0.2, -0.2,
	})
	assert.True(t, mat.EqualApprox(g, want, 1e-12), "got\n%v", mat.Formatted(g))

	// Over-reconstruction flips the sign.
	g, err = subgradient(mat.NewDense(2, 2, []float64{2, 0, 0, 0}), []float64{1, 1}, 0, []float64{0, 0})
	require.NoError(t, err)
	want = mat.NewDense(2, 2, []float64{
		1, 1,
		-1, -1,
	})
	assert.True(t, mat.Equal(g, want), "got\n%v", mat.Formatted(g))
}

func TestDiagnose(t *testing.T) {
	t.Parallel()

	c := mat.NewDense(4, 4, nil)
	for i, v := range []float64{0.9, 0.2, 0.7, 0.1} {
		c.Set(i, i, v)
	}
	c.Set(0, 1, 0.5) // off-diagonal entries are ignored

	diag, d, err := diagnose(c, 2, -2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.9, 0.2, 0.7, 0.1}, d)
	assert.InDelta(t, -0.8, diag.Err1, 1e-12)
	assert.InDelta(t, 0.15, diag.Err2, 1e-12)
	assert.InDelta(t, 1.9, diag.Trace, 1e-12)
	assert.InDelta(t, 0.2, diag.Err3, 1e-12)
}

func TestDualStep(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.51, DualStep(0.5, 0.01, 3, 2), 1e-15)
	assert.InDelta(t, -0.01, DualStep(0, 0.01, 1, 2), 1e-15)
	assert.Equal(t, 0.25, DualStep(0.25, 0.01, 2, 2))
}
