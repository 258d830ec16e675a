// SPDX-License-Identifier: MIT

package solver_test

import (
	"testing"

	"github.com/katalvlaran/hottopixx/solver"
	"github.com/stretchr/testify/assert"
)

func TestDefaultStop(t *testing.T) {
	t.Parallel()

	assert.False(t, solver.DefaultStop(1.0, 0.5, 0), "gap of exactly 0.5 must not stop")
	assert.False(t, solver.DefaultStop(-1.0, 0.5, 0))
	assert.True(t, solver.DefaultStop(1.01, 0.5, 0))
	assert.True(t, solver.DefaultStop(-0.9, 0.1, 100), "err3 is ignored")
	assert.False(t, solver.DefaultStop(0, 0, 0))
}

func TestGapAbove(t *testing.T) {
	t.Parallel()

	p := solver.GapAbove(0.2)
	assert.True(t, p(-0.5, 0.2, 0))
	assert.False(t, p(-0.4, 0.2, 0))
	assert.Equal(t, solver.DefaultStop(-0.8, 0.2, 0), solver.GapAbove(solver.DefaultGap)(-0.8, 0.2, 0))
}

func TestNeverStopAndAnyOf(t *testing.T) {
	t.Parallel()

	assert.False(t, solver.NeverStop(-1, 0, 0))
	assert.False(t, solver.AnyOf()(-1, 0, 0))
	assert.False(t, solver.AnyOf(solver.NeverStop, nil)(-1, 0, 0))
	assert.True(t, solver.AnyOf(solver.NeverStop, nil, solver.DefaultStop)(-1, 0.1, 0))

	err3Small := func(_, _, e3 float64) bool { return e3 < 1e-3 }
	assert.True(t, solver.AnyOf(solver.DefaultStop, err3Small)(-0.2, 0.1, 1e-4))
}
