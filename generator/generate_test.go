// SPDX-License-Identifier: MIT

package generator_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hottopixx/generator"
	"github.com/katalvlaran/hottopixx/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-12

// anchorRows are the three boundary rows of the reference demo.
func anchorRows() *mat.Dense {
	return mat.NewDense(3, 4, []float64{
		.1, .1, .8, 0,
		.1, .8, 0, .1,
		.8, .1, 0, .1,
	})
}

func requireRowsSumToOne(t *testing.T, X *mat.Dense) {
	t.Helper()
	r, _ := X.Dims()
	for i := 0; i < r; i++ {
		require.InDeltaf(t, 1.0, floats.Sum(X.RawRowView(i)), tol, "row %d", i)
	}
}

func TestGenerate_All(t *testing.T) {
	t.Parallel()

	X, err := generator.Generate(6, 5, generator.GenerateAll{}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	r, c := X.Dims()
	assert.Equal(t, 6, r)
	assert.Equal(t, 5, c)
	requireRowsSumToOne(t, X)
	for _, v := range X.RawMatrix().Data {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestGenerate_ExtendFixed(t *testing.T) {
	t.Parallel()

	A := anchorRows()
	X, err := generator.Generate(10, 4, generator.ExtendFixed{Anchors: A}, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	r, c := X.Dims()
	require.Equal(t, 10, r)
	require.Equal(t, 4, c)
	requireRowsSumToOne(t, X)

	// Anchors already sum to 1, so they are copied verbatim.
	for i := 0; i < 3; i++ {
		assert.InDeltaSlice(t, A.RawRowView(i), X.RawRowView(i), tol)
	}

	// Mixed rows stay inside the convex hull of the anchors: every entry is
	// bounded by the column-wise min/max of the anchors.
	for j := 0; j < 4; j++ {
		col := mat.Col(nil, j, A)
		lo, hi := floats.Min(col), floats.Max(col)
		for i := 3; i < 10; i++ {
			v := X.At(i, j)
			assert.GreaterOrEqual(t, v, lo-tol)
			assert.LessOrEqual(t, v, hi+tol)
		}
	}
}

func TestGenerate_ExtendFixedNormalizesAnchors(t *testing.T) {
	t.Parallel()

	A := mat.NewDense(2, 2, []float64{2, 2, 1, 3})
	X, err := generator.Generate(2, 2, generator.ExtendFixed{Anchors: A}, nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0.5, 0.25, 0.75}, X.RawMatrix().Data, tol)
	assert.Equal(t, 2.0, A.At(0, 0), "anchors must not be mutated")
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	src := generator.ExtendFixed{Anchors: anchorRows()}
	a, err := generator.Generate(10, 4, src, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b, err := generator.Generate(10, 4, src, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	assert.True(t, mat.Equal(a, b))
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f, n int
		src  generator.Source
		want error
	}{
		{"zero rows", 0, 4, generator.GenerateAll{}, matrix.ErrBadShape},
		{"zero cols", 3, 0, generator.GenerateAll{}, matrix.ErrBadShape},
		{"nil source", 3, 4, nil, generator.ErrUnknownSource},
		{"nil anchors", 3, 4, generator.ExtendFixed{}, matrix.ErrNilMatrix},
		{"column mismatch", 10, 5, generator.ExtendFixed{Anchors: anchorRows()}, generator.ErrShapeMismatch},
		{"too many anchors", 2, 4, generator.ExtendFixed{Anchors: anchorRows()}, generator.ErrShapeMismatch},
		{"zero anchor row", 3, 2, generator.ExtendFixed{Anchors: mat.NewDense(1, 2, nil)}, generator.ErrDegenerateAnchor},
		{"negative anchor", 3, 2, generator.ExtendFixed{Anchors: mat.NewDense(1, 2, []float64{-1, 2})}, generator.ErrDegenerateAnchor},
		{"nan anchor", 3, 2, generator.ExtendFixed{Anchors: mat.NewDense(1, 2, []float64{math.NaN(), 2})}, generator.ErrDegenerateAnchor},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			X, err := generator.Generate(tc.f, tc.n, tc.src, nil)
			assert.Nil(t, X)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
