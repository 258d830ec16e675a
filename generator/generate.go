// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/hottopixx/internal/rng"
	"github.com/katalvlaran/hottopixx/matrix"
	"gonum.org/v1/gonum/mat"
)

// Generate returns an f×n matrix whose rows each sum to 1.
// A nil r falls back to the default deterministic stream.
//
// Errors:
//   - matrix.ErrBadShape     when f <= 0 or n <= 0;
//   - matrix.ErrNilMatrix    when ExtendFixed has no anchors;
//   - ErrShapeMismatch       when the anchors do not fit (f, n);
//   - ErrDegenerateAnchor    when an anchor row cannot be normalized;
//   - ErrUnknownSource       when src is nil.
//
// Nothing is allocated before validation succeeds.
func Generate(f, n int, src Source, r *rand.Rand) (*mat.Dense, error) {
	if f <= 0 || n <= 0 {
		return nil, fmt.Errorf("generator: Generate(%d,%d): %w", f, n, matrix.ErrBadShape)
	}
	r = rng.OrDefault(r)

	switch s := src.(type) {
	case GenerateAll:
		return generateAll(f, n, r)
	case ExtendFixed:
		return extendFixed(f, n, s.Anchors, r)
	default:
		return nil, ErrUnknownSource
	}
}

func generateAll(f, n int, r *rand.Rand) (*mat.Dense, error) {
	raw := mat.NewDense(f, n, rng.Uniform(r, f*n))
	out, _, err := matrix.NormalizeRowsL1(raw)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	return out, nil
}

func extendFixed(f, n int, anchors mat.Matrix, r *rand.Rand) (*mat.Dense, error) {
	if err := matrix.ValidateNonEmpty(anchors); err != nil {
		return nil, fmt.Errorf("generator: anchors: %w", err)
	}
	k, c := anchors.Dims()
	if c != n || k > f {
		return nil, fmt.Errorf("%w: anchors are %d×%d, want ≤%d×%d", ErrShapeMismatch, k, c, f, n)
	}
	if err := validateAnchors(anchors); err != nil {
		return nil, err
	}

	fixed, _, err := matrix.NormalizeRowsL1(anchors)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	if k == f {
		return fixed, nil
	}

	// Convex weights: (f-k)×k uniform, each row normalized.
	weights, _, err := matrix.NormalizeRowsL1(mat.NewDense(f-k, k, rng.Uniform(r, (f-k)*k)))
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	var mixed mat.Dense
	mixed.Mul(weights, fixed)

	out := mat.NewDense(f, n, nil)
	out.Stack(fixed, &mixed)

	return out, nil
}

// validateAnchors requires finite, non-negative rows with a positive sum.
func validateAnchors(a mat.Matrix) error {
	k, n := a.Dims()
	for i := 0; i < k; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			v := a.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return fmt.Errorf("%w: row %d has entry %g", ErrDegenerateAnchor, i, v)
			}
			sum += v
		}
		if sum <= 0 {
			return fmt.Errorf("%w: row %d sums to zero", ErrDegenerateAnchor, i)
		}
	}

	return nil
}
