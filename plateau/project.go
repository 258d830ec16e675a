// SPDX-License-Identifier: MIT

package plateau

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hottopixx/matrix"
	"gonum.org/v1/gonum/mat"
)

// Clip01 limits x to the unit interval [0, 1].
func Clip01(x float64) float64 {
	return matrix.Clip(x, 0, 1)
}

// Project returns a fresh vector close to v in which coordinate m is the
// maximum and every coordinate lies in [0,1]. v is not modified.
//
// Algorithm (column squishing):
//  1. s[0] = v[m]; s[1..f-1] = the other coordinates sorted descending
//     (removed by position, each remembering its original index).
//  2. mu = clip01(s[0]). For k = 1..f-1: stop at the first s[k] <= mu and
//     set k_c = k-1; otherwise mu = clip01((k*mu + s[k]) / (k+1)).
//     Without a break k_c = f-1.
//  3. Sorted positions 0..k_c take mu; positions k_c+1.. take max(s[k], 0).
//  4. Reinsert: position 0 goes back to m, position k to the index it was
//     taken from.
//
// Errors:
//   - matrix.ErrBadShape   if v is empty;
//   - matrix.ErrOutOfRange if m is outside [0, len(v));
//   - matrix.ErrNaNInf     if v holds NaN or ±Inf.
func Project(v []float64, m int) ([]float64, error) {
	f := len(v)
	if f == 0 {
		return nil, fmt.Errorf("plateau: Project: %w", matrix.ErrBadShape)
	}
	if err := matrix.ValidateIndex(m, f); err != nil {
		return nil, fmt.Errorf("plateau: Project(m=%d): %w", m, err)
	}
	if err := matrix.ValidateFiniteVec(v); err != nil {
		return nil, fmt.Errorf("plateau: Project: %w", err)
	}

	w := make([]float64, f)
	if f == 1 {
		w[0] = Clip01(v[0])
		return w, nil
	}

	// order[k] is the original index of sorted position k; order[0] == m.
	order := make([]int, 0, f)
	order = append(order, m)
	for i := 0; i < f; i++ {
		if i != m {
			order = append(order, i)
		}
	}
	rest := order[1:]
	sort.SliceStable(rest, func(a, b int) bool { return v[rest[a]] > v[rest[b]] })

	mu := Clip01(v[m])
	kc := f - 1
	for k := 1; k < f; k++ {
		s := v[order[k]]
		if s <= mu {
			kc = k - 1
			break
		}
		mu = Clip01((float64(k)*mu + s) / float64(k+1))
	}

	for k, i := range order {
		if k <= kc {
			w[i] = mu
			continue
		}
		w[i] = max(v[i], 0)
	}

	return w, nil
}

// Contains reports whether w lies in Φ0 for designated index m, allowing an
// absolute slack tol on every comparison. An out-of-range m yields false.
func Contains(w []float64, m int, tol float64) bool {
	if m < 0 || m >= len(w) {
		return false
	}
	top := w[m]
	for _, x := range w {
		if x < -tol || x > 1+tol || x > top+tol {
			return false
		}
	}

	return true
}

// ProjectRows returns a fresh matrix whose row j is Project(row_j(c), j).
// c must be square and is left untouched.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrBadShape, matrix.ErrNonSquare;
//   - any error from Project, annotated with the row index.
//
// Complexity: O(f² log f).
func ProjectRows(c mat.Matrix) (*mat.Dense, error) {
	if err := matrix.ValidateNonEmpty(c); err != nil {
		return nil, fmt.Errorf("plateau: ProjectRows: %w", err)
	}
	if err := matrix.ValidateSquare(c); err != nil {
		return nil, fmt.Errorf("plateau: ProjectRows: %w", err)
	}

	f, _ := c.Dims()
	out := mat.NewDense(f, f, nil)
	row := make([]float64, f)
	for j := 0; j < f; j++ {
		mat.Row(row, j, c)
		w, err := Project(row, j)
		if err != nil {
			return nil, fmt.Errorf("plateau: ProjectRows: row %d: %w", j, err)
		}
		out.SetRow(j, w)
	}

	return out, nil
}
