// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/hottopixx/matrix"
	"gonum.org/v1/gonum/mat"
)

// validateInput checks X and r before any work is done.
func validateInput(x mat.Matrix, r int) error {
	if err := matrix.ValidateNonEmpty(x); err != nil {
		return fmt.Errorf("solver: FindC: %w", err)
	}
	if err := matrix.ValidateFinite(x); err != nil {
		return fmt.Errorf("solver: FindC: %w", err)
	}
	f, _ := x.Dims()
	if r < 1 || r > f-1 {
		return fmt.Errorf("%w: r=%d, f=%d", ErrDegenerateTarget, r, f)
	}

	return nil
}
