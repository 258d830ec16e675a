// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All helpers return these sentinels (optionally wrapped with %w) and tests
// check them via errors.Is. Panics are reserved for programmer errors in
// private helpers.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for grep-ability. Callers that
// need context wrap with fmt.Errorf("ctx: %w", ErrX); errors.Is still matches.
var (
	// ErrNilMatrix indicates that a nil matrix or vector was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a matrix or vector has no elements
	// (rows<=0, cols<=0 or len==0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
