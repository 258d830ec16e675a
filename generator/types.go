// SPDX-License-Identifier: MIT

package generator

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrShapeMismatch is returned when the anchor matrix does not fit the
	// requested (f, n): column count != n or row count > f.
	ErrShapeMismatch = errors.New("generator: anchor shape mismatch")

	// ErrDegenerateAnchor is returned for an anchor row that cannot be
	// normalized: a negative or non-finite entry, or a zero sum.
	ErrDegenerateAnchor = errors.New("generator: degenerate anchor row")

	// ErrUnknownSource is returned for a nil Source.
	ErrUnknownSource = errors.New("generator: unknown source")
)

// Source selects how Generate fills the matrix. It is sealed: only
// GenerateAll and ExtendFixed implement it.
type Source interface {
	isSource()
}

// GenerateAll draws every row at random.
type GenerateAll struct{}

// ExtendFixed keeps Anchors as the leading rows and fills the rest with
// convex combinations of them.
type ExtendFixed struct {
	Anchors mat.Matrix
}

func (GenerateAll) isSource() {}
func (ExtendFixed) isSource() {}
