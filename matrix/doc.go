// SPDX-License-Identifier: MIT

// Package matrix holds the small numeric toolkit shared by the HOTTOPIXX
// packages. Storage and BLAS-level algebra come from gonum (mat.Dense);
// this package adds what gonum leaves to callers:
//
//   - a unified sentinel error set (errors.go) matched with errors.Is,
//   - shape, index and finiteness validators (validators.go),
//   - element-wise kernels: sign, clipping, per-row shifts (ops_elementwise.go),
//   - diagonal/column extraction and trace with validation (linalg.go),
//   - empty-safe means, top-k splits and L1 row normalization (impl_statistics.go).
//
// Conventions:
//   - Public helpers never panic on user input; they return sentinels wrapped
//     with an operation tag ("Diagonal: matrix: matrix is not square").
//   - Inputs are never mutated unless the function name says so
//     (AddRowShiftInPlace).
//   - Loops run in a fixed i→j order so results are bit-for-bit reproducible.
package matrix
