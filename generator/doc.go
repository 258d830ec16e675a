// SPDX-License-Identifier: MIT

// Package generator builds random input matrices for the HOTTOPIXX solver.
//
// The shape of the generation is chosen by a closed sum type, Source:
//
//   - GenerateAll{}          — every entry uniform in [0,1), rows normalized;
//   - ExtendFixed{Anchors: A} — the k rows of A (row-normalized) come first;
//     the remaining f-k rows are random convex combinations of them.
//
// Every row of the result sums to 1. Note that the solver reads columns as
// data points while this package normalizes rows; the convention is kept on
// purpose and must not be "fixed" here.
//
//	rng := rand.New(rand.NewSource(7))
//	X, err := generator.Generate(10, 4, generator.ExtendFixed{Anchors: A}, rng)
package generator
