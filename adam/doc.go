// SPDX-License-Identifier: MIT

// Package adam implements a bias-corrected adaptive step (Adam) for a
// matrix-valued parameter.
//
// Step is a pure function: it takes the gradient, the parameter and the
// optimizer State and returns a fresh parameter and a fresh State. Nothing
// passed in is mutated.
//
//	prm := adam.DefaultParams()
//	st, _ := adam.NewState(f, f, prm)
//	for _, g := range grads {
//		C, st, err = adam.Step(g, C, st, prm, true)
//	}
//
// Element-wise update for gradient G, parameter P:
//
//	M' = c1·M + (1-c1)·G
//	V' = c2·V + (1-c2)·G²
//	D  = (M' / (1-c1ᵖ)) / (eps + sqrt(V' / (1-c2ᵖ)))
//	P' = P - s·D
//
// where c1ᵖ, c2ᵖ are the running powers kept in State and advanced by one
// factor of c1, c2 when the caller asks for it.
package adam
