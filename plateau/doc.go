// SPDX-License-Identifier: MIT

// Package plateau projects real vectors onto the plateau set Φ0.
//
// For a length-f vector and a designated index m, Φ0 is the set of vectors w
// with
//
//	w[m] == max(w)   and   0 <= w[i] <= 1 for every i.
//
// Project maps a vector into Φ0 with the "column squishing" projection:
// the designated value is merged, greedily and from the top, with every other
// coordinate that exceeds the running clipped average. Merged coordinates
// share one value (the plateau); the rest are only floored at zero.
//
// ⚙️ Usage:
//
//	w, err := plateau.Project([]float64{0.2, 0.9, 0.4}, 0)
//	// w == [0.55, 0.55, 0.4]
//
//	// Project every row j of a square matrix with designated index j:
//	P, err := plateau.ProjectRows(C)
//
// Properties (all exact, no tolerance):
//   - feasibility: Contains(Project(v, m), m, 0) is always true;
//   - idempotence: Project(Project(v, m), m) == Project(v, m);
//   - identity:    v ∈ Φ0 ⇒ Project(v, m) == v.
//
// Complexity: O(f log f) time and O(f) memory per vector.
package plateau
