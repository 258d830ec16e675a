// SPDX-License-Identifier: MIT

// Package solver finds the HOTTOPIXX selection matrix C for near-separable
// nonnegative matrix factorization.
//
// What
//
//   - Given a data matrix X (f×n, columns are points) and a target count r,
//     FindC runs online stochastic sub-gradient descent on the f×f matrix C
//     so that X ≈ C·X while trace(C) ≈ r. Rows of C are kept in the plateau
//     set Φ0 (row j peaks at its own diagonal entry, entries in [0,1]), so
//     the diagonal of C reads as selection weights: the r largest diagonal
//     entries mark the boundary rows.
//   - Returns a Result with C, the number of epochs run and helpers to read
//     the boundary indices and the residual X - C·X.
//
// Epoch loop
//
//  1. draw n column indices uniformly with replacement (not a shuffle);
//  2. for each draw k: x = X[:,k], G = -sign(x - C·x)·xᵀ, G[i,:] += beta - p[i],
//     then one adam.Step on C (bias-correction powers advance every call);
//  3. project row j of C onto Φ0 with designated index j;
//  4. diagnostics on d = diag(C): err1 = -mean(top r of d),
//     err2 = |mean(rest of d)|, err3 = |beta|·|trace(C) - r|;
//  5. ask the stopping Predicate; a true answer ends the loop after this epoch;
//  6. dual ascent beta += s_d·(trace(C) - r);
//  7. epoch++ and report through OnEpoch.
//
// p is a random penalty vector drawn once per call; it breaks ties between
// candidate boundary rows.
//
// Determinism
//
//	All randomness comes from one *rand.Rand: WithRand, or a stream seeded by
//	WithSeed (seed 0 ⇒ seed 1). The same seed and input give a bit-identical
//	Result. The loop is strictly sequential: every inner step depends on the
//	state left by the previous one.
//
// Usage
//
//	res, err := solver.FindC(X, 2,
//	    solver.WithEpochs(30),
//	    solver.WithSeed(7),
//	    solver.WithOnEpoch(func(rep solver.EpochReport) error {
//	        fmt.Println(rep.Epoch, rep.Err1, rep.Err2, rep.Err3)
//	        return nil
//	    }),
//	)
//	boundary := res.Boundary()
//
// Options
//
//   - WithEpochs(n):        epoch cap (default 20).
//   - WithPrimalStep(s):    Adam learning rate for C (default 0.01).
//   - WithDualStep(s):      ascent rate for beta (default 0.01).
//   - WithDecay(c1, c2):    Adam decay rates (default 0.9, 0.999).
//   - WithEpsilon(eps):     Adam denominator floor (default 1e-8).
//   - WithStop(p):          stopping Predicate (default DefaultStop).
//   - WithSeed(s), WithRand(r): randomness source.
//   - WithOnEpoch(fn):      per-epoch hook; returning an error aborts.
//   - WithContext(ctx):     checked before each epoch, never mid-epoch.
//
// Errors
//
//   - matrix.ErrNilMatrix, matrix.ErrBadShape, matrix.ErrNaNInf for bad X.
//   - ErrDegenerateTarget if r is outside [1, f-1].
//   - ErrOptionViolation  for invalid options.
//   - Wrapped context errors and OnEpoch hook errors.
//
// Complexity (per epoch)
//
//   - Time:   O(n·f²) for the inner steps + O(f² log f) for the projection.
//   - Memory: O(f²).
package solver
