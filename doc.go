// Package hottopixx finds the boundary rows of a near-separable nonnegative
// matrix: the few rows that span all the others as convex combinations.
//
// 🚀 What is hottopixx?
//
//	An implementation of the HOTTOPIXX linear-programming relaxation, solved
//	by online stochastic sub-gradient descent instead of an LP solver:
//		• Plateau projection: rows of C onto Φ0 by column squishing
//		• Adam-style adaptive steps on the selection matrix C
//		• Dual ascent on the trace constraint trace(C) = r
//		• Pluggable stopping rules and per-epoch hooks
//		• Seeded data generation for experiments
//
// ✨ Why choose hottopixx?
//
//   - Deterministic – one seed reproduces a run bit for bit
//   - gonum-native – every matrix is a gonum mat.Matrix
//   - Silent library – observe progress through OnEpoch, log where you like
//
// Packages:
//
//	plateau/   — Project, ProjectRows, Contains: the Φ0 projector
//	adam/      — Params, State, Step: one pure adaptive update
//	solver/    — FindC, stopping Predicates, Result helpers
//	generator/ — GenerateAll / ExtendFixed row-normalised inputs
//	matrix/    — validators and small numeric helpers over gonum
//	cmd/hottopixx — CLI: run, generate (cobra, viper, logrus, YAML)
//
// Quick example:
//
//	X, _ := generator.Generate(10, 4, generator.ExtendFixed{Anchors: A}, nil)
//	res, _ := solver.FindC(X, 2, solver.WithEpochs(30))
//	fmt.Println(res.Boundary(2)) // indices of the two boundary rows
//
//	go install github.com/katalvlaran/hottopixx/cmd/hottopixx@latest
package hottopixx
