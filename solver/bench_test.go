// SPDX-License-Identifier: MIT

package solver_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hottopixx/generator"
	"github.com/katalvlaran/hottopixx/solver"
)

func benchmarkFindC(b *testing.B, f, n int) {
	X, err := generator.Generate(f, n, generator.GenerateAll{}, rand.New(rand.NewSource(1)))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = solver.FindC(X, f/4+1, solver.WithStop(solver.NeverStop), solver.WithEpochs(5)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFindC_10x4(b *testing.B)   { benchmarkFindC(b, 10, 4) }
func BenchmarkFindC_50x100(b *testing.B) { benchmarkFindC(b, 50, 100) }
