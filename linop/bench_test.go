// Package linop_test provides benchmarks for operator applies, using
// deterministic random fill for the backing matrices.
package linop_test

import (
	"fmt"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lazyop/linop"
)

// benchSizes are the operator sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkV []float64
	sinkM *mat.Dense
)

// randOperator builds an n×n array-backed operator with seeded random data.
func randOperator(b *testing.B, n int, seed int64) linop.Operator {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*n)
	for i := range data {
		data[i] = rng.Float64()
	}
	op, err := linop.FromMatrix(mat.NewDense(n, n, data))
	if err != nil {
		b.Fatal(err)
	}

	return op
}

// randVec builds a length-n vector with seeded random data.
func randVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	x := make([]float64, n)
	for i := range x {
		x[i] = rng.Float64()
	}

	return x
}

func BenchmarkArrayMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			op := randOperator(b, n, 1337)
			x := randVec(n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := op.MatVec(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkCompositeMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			// 2·(A+B) — three delegation layers over two array operators.
			opA := randOperator(b, n, 11)
			opB := randOperator(b, n, 22)
			sum, err := linop.Add(opA, opB)
			if err != nil {
				b.Fatal(err)
			}
			op, err := linop.Scale(2.0, sum)
			if err != nil {
				b.Fatal(err)
			}
			x := randVec(n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := op.MatVec(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkToDense(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			op := randOperator(b, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := linop.ToDense(op)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = d
			}
		})
	}
}
