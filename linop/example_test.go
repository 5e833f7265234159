// SPDX-License-Identifier: MIT

package linop_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lazyop/linop"
)

// ExampleFromMatrix wraps the all-ones 3×4 matrix as a lazy operator and
// applies it to a vector of ones.
func ExampleFromMatrix() {
	m := mat.NewDense(3, 4, []float64{
		1, 1, 1, 1,
		1, 1, 1, 1,
		1, 1, 1, 1,
	})
	op, _ := linop.FromMatrix(m)

	y, _ := op.MatVec([]float64{1, 1, 1, 1})
	fmt.Println(y)

	// Output:
	// [4 4 4]
}

// ExampleNew builds a function-defined operator whose output broadcasts the
// input sum to every row — no matrix is ever stored.
func ExampleNew() {
	op, _ := linop.New(5, 5, func(x []float64) ([]float64, error) {
		var s float64
		for _, v := range x {
			s += v
		}
		out := make([]float64, 5)
		for i := range out {
			out[i] = s
		}

		return out, nil
	})

	y, _ := op.MatVec([]float64{1, 1, 1, 1, 1})
	fmt.Println(y)

	// Output:
	// [5 5 5 5 5]
}

// ExampleMul composes two operators lazily: the product is a call graph, and
// the right factor applies first.
func ExampleMul() {
	a, _ := linop.FromMatrix(mat.NewDense(2, 3, []float64{1, 0, 0, 0, 1, 0}))
	b, _ := linop.FromMatrix(mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6}))

	ab, _ := linop.Mul(a, b)
	fmt.Println(ab.Rows(), ab.Cols())

	y, _ := ab.MatVec([]float64{1, 1})
	fmt.Println(y)

	// Output:
	// 2 2
	// [3 7]
}
