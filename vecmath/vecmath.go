// SPDX-License-Identifier: MIT

// Package vecmath: generic vector kernels. Callers guarantee that paired
// slices have equal length; kernels iterate in fixed left-to-right order so
// floating-point accumulation is reproducible across runs.
package vecmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Dot returns the inner product ⟨x, y⟩ with left-to-right accumulation.
// Complexity: O(n), no allocations.
func Dot[F constraints.Float](x, y []F) F {
	var acc F
	for i := range x {
		acc += x[i] * y[i]
	}

	return acc
}

// Norm2 returns the Euclidean norm ‖x‖₂.
// Complexity: O(n), no allocations.
func Norm2[F constraints.Float](x []F) F {
	return F(math.Sqrt(float64(Dot(x, x))))
}

// Axpy performs y += alpha·x in place.
// Complexity: O(n), no allocations.
func Axpy[F constraints.Float](alpha F, x, y []F) {
	for i := range x {
		y[i] += alpha * x[i]
	}
}

// ScaleInPlace performs x *= alpha in place.
// Complexity: O(n), no allocations.
func ScaleInPlace[F constraints.Float](alpha F, x []F) {
	for i := range x {
		x[i] *= alpha
	}
}

// Scaled returns a fresh slice holding alpha·x; x is untouched.
// Complexity: O(n) time and space.
func Scaled[F constraints.Float](alpha F, x []F) []F {
	out := make([]F, len(x))
	for i := range x {
		out[i] = alpha * x[i]
	}

	return out
}

// Clone returns an independent copy of x.
// Complexity: O(n) time and space.
func Clone[F constraints.Float](x []F) []F {
	out := make([]F, len(x))
	copy(out, x)

	return out
}

// Sum returns the plain sum of the elements of x.
// Complexity: O(n), no allocations.
func Sum[F constraints.Float](x []F) F {
	var acc F
	for i := range x {
		acc += x[i]
	}

	return acc
}
