// Package vecmath_test contains unit tests for the generic vector kernels.
package vecmath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lazyop/vecmath"
)

// TestDot verifies the inner product for float64 and float32 element types.
func TestDot(t *testing.T) {
	require.Equal(t, 32.0, vecmath.Dot([]float64{1, 2, 3}, []float64{4, 5, 6}))
	require.Equal(t, float32(32), vecmath.Dot([]float32{1, 2, 3}, []float32{4, 5, 6}))
}

// TestNorm2 verifies the Euclidean norm on a 3-4-5 triangle.
func TestNorm2(t *testing.T) {
	require.InDelta(t, 5.0, vecmath.Norm2([]float64{3, 4}), 1e-15)
}

// TestAxpy verifies the in-place y += alpha*x update.
func TestAxpy(t *testing.T) {
	y := []float64{1, 1, 1}
	vecmath.Axpy(2.0, []float64{1, 2, 3}, y)
	require.Equal(t, []float64{3, 5, 7}, y)
}

// TestScaleInPlace verifies in-place scaling.
func TestScaleInPlace(t *testing.T) {
	x := []float64{1, -2, 4}
	vecmath.ScaleInPlace(0.5, x)
	require.Equal(t, []float64{0.5, -1, 2}, x)
}

// TestScaled verifies that Scaled returns a fresh slice and leaves x intact.
func TestScaled(t *testing.T) {
	x := []float64{1, 2}
	out := vecmath.Scaled(3.0, x)
	require.Equal(t, []float64{3, 6}, out)
	require.Equal(t, []float64{1, 2}, x) // input untouched
}

// TestCloneIndependence ensures Clone does not share backing storage.
func TestCloneIndependence(t *testing.T) {
	x := []float64{1, 2, 3}
	c := vecmath.Clone(x)
	c[0] = 9
	require.Equal(t, 1.0, x[0]) // original remains unchanged
}

// TestSum verifies plain element summation.
func TestSum(t *testing.T) {
	require.Equal(t, 10.0, vecmath.Sum([]float64{1, 2, 3, 4}))
}
