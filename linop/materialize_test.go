// Package linop_test contains unit tests for the identity operator and dense
// materialization.
package linop_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lazyop/linop"
)

// TestIdentity verifies the unit operator copies its input and validates shape.
func TestIdentity(t *testing.T) {
	_, err := linop.Identity(0)
	require.ErrorIs(t, err, linop.ErrBadShape)

	eye, err := linop.Identity(3)
	require.NoError(t, err)
	require.True(t, eye.HasAdjoint())

	x := []float64{1, -2, 3}
	y, err := eye.MatVec(x)
	require.NoError(t, err)
	require.Equal(t, x, y)

	// The result must be independent of the input slice.
	y[0] = 99
	require.Equal(t, 1.0, x[0])
}

// TestToDenseRoundTrip materializes an array-backed operator and compares it
// element-wise with the original matrix.
func TestToDenseRoundTrip(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	op, err := linop.FromMatrix(m)
	require.NoError(t, err)

	d, err := linop.ToDense(op)
	require.NoError(t, err)
	r, c := d.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.InDelta(t, m.At(i, j), d.At(i, j), 1e-15)
		}
	}
}

// TestToDenseComposite materializes a lazy composition and checks it against
// the eager gonum computation of the same expression.
func TestToDenseComposite(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	b := mat.NewDense(2, 2, []float64{0, 1, 1, 0})

	opA, err := linop.FromMatrix(a)
	require.NoError(t, err)
	opB, err := linop.FromMatrix(b)
	require.NoError(t, err)
	prod, err := linop.Mul(opA, opB)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(a, b)

	got, err := linop.ToDense(prod)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.InDelta(t, want.At(i, j), got.At(i, j), 1e-12)
		}
	}
}

// TestToDenseNil ensures the nil guard fires.
func TestToDenseNil(t *testing.T) {
	_, err := linop.ToDense(nil)
	require.ErrorIs(t, err, linop.ErrNilOperator)
}

// TestToDenseFuncSynthesis materializes a function-backed operator through
// the synthesized batched apply (no native MatMat supplied).
func TestToDenseFuncSynthesis(t *testing.T) {
	// Cyclic shift: (x0,x1,x2) → (x2,x0,x1).
	op, err := linop.New(3, 3, func(x []float64) ([]float64, error) {
		return []float64{x[2], x[0], x[1]}, nil
	})
	require.NoError(t, err)

	d, err := linop.ToDense(op)
	require.NoError(t, err)
	require.InDelta(t, 1, d.At(0, 2), 1e-15)
	require.InDelta(t, 1, d.At(1, 0), 1e-15)
	require.InDelta(t, 1, d.At(2, 1), 1e-15)
	require.InDelta(t, 0, d.At(0, 0), 1e-15)
}
