// Package linop_test contains unit tests for function-backed operators and
// the column-wise synthesis fallback.
package linop_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lazyop/linop"
	"github.com/katalvlaran/lazyop/vecmath"
)

// broadcastSum is the (5,5) scenario operator: each output element is the sum
// of all input elements (column sums broadcast to every row).
func broadcastSum(t *testing.T) linop.Operator {
	t.Helper()
	op, err := linop.New(5, 5, func(x []float64) ([]float64, error) {
		s := vecmath.Sum(x)
		out := make([]float64, 5)
		for i := range out {
			out[i] = s
		}

		return out, nil
	})
	require.NoError(t, err)

	return op
}

// TestNewValidation ensures New rejects bad shapes and a nil callback.
func TestNewValidation(t *testing.T) {
	_, err := linop.New(0, 4, func(x []float64) ([]float64, error) { return x, nil })
	require.ErrorIs(t, err, linop.ErrBadShape)

	_, err = linop.New(4, -1, func(x []float64) ([]float64, error) { return x, nil })
	require.ErrorIs(t, err, linop.ErrBadShape)

	_, err = linop.New(4, 4, nil)
	require.ErrorIs(t, err, linop.ErrNilFunc)
}

// TestFuncBroadcastSum runs the (5,5) scenario: apply(ones(5)) == fives.
func TestFuncBroadcastSum(t *testing.T) {
	op := broadcastSum(t)
	y, err := op.MatVec([]float64{1, 1, 1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{5, 5, 5, 5, 5}, y)
}

// TestFuncAdjointUndefined ensures RMatVec on a matvec-only operator surfaces
// ErrUnsupportedOperation at the point of the call.
func TestFuncAdjointUndefined(t *testing.T) {
	op := broadcastSum(t)
	require.False(t, op.HasAdjoint())

	_, err := op.RMatVec([]float64{1, 1, 1, 1, 1})
	require.ErrorIs(t, err, linop.ErrUnsupportedOperation)

	_, err = op.RMatMat(mat.NewDense(5, 2, nil))
	require.ErrorIs(t, err, linop.ErrUnsupportedOperation)
}

// TestFuncWithRMatVec verifies that supplying the adjoint callback makes the
// operator adjointable and that RMatMat is synthesized from it.
func TestFuncWithRMatVec(t *testing.T) {
	// Diagonal operator diag(1,2,3): self-adjoint by construction.
	scale := func(x []float64) ([]float64, error) {
		return []float64{x[0], 2 * x[1], 3 * x[2]}, nil
	}
	op, err := linop.New(3, 3, scale, linop.WithRMatVec(scale))
	require.NoError(t, err)
	require.True(t, op.HasAdjoint())

	y, err := op.RMatVec([]float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, y)

	// Synthesized batched adjoint: one column per basis vector.
	x := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	z, err := op.RMatMat(x)
	require.NoError(t, err)
	require.InDelta(t, 2, z.At(1, 1), 1e-15)
	require.InDelta(t, 3, z.At(2, 2), 1e-15)
}

// TestFuncMatMatSynthesized checks the column-wise fallback: the batched
// apply of the broadcast-sum operator must equal per-column single applies.
func TestFuncMatMatSynthesized(t *testing.T) {
	op := broadcastSum(t)

	x := mat.NewDense(5, 2, nil)
	for i := 0; i < 5; i++ {
		x.Set(i, 0, 1)          // first column: ones → sums to 5
		x.Set(i, 1, float64(i)) // second column: 0..4 → sums to 10
	}
	y, err := op.MatMat(x)
	require.NoError(t, err)

	r, c := y.Dims()
	require.Equal(t, 5, r)
	require.Equal(t, 2, c)
	for i := 0; i < 5; i++ {
		require.InDelta(t, 5, y.At(i, 0), 1e-15)
		require.InDelta(t, 10, y.At(i, 1), 1e-15)
	}
}

// TestFuncCallbackContract ensures a callback returning a wrong-length result
// is reported as ErrDimensionMismatch, and a callback error propagates
// wrapped but still matchable.
func TestFuncCallbackContract(t *testing.T) {
	short, err := linop.New(3, 2, func(x []float64) ([]float64, error) {
		return []float64{1}, nil // should have length 3
	})
	require.NoError(t, err)
	_, err = short.MatVec([]float64{1, 2})
	require.ErrorIs(t, err, linop.ErrDimensionMismatch)

	boom := errors.New("backing store unavailable")
	failing, err := linop.New(2, 2, func(x []float64) ([]float64, error) {
		return nil, boom
	})
	require.NoError(t, err)
	_, err = failing.MatVec([]float64{1, 2})
	require.ErrorIs(t, err, boom)
}

// TestOptionPanics ensures option constructors reject nil callbacks loudly —
// programmer error, not a runtime condition.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { linop.WithRMatVec(nil) })
	require.Panics(t, func() { linop.WithMatMat(nil) })
	require.Panics(t, func() { linop.WithRMatMat(nil) })
}
