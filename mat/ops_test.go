// Package mat_test contains unit tests for shape-level operations and
// approximate comparison in the mat package.
package mat_test

import (
	"math"
	"testing"

	"github.com/cran/zoocat/mat"
	"github.com/stretchr/testify/require"
)

// TestTranspose verifies the axis swap and copy semantics.
func TestTranspose(t *testing.T) {
	m, err := mat.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}}) // 2x3 fixture
	require.NoError(t, err)

	tr, err := mat.Transpose(m) // swap axes
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows()) // transposed shape is 3x2
	require.Equal(t, 2, tr.Cols())

	v, _ := tr.At(2, 1)      // element (2,1) of the transpose
	require.Equal(t, 6.0, v) // equals element (1,2) of the source

	_ = tr.Set(0, 0, 99)     // mutate the transpose
	v, _ = m.At(0, 0)        // source element behind it
	require.Equal(t, 1.0, v) // source untouched: Transpose copies

	_, err = mat.Transpose(nil)               // nil input
	require.ErrorIs(t, err, mat.ErrNilMatrix) // expect ErrNilMatrix
}

// TestEqualApprox covers tolerance, NaN matching, and shape checks.
func TestEqualApprox(t *testing.T) {
	a, err := mat.FromRows([][]float64{{1, math.NaN()}, {3, 4}}) // left operand with a gap
	require.NoError(t, err)
	b, err := mat.FromRows([][]float64{{1.0000001, math.NaN()}, {3, 4}}) // right operand, tiny drift
	require.NoError(t, err)

	require.True(t, mat.EqualApprox(a, b, 1e-6))  // within tolerance; gap matches gap
	require.False(t, mat.EqualApprox(a, b, 1e-9)) // drift exceeds the tighter eps

	c, err := mat.FromRows([][]float64{{1, 2}, {3, 4}}) // same shape, gap replaced by a value
	require.NoError(t, err)
	require.False(t, mat.EqualApprox(a, c, 1.0)) // NaN vs value never matches

	d, err := mat.NewDense(2, 3) // different shape
	require.NoError(t, err)
	require.False(t, mat.EqualApprox(a, d, 1.0)) // shape mismatch is plain false

	require.True(t, mat.EqualApprox(nil, nil, 0)) // both nil compare equal
	require.False(t, mat.EqualApprox(a, nil, 0))  // one-sided nil does not
}

// TestEqualApproxPanicsOnBadEps confirms the programmer-error contract.
func TestEqualApproxPanicsOnBadEps(t *testing.T) {
	a, err := mat.NewDense(1, 1)
	require.NoError(t, err)

	require.Panics(t, func() { mat.EqualApprox(a, a, -1) })         // negative eps panics
	require.Panics(t, func() { mat.EqualApprox(a, a, math.NaN()) }) // NaN eps panics
}
