// Package series_test contains unit tests for Merge, MergeAll and Align.
package series_test

import (
	"math"
	"testing"

	"github.com/cran/zoocat/mat"
	"github.com/cran/zoocat/series"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// requireRows compares every frame row against want, treating NaN as equal
// to NaN (require.Equal cannot: reflect.DeepEqual reports NaN != NaN).
func requireRows(t *testing.T, f *series.Frame, want [][]float64) {
	t.Helper()
	require.Equal(t, len(want), f.Rows()) // row count first
	var i int
	for i = 0; i < len(want); i++ {
		got, err := f.Dense().Row(i)
		require.NoError(t, err)
		if diff := cmp.Diff(want[i], got, cmpopts.EquateNaNs()); diff != "" {
			t.Errorf("row %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

// TestMergeUnionWithGaps is the core union-by-index behavior: keys missing
// from one operand turn into NaN gaps in that operand's columns.
func TestMergeUnionWithGaps(t *testing.T) {
	a := mustFrame(t, series.Index{1990, 1991}, [][]float64{{1}, {2}})
	b := mustFrame(t, series.Index{1991, 1992}, [][]float64{{20}, {30}})

	m, err := series.Merge(a, b)
	require.NoError(t, err)

	require.Equal(t, series.Index{1990, 1991, 1992}, m.Index()) // sorted key union
	require.Equal(t, 2, m.Cols())                               // a's column then b's

	requireRows(t, m, [][]float64{
		{1, math.NaN()},  // 1990: only a observed
		{2, 20},          // 1991: both observed
		{math.NaN(), 30}, // 1992: only b observed
	})
}

// TestMergeDisjointKeys merges operands sharing no key at all.
func TestMergeDisjointKeys(t *testing.T) {
	a := mustFrame(t, series.Index{1990}, [][]float64{{1, 2}})
	b := mustFrame(t, series.Index{1995}, [][]float64{{9}})

	m, err := series.Merge(a, b)
	require.NoError(t, err)

	require.Equal(t, series.Index{1990, 1995}, m.Index())
	requireRows(t, m, [][]float64{
		{1, 2, math.NaN()},          // a's row, gap in b's column
		{math.NaN(), math.NaN(), 9}, // b's row, gaps in a's columns
	})
}

// TestMergeIdentity confirms a column-less operand leaves the other intact.
func TestMergeIdentity(t *testing.T) {
	f := mustFrame(t, series.Index{1990, 1991}, [][]float64{{1}, {2}})

	m, err := series.Merge(series.EmptyFrame(), f) // left identity
	require.NoError(t, err)
	require.True(t, f.Equal(m))

	m, err = series.Merge(f, series.EmptyFrame()) // right identity
	require.NoError(t, err)
	require.True(t, f.Equal(m))
}

// TestMergeZeroRowOperand keeps columns when one operand has no keys.
func TestMergeZeroRowOperand(t *testing.T) {
	d, err := mat.NewDense(0, 2) // two columns, no observations yet
	require.NoError(t, err)
	a, err := series.NewFrame(series.Index{}, d)
	require.NoError(t, err)
	b := mustFrame(t, series.Index{1990}, [][]float64{{5}})

	m, err := series.Merge(a, b)
	require.NoError(t, err)

	require.Equal(t, 3, m.Cols())                               // a's two columns survive
	require.Equal(t, series.Index{1990}, m.Index())             // union is b's keys
	requireRows(t, m, [][]float64{{math.NaN(), math.NaN(), 5}}) // gaps in the empty operand's columns
}

// TestMergeNil rejects nil operands.
func TestMergeNil(t *testing.T) {
	f := mustFrame(t, series.Index{1990}, [][]float64{{1}})

	_, err := series.Merge(nil, f)
	require.ErrorIs(t, err, series.ErrNilFrame) // expect ErrNilFrame

	_, err = series.Merge(f, nil)
	require.ErrorIs(t, err, series.ErrNilFrame) // expect ErrNilFrame
}

// TestMergeAll folds left to right over several operands.
func TestMergeAll(t *testing.T) {
	a := mustFrame(t, series.Index{1990}, [][]float64{{1}})
	b := mustFrame(t, series.Index{1991}, [][]float64{{2}})
	c := mustFrame(t, series.Index{1990, 1991}, [][]float64{{3}, {4}})

	m, err := series.MergeAll(a, b, c)
	require.NoError(t, err)

	require.Equal(t, series.Index{1990, 1991}, m.Index())
	require.Equal(t, 3, m.Cols()) // one column per operand, in operand order
	requireRows(t, m, [][]float64{
		{1, math.NaN(), 3}, // 1990: a and c observed
		{math.NaN(), 2, 4}, // 1991: b and c observed
	})

	empty, err := series.MergeAll() // zero operands
	require.NoError(t, err)
	require.True(t, series.EmptyFrame().Equal(empty)) // fold seed comes back

	_, err = series.MergeAll(a, nil)            // nil operand inside the fold
	require.ErrorIs(t, err, series.ErrNilFrame) // expect ErrNilFrame
}

// TestAlign restricts two frames to their shared keys.
func TestAlign(t *testing.T) {
	a := mustFrame(t, series.Index{1990, 1991, 1992}, [][]float64{{1}, {2}, {3}})
	b := mustFrame(t, series.Index{1991, 1992, 1993}, [][]float64{{20}, {30}, {40}})

	ra, rb, err := series.Align(a, b)
	require.NoError(t, err)

	require.Equal(t, series.Index{1991, 1992}, ra.Index()) // shared keys only
	require.Equal(t, series.Index{1991, 1992}, rb.Index()) // same index on both sides
	requireRows(t, ra, [][]float64{{2}, {3}})
	requireRows(t, rb, [][]float64{{20}, {30}})

	_, _, err = series.Align(nil, b)
	require.ErrorIs(t, err, series.ErrNilFrame) // expect ErrNilFrame
}

// TestAlignNoOverlap yields empty frames when no key is shared.
func TestAlignNoOverlap(t *testing.T) {
	a := mustFrame(t, series.Index{1990}, [][]float64{{1}})
	b := mustFrame(t, series.Index{1991}, [][]float64{{2}})

	ra, rb, err := series.Align(a, b)
	require.NoError(t, err)

	require.Equal(t, 0, ra.Rows()) // nothing shared
	require.Equal(t, 0, rb.Rows())
	require.Equal(t, 1, ra.Cols()) // columns survive the row wipe
}

// TestAlignSeries restricts two series to their shared keys.
func TestAlignSeries(t *testing.T) {
	a, err := series.NewSeries(series.Index{1990, 1991, 1992}, []float64{1, 2, 3})
	require.NoError(t, err)
	b, err := series.NewSeries(series.Index{1991, 1992, 1993}, []float64{20, 30, 40})
	require.NoError(t, err)

	ra, rb := series.AlignSeries(a, b)

	require.Equal(t, series.Index{1991, 1992}, ra.Index()) // shared keys only
	require.Equal(t, []float64{2, 3}, ra.Values())
	require.Equal(t, []float64{20, 30}, rb.Values())
}
