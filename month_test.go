// Package zoocat_test contains unit tests for the monthly specialization
// and the offset reprocessor.
package zoocat_test

import (
	"math"
	"testing"

	"github.com/cran/zoocat"
	"github.com/cran/zoocat/series"
	"github.com/stretchr/testify/require"
)

// mustMonthly builds a Monthly whose only attribute field is the month.
func mustMonthly(t *testing.T, keys series.Index, months []int, rows [][]float64) *zoocat.Monthly {
	t.Helper()
	m, err := zoocat.NewMonthly(
		mustDense(t, rows),
		keys,
		mustAttrs(t, zoocat.IntField("month", months...)),
		zoocat.WithIndexName("year"),
	)
	require.NoError(t, err)
	return m
}

// TestAsMonthly wraps an existing matrix and validates the month field.
func TestAsMonthly(t *testing.T) {
	z := mustMatrix(t)

	m, err := zoocat.AsMonthly(z)
	require.NoError(t, err)
	require.Equal(t, 4, m.Cols()) // the full Matrix surface is promoted

	_, err = zoocat.AsMonthly(nil)
	require.ErrorIs(t, err, zoocat.ErrNilMatrix)

	plain, err := zoocat.New(
		mustDense(t, [][]float64{{1}}),
		series.Index{1990},
		mustAttrs(t, zoocat.StringField("name", "xxx")), // no month field
	)
	require.NoError(t, err)
	_, err = zoocat.AsMonthly(plain)
	require.ErrorIs(t, err, zoocat.ErrNoMonthField)
}

// TestNewMonthly propagates construction errors unchanged.
func TestNewMonthly(t *testing.T) {
	_, err := zoocat.NewMonthly(
		mustDense(t, [][]float64{{1}, {2}}),
		series.Index{1990, 1990}, // repeated key
		mustAttrs(t, zoocat.IntField("month", 1)),
	)
	require.ErrorIs(t, err, series.ErrDuplicateIndex)
}

// TestReprocessCanonical requests every canonical month and expects the
// input back: offsets 1..12 are the identity reinterpretation.
func TestReprocessCanonical(t *testing.T) {
	z := mustMatrix(t)
	m, err := zoocat.AsMonthly(z)
	require.NoError(t, err)

	rp, err := m.Reprocess(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	require.NoError(t, err)

	require.True(t, z.Equal(rp.Matrix)) // identical up to (already sorted) order
}

// TestReprocessOffset13 pulls January of the following year: keys shift
// back one year and the month attribute stays 1.
func TestReprocessOffset13(t *testing.T) {
	m := mustMonthly(t,
		series.Index{1991, 1992, 1993},
		[]int{1, 2},
		[][]float64{
			{10, 100},
			{20, 200},
			{30, 300},
		})

	rp, err := m.Reprocess(13)
	require.NoError(t, err)

	require.Equal(t, 1, rp.Cols())
	require.Equal(t, series.Index{1990, 1991, 1992}, rp.Index()) // one year back
	require.Equal(t, []string{"1"}, rp.Labels())                 // canonical month, not 13
	requireData(t, rp.Matrix, [][]float64{
		{10}, // at 1990: January of 1991
		{20},
		{30},
	})
}

// TestReprocessOffsetZero pulls December of the preceding year: keys shift
// forward one year.
func TestReprocessOffsetZero(t *testing.T) {
	m := mustMonthly(t,
		series.Index{1991, 1992},
		[]int{12},
		[][]float64{{7}, {8}})

	rp, err := m.Reprocess(0)
	require.NoError(t, err)

	require.Equal(t, series.Index{1992, 1993}, rp.Index()) // one year forward
	require.Equal(t, []string{"12"}, rp.Labels())
	requireData(t, rp.Matrix, [][]float64{
		{7}, // at 1992: December of 1991
		{8},
	})
}

// TestReprocessMixedShifts merges a same-year and a next-year request for
// the same month; the unshared edge keys become gaps.
func TestReprocessMixedShifts(t *testing.T) {
	m := mustMonthly(t,
		series.Index{1991, 1992, 1993},
		[]int{1, 2},
		[][]float64{
			{10, 100},
			{20, 200},
			{30, 300},
		})

	rp, err := m.Reprocess(1, 13)
	require.NoError(t, err)

	require.Equal(t, series.Index{1990, 1991, 1992, 1993}, rp.Index()) // key union
	require.Equal(t, []string{"1", "1"}, rp.Labels())                  // identical identities are legal
	requireData(t, rp.Matrix, [][]float64{
		{math.NaN(), 10}, // 1990: only next-January observed
		{10, 20},
		{20, 30},
		{30, math.NaN()}, // 1993: no next-January inside the sample
	})
}

// TestReprocessReorders sorts result columns ascending by month regardless
// of merge order.
func TestReprocessReorders(t *testing.T) {
	m := mustMonthly(t,
		series.Index{1991, 1992},
		[]int{1, 12},
		[][]float64{
			{1, 50},
			{2, 60},
		})

	// The December column merges first (shift 0), next-January second
	// (shift 1); the result still lists month 1 before month 12.
	rp, err := m.Reprocess(12, 13)
	require.NoError(t, err)

	require.Equal(t, []string{"1", "12"}, rp.Labels())
	require.Equal(t, series.Index{1990, 1991, 1992}, rp.Index())
	requireData(t, rp.Matrix, [][]float64{
		{1, math.NaN()},  // 1990: only next-January observed
		{2, 50},          // 1991: both
		{math.NaN(), 60}, // 1992: only December
	})
}

// TestReprocessRepeatedOffsets collapses duplicate requests to one column.
func TestReprocessRepeatedOffsets(t *testing.T) {
	z := mustMatrix(t)
	m, err := zoocat.AsMonthly(z)
	require.NoError(t, err)

	rp, err := m.Reprocess(3, 3)
	require.NoError(t, err)

	require.Equal(t, 1, rp.Cols())
	require.Equal(t, []string{"xxx3"}, rp.Labels())
	requireData(t, rp.Matrix, [][]float64{{2}, {6}, {10}, {14}, {18}})
}

// TestReprocessNothingMatches keeps the attribute schema on a columnless
// result instead of degenerating to the field-less Empty().
func TestReprocessNothingMatches(t *testing.T) {
	z := mustMatrix(t) // months 2, 3, 5, 6
	m, err := zoocat.AsMonthly(z)
	require.NoError(t, err)

	rp, err := m.Reprocess(4) // April never observed
	require.NoError(t, err)

	require.Zero(t, rp.Cols())
	require.Zero(t, rp.Rows())
	require.Equal(t, []string{"name", "month"}, rp.Cattr().FieldNames()) // schema survives
	require.Equal(t, "year", rp.IndexName())

	rp, err = m.Reprocess() // no offsets at all
	require.NoError(t, err)
	require.Zero(t, rp.Cols())
}

// TestReprocessLeavesSourceIntact confirms the reprocessor never mutates
// its receiver.
func TestReprocessLeavesSourceIntact(t *testing.T) {
	z := mustMatrix(t)
	m, err := zoocat.AsMonthly(z)
	require.NoError(t, err)

	_, err = m.Reprocess(13)
	require.NoError(t, err)

	require.True(t, z.Equal(m.Matrix)) // source untouched
}

// TestReprocessMonthRangeErrors rejects out-of-range and non-integral
// month attributes at reprocess time.
func TestReprocessMonthRangeErrors(t *testing.T) {
	zero := mustMonthly(t, series.Index{1990}, []int{0}, [][]float64{{1}})
	_, err := zero.Reprocess(1)
	require.ErrorIs(t, err, zoocat.ErrInvalidMonthRange) // month 0

	thirteen := mustMonthly(t, series.Index{1990}, []int{13}, [][]float64{{1}})
	_, err = thirteen.Reprocess(1)
	require.ErrorIs(t, err, zoocat.ErrInvalidMonthRange) // month 13

	frac, err := zoocat.NewMonthly(
		mustDense(t, [][]float64{{1}}),
		series.Index{1990},
		mustAttrs(t, zoocat.FloatField("month", 2.5)),
	)
	require.NoError(t, err) // construction does not range-check
	_, err = frac.Reprocess(1)
	require.ErrorIs(t, err, zoocat.ErrInvalidMonthRange) // non-integral month
	require.ErrorContains(t, err, "2.5")

	str, err := zoocat.NewMonthly(
		mustDense(t, [][]float64{{1}}),
		series.Index{1990},
		mustAttrs(t, zoocat.StringField("month", "Feb")),
	)
	require.NoError(t, err)
	_, err = str.Reprocess(1)
	require.ErrorIs(t, err, zoocat.ErrInvalidMonthRange) // string month
}

// TestReprocessIntegralFloatMonth accepts 3.0 as month 3.
func TestReprocessIntegralFloatMonth(t *testing.T) {
	m, err := zoocat.NewMonthly(
		mustDense(t, [][]float64{{9}}),
		series.Index{1990},
		mustAttrs(t, zoocat.FloatField("month", 3)),
	)
	require.NoError(t, err)

	rp, err := m.Reprocess(3)
	require.NoError(t, err)
	require.Equal(t, 1, rp.Cols())
	requireData(t, rp.Matrix, [][]float64{{9}})
}

// TestMonthlyFilterCols filters and reprocesses in one call.
func TestMonthlyFilterCols(t *testing.T) {
	z := mustMatrix(t)
	m, err := zoocat.AsMonthly(z)
	require.NoError(t, err)

	// No offsets: a plain filtered Monthly.
	fm, err := m.FilterCols(func(r zoocat.Row) bool { return r.Int("month") > 2 })
	require.NoError(t, err)
	require.Equal(t, []string{"xxx3", "xxx5", "yyy6"}, fm.Labels())

	// With offsets: the survivors are reprocessed.
	fm, err = m.FilterCols(func(r zoocat.Row) bool { return r.Int("month") > 2 }, 3, 5)
	require.NoError(t, err)
	require.Equal(t, []string{"xxx3", "xxx5"}, fm.Labels())
	requireData(t, fm.Matrix, [][]float64{
		{2, 3},
		{6, 7},
		{10, 11},
		{14, 15},
		{18, 19},
	})

	// Predicate errors pass through unchanged.
	_, err = m.FilterCols(func(r zoocat.Row) bool { return r.Int("lag") > 0 }, 3)
	require.ErrorIs(t, err, zoocat.ErrPredicate)
}
