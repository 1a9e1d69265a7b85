// Package zoocat_test contains unit tests for the long-format bridge.
package zoocat_test

import (
	"math"
	"testing"

	"github.com/cran/zoocat"
	"github.com/cran/zoocat/series"
	"github.com/stretchr/testify/require"
)

// TestFromRecords casts long-form observations: one column per distinct
// attribute tuple in first-appearance order, rows over the sorted key
// union, NaN where no record landed.
func TestFromRecords(t *testing.T) {
	recs := []zoocat.Record{
		{Key: 1992, Attrs: []zoocat.Value{zoocat.StringValue("xxx"), zoocat.IntValue(2)}, Value: 5},
		{Key: 1991, Attrs: []zoocat.Value{zoocat.StringValue("xxx"), zoocat.IntValue(2)}, Value: 1},
		{Key: 1991, Attrs: []zoocat.Value{zoocat.StringValue("yyy"), zoocat.IntValue(6)}, Value: 4},
		{Key: 1993, Attrs: []zoocat.Value{zoocat.StringValue("yyy"), zoocat.IntValue(6)}, Value: 12},
	}

	z, err := zoocat.FromRecords([]string{"name", "month"}, recs, zoocat.WithIndexName("year"))
	require.NoError(t, err)

	require.Equal(t, series.Index{1991, 1992, 1993}, z.Index()) // sorted key union
	require.Equal(t, []string{"xxx2", "yyy6"}, z.Labels())      // first-appearance order
	require.Equal(t, "year", z.IndexName())
	requireData(t, z, [][]float64{
		{1, 4},           // 1991: both tuples observed
		{5, math.NaN()},  // 1992: only xxx2
		{math.NaN(), 12}, // 1993: only yyy6
	})
}

// TestFromRecordsColumnOrder keeps input order authoritative for columns
// even when keys arrive shuffled.
func TestFromRecordsColumnOrder(t *testing.T) {
	recs := []zoocat.Record{
		{Key: 1995, Attrs: []zoocat.Value{zoocat.IntValue(9)}, Value: 1},
		{Key: 1990, Attrs: []zoocat.Value{zoocat.IntValue(3)}, Value: 2},
		{Key: 1990, Attrs: []zoocat.Value{zoocat.IntValue(9)}, Value: 3},
	}

	z, err := zoocat.FromRecords([]string{"month"}, recs)
	require.NoError(t, err)

	require.Equal(t, []string{"9", "3"}, z.Labels()) // tuple 9 appeared first
	require.Equal(t, series.Index{1990, 1995}, z.Index())
}

// TestFromRecordsValidation covers the error ladder.
func TestFromRecordsValidation(t *testing.T) {
	rec := zoocat.Record{Key: 1990, Attrs: []zoocat.Value{zoocat.IntValue(1)}, Value: 0}

	_, err := zoocat.FromRecords(nil, []zoocat.Record{rec})
	require.ErrorIs(t, err, zoocat.ErrMissingFieldNames) // no field names

	_, err = zoocat.FromRecords([]string{""}, []zoocat.Record{rec})
	require.ErrorIs(t, err, zoocat.ErrMissingFieldNames) // empty name

	_, err = zoocat.FromRecords([]string{"m", "m"}, nil)
	require.ErrorIs(t, err, zoocat.ErrMissingFieldNames) // duplicate name

	_, err = zoocat.FromRecords([]string{"m", "n"}, []zoocat.Record{rec})
	require.ErrorIs(t, err, zoocat.ErrInvalidShape) // one attr for two fields

	_, err = zoocat.FromRecords([]string{"m"}, []zoocat.Record{rec, rec})
	require.ErrorIs(t, err, series.ErrDuplicateIndex) // same cell twice
}

// TestFromRecordsTupleBoundaries keeps adjacent cells from bleeding into
// one tuple: ("ab","c") and ("a","bc") are different columns.
func TestFromRecordsTupleBoundaries(t *testing.T) {
	recs := []zoocat.Record{
		{Key: 1990, Attrs: []zoocat.Value{zoocat.StringValue("ab"), zoocat.StringValue("c")}, Value: 1},
		{Key: 1990, Attrs: []zoocat.Value{zoocat.StringValue("a"), zoocat.StringValue("bc")}, Value: 2},
	}

	z, err := zoocat.FromRecords([]string{"station", "var"}, recs)
	require.NoError(t, err)

	require.Equal(t, 2, z.Cols()) // distinct tuples despite equal concatenation
	require.Equal(t, []string{"abc", "abc"}, z.Labels())
}

// TestRecordsMelt walks row-major and skips gaps.
func TestRecordsMelt(t *testing.T) {
	recs := []zoocat.Record{
		{Key: 1991, Attrs: []zoocat.Value{zoocat.IntValue(2)}, Value: 1},
		{Key: 1992, Attrs: []zoocat.Value{zoocat.IntValue(6)}, Value: 4},
	}
	z, err := zoocat.FromRecords([]string{"month"}, recs)
	require.NoError(t, err)

	got := z.Records()
	require.Len(t, got, 2) // the two gap cells melt away
	require.Equal(t, zoocat.Record{
		Key: 1991, Attrs: []zoocat.Value{zoocat.IntValue(2)}, Value: 1,
	}, got[0]) // row-major: 1991 first
	require.Equal(t, zoocat.Record{
		Key: 1992, Attrs: []zoocat.Value{zoocat.IntValue(6)}, Value: 4,
	}, got[1])
}

// TestCastMeltRoundTrip melts the gap-free fixture and casts it back.
func TestCastMeltRoundTrip(t *testing.T) {
	z := mustMatrix(t)

	recs := z.Records()
	require.Len(t, recs, 20) // every cell observed

	back, err := zoocat.FromRecords([]string{"name", "month"}, recs, zoocat.WithIndexName("year"))
	require.NoError(t, err)
	require.True(t, z.Equal(back)) // melt then cast is the identity here
}

// TestRecordsEmpty melts the neutral element to an empty slice.
func TestRecordsEmpty(t *testing.T) {
	require.Empty(t, zoocat.Empty().Records())
}
