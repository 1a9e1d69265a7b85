// Package zoocat_test contains unit tests for Value, Field, AttrTable and
// the composite-label rendering.
package zoocat_test

import (
	"math"
	"testing"

	"github.com/cran/zoocat"
	"github.com/stretchr/testify/require"
)

// TestValueAccessors covers the typed getters and their ok flags.
func TestValueAccessors(t *testing.T) {
	s := zoocat.StringValue("xxx")
	str, ok := s.Str()
	require.True(t, ok) // string payload reads back
	require.Equal(t, "xxx", str)
	_, ok = s.Int()
	require.False(t, ok) // strings never convert to int
	_, ok = s.Float()
	require.False(t, ok) // nor to float
	require.False(t, s.IsNumeric())

	i := zoocat.IntValue(7)
	n, ok := i.Int()
	require.True(t, ok) // integer payload is exact
	require.Equal(t, 7, n)
	f, ok := i.Float()
	require.True(t, ok) // int widens to float
	require.Equal(t, 7.0, f)
	require.True(t, i.IsNumeric())

	fl := zoocat.FloatValue(3.0)
	n, ok = fl.Int()
	require.True(t, ok) // integral float reads as int
	require.Equal(t, 3, n)

	_, ok = zoocat.FloatValue(3.5).Int()
	require.False(t, ok) // fractional float does not
	_, ok = zoocat.FloatValue(math.NaN()).Int()
	require.False(t, ok) // neither does NaN
}

// TestValueString pins the label rendering per kind.
func TestValueString(t *testing.T) {
	require.Equal(t, "xxx", zoocat.StringValue("xxx").String())
	require.Equal(t, "7", zoocat.IntValue(7).String()) // no decimal point
	require.Equal(t, "2.5", zoocat.FloatValue(2.5).String())
	require.Equal(t, "3", zoocat.FloatValue(3).String()) // shortest form
}

// TestValueEqual checks cross-kind numeric equality and NaN inequality.
func TestValueEqual(t *testing.T) {
	require.True(t, zoocat.IntValue(3).Equal(zoocat.FloatValue(3))) // numeric by value
	require.True(t, zoocat.StringValue("a").Equal(zoocat.StringValue("a")))
	require.False(t, zoocat.StringValue("3").Equal(zoocat.IntValue(3))) // string never equals numeric
	require.False(t, zoocat.FloatValue(math.NaN()).Equal(zoocat.FloatValue(math.NaN())))
}

// TestValueLess checks the total order used for column reordering.
func TestValueLess(t *testing.T) {
	require.True(t, zoocat.IntValue(99).Less(zoocat.StringValue("a"))) // numeric before string
	require.False(t, zoocat.StringValue("a").Less(zoocat.IntValue(99)))
	require.True(t, zoocat.StringValue("a").Less(zoocat.StringValue("b")))  // lexicographic
	require.True(t, zoocat.IntValue(2).Less(zoocat.FloatValue(2.5)))        // numeric by value
	require.True(t, zoocat.FloatValue(math.NaN()).Less(zoocat.IntValue(0))) // NaN first
	require.False(t, zoocat.FloatValue(math.NaN()).Less(zoocat.FloatValue(math.NaN())))
}

// TestNewAttrTable builds a two-field table and reads it back.
func TestNewAttrTable(t *testing.T) {
	at, err := zoocat.NewAttrTable(
		zoocat.StringField("name", "xxx", "yyy"),
		zoocat.IntField("month", 2, 6),
	)
	require.NoError(t, err)

	require.Equal(t, 2, at.Len())       // rows == matrix columns
	require.Equal(t, 2, at.NumFields()) // two fields
	require.Equal(t, []string{"name", "month"}, at.FieldNames())
	require.True(t, at.HasField("month"))
	require.False(t, at.HasField("Month")) // names are case-sensitive

	vs, ok := at.Values("month")
	require.True(t, ok)
	require.Equal(t, []zoocat.Value{zoocat.IntValue(2), zoocat.IntValue(6)}, vs)

	v, ok := at.Value(1, "name")
	require.True(t, ok)
	require.Equal(t, zoocat.StringValue("yyy"), v)

	_, ok = at.Value(2, "name")
	require.False(t, ok) // row out of range
	_, ok = at.Value(0, "nope")
	require.False(t, ok) // unknown field
}

// TestNewAttrTableErrors covers the validation ladder.
func TestNewAttrTableErrors(t *testing.T) {
	_, err := zoocat.NewAttrTable()
	require.ErrorIs(t, err, zoocat.ErrMissingFieldNames) // zero fields

	_, err = zoocat.NewAttrTable(zoocat.IntField("", 1))
	require.ErrorIs(t, err, zoocat.ErrMissingFieldNames) // empty name

	_, err = zoocat.NewAttrTable(
		zoocat.IntField("m", 1),
		zoocat.IntField("m", 2),
	)
	require.ErrorIs(t, err, zoocat.ErrMissingFieldNames) // duplicate name

	_, err = zoocat.NewAttrTable(
		zoocat.IntField("a", 1, 2),
		zoocat.IntField("b", 1),
	)
	require.ErrorIs(t, err, zoocat.ErrInvalidShape) // ragged fields
}

// TestAttrTableEqual compares tables by name, order and cell value.
func TestAttrTableEqual(t *testing.T) {
	a, err := zoocat.NewAttrTable(zoocat.IntField("m", 1, 2))
	require.NoError(t, err)
	b, err := zoocat.NewAttrTable(zoocat.FloatField("m", 1, 2))
	require.NoError(t, err)
	c, err := zoocat.NewAttrTable(zoocat.IntField("n", 1, 2))
	require.NoError(t, err)

	require.True(t, a.Equal(b))  // numeric cells compare by value across kinds
	require.False(t, a.Equal(c)) // field name differs
	require.False(t, a.Equal(nil))
}

// TestAttrTableString pins the diagnostic rendering.
func TestAttrTableString(t *testing.T) {
	at, err := zoocat.NewAttrTable(
		zoocat.StringField("name", "xxx", "yyy"),
		zoocat.IntField("month", 2, 6),
	)
	require.NoError(t, err)

	require.Equal(t, "name, month\nxxx, 2\nyyy, 6\n", at.String())
}

// TestCompositeLabels concatenates all field cells per row, no separator.
func TestCompositeLabels(t *testing.T) {
	at, err := zoocat.NewAttrTable(
		zoocat.StringField("name", "xxx", "yyy"),
		zoocat.IntField("month", 2, 6),
	)
	require.NoError(t, err)

	require.Equal(t, []string{"xxx2", "yyy6"}, zoocat.CompositeLabels(at))
	require.Empty(t, zoocat.CompositeLabels(nil)) // nil table: no labels
}
