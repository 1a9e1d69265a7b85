// SPDX-License-Identifier: MIT

// Package zoocat - AttrTable: the ordered column-attribute table.
//
// Purpose:
//   - Describe every matrix column with one row of typed attribute cells
//     (row i of the table describes column i of the matrix).
//   - Preserve field order: composite identities and merge compatibility
//     both depend on it.
//   - Copy on the way in and out; a table never aliases caller storage.

package zoocat

import (
	"fmt"
	"strings"
)

// Field is one named attribute column: Values[i] describes matrix column i.
type Field struct {
	Name   string
	Values []Value
}

// StringField builds a Field of string cells.
func StringField(name string, vs ...string) Field {
	cells := make([]Value, len(vs))
	var i int
	for i = 0; i < len(vs); i++ {
		cells[i] = StringValue(vs[i])
	}

	return Field{Name: name, Values: cells}
}

// IntField builds a Field of integer cells (the month field in the
// canonical climate use).
func IntField(name string, vs ...int) Field {
	cells := make([]Value, len(vs))
	var i int
	for i = 0; i < len(vs); i++ {
		cells[i] = IntValue(vs[i])
	}

	return Field{Name: name, Values: cells}
}

// FloatField builds a Field of floating-point cells.
func FloatField(name string, vs ...float64) Field {
	cells := make([]Value, len(vs))
	var i int
	for i = 0; i < len(vs); i++ {
		cells[i] = FloatValue(vs[i])
	}

	return Field{Name: name, Values: cells}
}

// AttrTable is an ordered list of equal-length fields. Row r (one cell per
// field) is the attribute tuple of matrix column r.
type AttrTable struct {
	fields []Field // ordered; every Values slice has length rows
	rows   int     // table rows == matrix columns
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*AttrTable)(nil)

// NewAttrTable builds a table from one or more fields.
// MAIN DESCRIPTION:
//   - Validating constructor; the only public way to make an AttrTable.
//
// Implementation:
//   - Stage 1: at least one field, non-empty unique names.
//   - Stage 2: rectangularity (every field the same length).
//   - Stage 3: deep copy all cells.
//
// Errors:
//   - ErrMissingFieldNames for zero fields, an empty name, or a repeat.
//   - ErrInvalidShape for ragged fields.
//
// Complexity:
//   - Time O(fields*rows), Space O(fields*rows).
func NewAttrTable(fields ...Field) (*AttrTable, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("NewAttrTable: no fields: %w", ErrMissingFieldNames)
	}

	seen := make(map[string]struct{}, len(fields))
	var i int
	for i = 0; i < len(fields); i++ {
		if fields[i].Name == "" {
			return nil, fmt.Errorf("NewAttrTable: field %d: empty name: %w", i, ErrMissingFieldNames)
		}
		if _, dup := seen[fields[i].Name]; dup {
			return nil, fmt.Errorf("NewAttrTable: field %q: %w", fields[i].Name, ErrMissingFieldNames)
		}
		seen[fields[i].Name] = struct{}{}
	}

	rows := len(fields[0].Values)
	for i = 1; i < len(fields); i++ {
		if len(fields[i].Values) != rows {
			return nil, fmt.Errorf("NewAttrTable: field %q has %d rows, want %d: %w",
				fields[i].Name, len(fields[i].Values), rows, ErrInvalidShape)
		}
	}

	cp := make([]Field, len(fields))
	for i = 0; i < len(fields); i++ { // deep copy every column
		vals := make([]Value, rows)
		copy(vals, fields[i].Values)
		cp[i] = Field{Name: fields[i].Name, Values: vals}
	}

	return &AttrTable{fields: cp, rows: rows}, nil
}

// emptyAttrTable is the zero-field, zero-row table behind Empty().
func emptyAttrTable() *AttrTable {
	return &AttrTable{fields: make([]Field, 0), rows: 0}
}

// Len returns the number of table rows (== matrix columns). Complexity: O(1).
func (at *AttrTable) Len() int { return at.rows }

// NumFields returns the number of attribute fields. Complexity: O(1).
func (at *AttrTable) NumFields() int { return len(at.fields) }

// FieldNames returns the field names in table order. Complexity: O(f).
func (at *AttrTable) FieldNames() []string {
	out := make([]string, len(at.fields))
	var i int
	for i = 0; i < len(at.fields); i++ {
		out[i] = at.fields[i].Name
	}

	return out
}

// HasField reports whether a field with the given name exists.
// Complexity: O(f).
func (at *AttrTable) HasField(name string) bool {
	_, ok := at.fieldIndex(name)

	return ok
}

// fieldIndex finds the position of a named field. Linear scan: tables hold
// a handful of fields, and order is the contract.
func (at *AttrTable) fieldIndex(name string) (int, bool) {
	var i int
	for i = 0; i < len(at.fields); i++ {
		if at.fields[i].Name == name {
			return i, true
		}
	}

	return 0, false
}

// Values returns a copy of the named field's cells; ok is false when the
// field does not exist. Complexity: O(rows).
func (at *AttrTable) Values(name string) ([]Value, bool) {
	pos, ok := at.fieldIndex(name)
	if !ok {
		return nil, false
	}
	out := make([]Value, at.rows)
	copy(out, at.fields[pos].Values)

	return out, true
}

// Value returns the cell at row i of the named field; ok is false when the
// field is missing or i is out of range. Complexity: O(f).
func (at *AttrTable) Value(i int, name string) (Value, bool) {
	if i < 0 || i >= at.rows {
		return Value{}, false
	}
	pos, ok := at.fieldIndex(name)
	if !ok {
		return Value{}, false
	}

	return at.fields[pos].Values[i], true
}

// subset copies the given table rows, in caller order, into a new table.
// Internal: positions are pre-validated by the selection layer; duplicates
// are legal (a column selected twice keeps its attributes twice).
func (at *AttrTable) subset(rows []int) *AttrTable {
	fields := make([]Field, len(at.fields))
	var i, j int
	for i = 0; i < len(at.fields); i++ {
		vals := make([]Value, len(rows))
		for j = 0; j < len(rows); j++ {
			vals[j] = at.fields[i].Values[rows[j]]
		}
		fields[i] = Field{Name: at.fields[i].Name, Values: vals}
	}

	return &AttrTable{fields: fields, rows: len(rows)}
}

// clone returns a deep copy of the whole table.
func (at *AttrTable) clone() *AttrTable {
	all := make([]int, at.rows)
	var i int
	for i = 0; i < at.rows; i++ {
		all[i] = i
	}

	return at.subset(all)
}

// withIntField returns a copy with the named field's cells replaced by the
// given integers. Internal: the reprocessor rewrites the month column after
// canonicalization; the field exists and len(vs) == rows by construction.
func (at *AttrTable) withIntField(name string, vs []int) *AttrTable {
	out := at.clone()
	pos, _ := out.fieldIndex(name)
	var i int
	for i = 0; i < len(vs); i++ {
		out.fields[pos].Values[i] = IntValue(vs[i])
	}

	return out
}

// appendFloatFields returns a copy with k new float fields named v1..vk,
// one cell per table row. Used by the applicator to attach results to the
// attribute axis.
// Errors: ErrMissingFieldNames when a generated name collides with an
// existing field; ErrInvalidShape when a column length differs from Len().
func (at *AttrTable) appendFloatFields(cols [][]float64) (*AttrTable, error) {
	out := at.clone()
	var k int
	var name string
	for k = 0; k < len(cols); k++ {
		name = fmt.Sprintf("v%d", k+1)
		if out.HasField(name) {
			return nil, fmt.Errorf("appendFloatFields: field %q exists: %w", name, ErrMissingFieldNames)
		}
		if len(cols[k]) != at.rows {
			return nil, fmt.Errorf("appendFloatFields: column %d has %d cells, want %d: %w",
				k+1, len(cols[k]), at.rows, ErrInvalidShape)
		}
		out.fields = append(out.fields, FloatField(name, cols[k]...))
	}

	return out, nil
}

// concat returns the row-wise concatenation of two tables sharing the same
// field names in the same order.
// Errors: ErrFieldMismatch when names or their order differ.
func (at *AttrTable) concat(o *AttrTable) (*AttrTable, error) {
	if len(at.fields) != len(o.fields) {
		return nil, fmt.Errorf("concat: %d fields vs %d: %w", len(at.fields), len(o.fields), ErrFieldMismatch)
	}
	var i int
	for i = 0; i < len(at.fields); i++ {
		if at.fields[i].Name != o.fields[i].Name {
			return nil, fmt.Errorf("concat: field %d: %q vs %q: %w",
				i, at.fields[i].Name, o.fields[i].Name, ErrFieldMismatch)
		}
	}

	fields := make([]Field, len(at.fields))
	for i = 0; i < len(at.fields); i++ {
		vals := make([]Value, 0, at.rows+o.rows)
		vals = append(vals, at.fields[i].Values...)
		vals = append(vals, o.fields[i].Values...)
		fields[i] = Field{Name: at.fields[i].Name, Values: vals}
	}

	return &AttrTable{fields: fields, rows: at.rows + o.rows}, nil
}

// Equal reports whether two tables agree on field names, order and cells.
// Complexity: O(f*rows).
func (at *AttrTable) Equal(o *AttrTable) bool {
	if at == nil || o == nil {
		return at == nil && o == nil
	}
	if len(at.fields) != len(o.fields) || at.rows != o.rows {
		return false
	}
	var i, j int
	for i = 0; i < len(at.fields); i++ {
		if at.fields[i].Name != o.fields[i].Name {
			return false
		}
		for j = 0; j < at.rows; j++ {
			if !at.fields[i].Values[j].Equal(o.fields[i].Values[j]) {
				return false
			}
		}
	}

	return true
}

// String renders a header line of field names followed by one line per row;
// cells separated by ", ". Diagnostics only.
func (at *AttrTable) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(at.FieldNames(), ", "))
	b.WriteString("\n")
	var i, j int
	for i = 0; i < at.rows; i++ {
		for j = 0; j < len(at.fields); j++ {
			b.WriteString(at.fields[j].Values[i].String())
			if j+1 < len(at.fields) {
				b.WriteString(", ")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// CompositeLabels renders the composite identity of every table row: the
// concatenation of all field cells in field order, with no separator. This
// is the string form the column selector matches against. Identities are
// not guaranteed unique; string selection takes the first match.
// Complexity: O(f*rows).
func CompositeLabels(at *AttrTable) []string {
	if at == nil {
		return make([]string, 0)
	}
	out := make([]string, at.rows)
	var i, j int
	var b strings.Builder
	for i = 0; i < at.rows; i++ {
		b.Reset()
		for j = 0; j < len(at.fields); j++ {
			b.WriteString(at.fields[j].Values[i].String())
		}
		out[i] = b.String()
	}

	return out
}
