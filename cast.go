// SPDX-License-Identifier: MIT

// Package zoocat - long-format bridge: cast records into a tagged matrix
// and melt one back.
//
// A Record is one observation in long form: time key, attribute tuple, one
// value. Casting groups records by attribute tuple (one column per distinct
// tuple, in first-appearance order) over the sorted union of keys; melting
// walks the matrix row-major and skips NaN gaps, so melt(cast(x)) == x for
// gap-free data.

package zoocat

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cran/zoocat/mat"
	"github.com/cran/zoocat/series"
)

// Record is one long-form observation. Attrs follow the field-name order
// given to FromRecords.
type Record struct {
	Key   int64
	Attrs []Value
	Value float64
}

// FromRecords casts long-form records into a tagged matrix.
// MAIN DESCRIPTION:
//   - The inverse of Records: one column per distinct attribute tuple, one
//     row per distinct key, NaN where no record landed.
//
// Implementation:
//   - Stage 1: validate field names (non-empty, unique, at least one) and
//     record arity (len(Attrs) == len(fieldNames)).
//   - Stage 2: group records by attribute tuple; columns keep
//     first-appearance order, so input order decides column order.
//   - Stage 3: rows are the sorted key union; fill NaN, place every record,
//     and reject a second record for the same (tuple, key) cell.
//   - Stage 4: assemble via New (single validation path).
//
// Errors:
//   - ErrMissingFieldNames for bad field names.
//   - ErrInvalidShape when a record's arity disagrees with fieldNames.
//   - series.ErrDuplicateIndex when two records land on the same cell.
//
// Complexity:
//   - Time O(n log n + r*c), Space O(r*c).
func FromRecords(fieldNames []string, recs []Record, opts ...Option) (*Matrix, error) {
	if len(fieldNames) == 0 {
		return nil, fmt.Errorf("FromRecords: no fields: %w", ErrMissingFieldNames)
	}
	seen := make(map[string]struct{}, len(fieldNames))
	var i int
	for i = 0; i < len(fieldNames); i++ {
		if fieldNames[i] == "" {
			return nil, fmt.Errorf("FromRecords: field %d: empty name: %w", i, ErrMissingFieldNames)
		}
		if _, dup := seen[fieldNames[i]]; dup {
			return nil, fmt.Errorf("FromRecords: field %q: %w", fieldNames[i], ErrMissingFieldNames)
		}
		seen[fieldNames[i]] = struct{}{}
	}

	// Group by attribute tuple; tuples keep first-appearance order.
	type column struct {
		attrs []Value
		cells map[int64]float64
	}
	columns := make([]*column, 0)
	byTuple := make(map[string]*column)
	keys := make(map[int64]struct{})

	var col *column
	var ok bool
	for i = 0; i < len(recs); i++ {
		if len(recs[i].Attrs) != len(fieldNames) {
			return nil, fmt.Errorf("FromRecords: record %d has %d attrs, want %d: %w",
				i, len(recs[i].Attrs), len(fieldNames), ErrInvalidShape)
		}
		key := tupleKey(recs[i].Attrs)
		if col, ok = byTuple[key]; !ok {
			attrs := make([]Value, len(recs[i].Attrs))
			copy(attrs, recs[i].Attrs)
			col = &column{attrs: attrs, cells: make(map[int64]float64)}
			byTuple[key] = col
			columns = append(columns, col)
		}
		if _, dup := col.cells[recs[i].Key]; dup {
			return nil, fmt.Errorf("FromRecords: record %d repeats key %d for its tuple: %w",
				i, recs[i].Key, series.ErrDuplicateIndex)
		}
		col.cells[recs[i].Key] = recs[i].Value
		keys[recs[i].Key] = struct{}{}
	}

	idx := make(series.Index, 0, len(keys))
	var k int64
	for k = range keys {
		idx = append(idx, k)
	}
	sort.Slice(idx, func(a, b int) bool { return idx[a] < idx[b] })

	data, err := mat.NewDense(len(idx), len(columns))
	if err != nil {
		return nil, fmt.Errorf("FromRecords: %w", err)
	}
	var r, c int
	var v float64
	for r = 0; r < len(idx); r++ {
		for c = 0; c < len(columns); c++ {
			if v, ok = columns[c].cells[idx[r]]; !ok {
				v = math.NaN() // no record for this cell
			}
			if err = data.Set(r, c, v); err != nil {
				return nil, fmt.Errorf("FromRecords: %w", err)
			}
		}
	}

	fields := make([]Field, len(fieldNames))
	var f int
	for f = 0; f < len(fieldNames); f++ {
		cells := make([]Value, len(columns))
		for c = 0; c < len(columns); c++ {
			cells[c] = columns[c].attrs[f]
		}
		fields[f] = Field{Name: fieldNames[f], Values: cells}
	}
	at, err := NewAttrTable(fields...)
	if err != nil {
		return nil, fmt.Errorf("FromRecords: %w", err)
	}

	z, err := New(data, idx, at, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromRecords: %w", err)
	}

	return z, nil
}

// tupleKey renders an attribute tuple into a collision-safe map key: kind
// byte + rendering + NUL per cell (plain concatenation would confuse
// ("ab","c") with ("a","bc")).
func tupleKey(attrs []Value) string {
	var b strings.Builder
	var i int
	for i = 0; i < len(attrs); i++ {
		b.WriteByte(byte(attrs[i].kind))
		b.WriteString(attrs[i].String())
		b.WriteByte(0)
	}

	return b.String()
}

// Records melts the tagged matrix back into long form: row-major walk, one
// record per non-NaN cell, attribute tuples in field order. An empty matrix
// melts to an empty slice.
// Complexity: O(r*c*f).
func (z *Matrix) Records() []Record {
	labels := z.at // one tuple per column, assembled once
	tuples := make([][]Value, z.Cols())
	var c, f int
	for c = 0; c < z.Cols(); c++ {
		tuple := make([]Value, len(labels.fields))
		for f = 0; f < len(labels.fields); f++ {
			tuple[f] = labels.fields[f].Values[c]
		}
		tuples[c] = tuple
	}

	idx := z.fr.Index()
	out := make([]Record, 0, z.Rows()*z.Cols())
	var r int
	var v float64
	for r = 0; r < z.Rows(); r++ {
		for c = 0; c < z.Cols(); c++ {
			v, _ = z.fr.At(r, c) // bounds hold by construction
			if math.IsNaN(v) {
				continue // gaps melt away
			}
			attrs := make([]Value, len(tuples[c]))
			copy(attrs, tuples[c])
			out = append(out, Record{Key: idx[r], Attrs: attrs, Value: v})
		}
	}

	return out
}
