// SPDX-License-Identifier: MIT

// Package zoocat - Attribute Filter: select columns by predicate over the
// attribute table.
//
// Predicates are ordinary Go closures over a Row accessor (field names are
// looked up, not reflected). The eager form evaluates the closure once per
// attribute row; the mask form accepts a pre-built mask function for
// programmatic construction. Both select the surviving columns through the
// Indexer with dropping disabled, so the result is always a full tagged
// matrix.

package zoocat

import (
	"errors"
	"fmt"
	"strings"
)

// Row presents one attribute-table row to a predicate. Field lookups that
// miss are recorded into the enclosing evaluation; the filter call then
// fails with ErrPredicate naming every field the predicate touched but the
// table lacks.
type Row struct {
	at      *AttrTable
	i       int
	missing *[]string
}

// Val returns the cell of the named field, or the zero Value when the field
// is absent (recorded).
func (r Row) Val(name string) Value {
	v, ok := r.at.Value(r.i, name)
	if !ok {
		r.record(name)

		return Value{}
	}

	return v
}

// Str returns the string cell of the named field; missing fields are
// recorded, non-string cells read as "".
func (r Row) Str(name string) string {
	s, _ := r.Val(name).Str()

	return s
}

// Int returns the integer cell of the named field; missing fields are
// recorded, non-integral cells read as 0.
func (r Row) Int(name string) int {
	v, _ := r.Val(name).Int()

	return v
}

// Float returns the numeric cell of the named field; missing fields are
// recorded, string cells read as 0.
func (r Row) Float(name string) float64 {
	v, _ := r.Val(name).Float()

	return v
}

// record notes a missing field once.
func (r Row) record(name string) {
	var i int
	for i = 0; i < len(*r.missing); i++ {
		if (*r.missing)[i] == name {
			return
		}
	}
	*r.missing = append(*r.missing, name)
}

// MaskFunc computes a keep-mask over the attribute table: one bool per table
// row (matrix column). A nil or wrong-length mask is ErrPredicate.
type MaskFunc func(at *AttrTable) ([]bool, error)

// FilterCols keeps the columns whose attribute row satisfies pred.
// The eager variant: evaluates pred once per row, then defers to
// FilterColsMask with the collected mask.
//
// Errors:
//   - ErrPredicate when pred touched a field the table lacks (the error
//     names every such field).
//
// Complexity: O(c) predicate calls plus the selection cost.
func (z *Matrix) FilterCols(pred func(Row) bool) (*Matrix, error) {
	if pred == nil {
		return nil, fmt.Errorf("FilterCols: nil predicate: %w", ErrPredicate)
	}

	return z.FilterColsMask(func(at *AttrTable) ([]bool, error) {
		mask := make([]bool, at.Len())
		missing := make([]string, 0)
		var i int
		for i = 0; i < at.Len(); i++ {
			mask[i] = pred(Row{at: at, i: i, missing: &missing})
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("unknown field(s) %s: %w", strings.Join(missing, ", "), ErrPredicate)
		}

		return mask, nil
	})
}

// FilterColsMask keeps the columns the mask marks true.
// MAIN DESCRIPTION:
//   - The deferred variant: the mask function sees the whole attribute table
//     (a copy) and answers one bool per column.
//
// Implementation:
//   - Stage 1: empty receiver answers Empty() without evaluating anything.
//   - Stage 2: run the mask over a table copy; validate length C.
//   - Stage 3: select the surviving positions through the Indexer with
//     dropping disabled, so the shape never collapses.
//
// Behavior highlights:
//   - An all-false mask yields a 0-column tagged matrix, not an error.
//   - The mask function's own error is joined with ErrPredicate: callers
//     match the sentinel and still see the cause.
//
// Errors:
//   - ErrPredicate for a nil mask function, a failed evaluation, or a mask
//     whose length differs from the column count.
//
// Complexity: O(c) plus the selection cost.
func (z *Matrix) FilterColsMask(mask MaskFunc) (*Matrix, error) {
	if mask == nil {
		return nil, fmt.Errorf("FilterColsMask: nil mask: %w", ErrPredicate)
	}
	if z.IsEmpty() && z.at.NumFields() == 0 {
		return Empty(), nil
	}

	ms, err := mask(z.at.clone()) // copy: the mask cannot corrupt the table
	if err != nil {
		if errors.Is(err, ErrPredicate) { // already carries the sentinel
			return nil, fmt.Errorf("FilterColsMask: %w", err)
		}

		return nil, fmt.Errorf("FilterColsMask: %w: %w", ErrPredicate, err)
	}
	if ms == nil || len(ms) != z.Cols() {
		return nil, fmt.Errorf("FilterColsMask: mask length %d for %d columns: %w", len(ms), z.Cols(), ErrPredicate)
	}

	keep := make([]int, 0, len(ms))
	var i int
	for i = 0; i < len(ms); i++ {
		if ms[i] {
			keep = append(keep, i)
		}
	}

	sel, err := z.Select(AllRows(), ColsAt(keep...), WithNoDrop())
	if err != nil {
		return nil, fmt.Errorf("FilterColsMask: %w", err)
	}

	return sel.Matrix(), nil
}
