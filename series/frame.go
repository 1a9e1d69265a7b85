// SPDX-License-Identifier: MIT

// Package series - Frame: an Index plus a row-aligned value matrix.
//
// Purpose:
//   - Pair every matrix row with exactly one index key (row i belongs to
//     key idx[i]).
//   - Keep the key column strictly increasing so binary search, merge and
//     alignment stay O(log n) / linear.
//   - Copy on the way in and on the way out; a Frame never aliases caller
//     storage.

package series

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cran/zoocat/mat"
)

// Frame is an index-aligned numeric table: dat.Rows() == len(idx) always
// holds, and idx is strictly increasing.
type Frame struct {
	idx Index      // strictly increasing unique keys, one per matrix row
	dat *mat.Dense // row i holds the values observed at idx[i]
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Frame)(nil)

// NewFrame builds a Frame from keys and a value matrix with one row per key.
// MAIN DESCRIPTION:
//   - Public constructor; sorts observations by key so callers may supply
//     rows in any order.
//
// Implementation:
//   - Stage 1: nil and length validation.
//   - Stage 2: compute the stable permutation ordering the keys ascending.
//   - Stage 3: apply it to the keys, reject duplicates, and materialize the
//     permuted matrix via Induced (deep copy).
//
// Inputs:
//   - keys: index keys, any order, must be unique.
//   - data: matrix with len(keys) rows.
//
// Returns:
//   - *Frame: independent of both inputs.
//
// Errors:
//   - mat.ErrNilMatrix when data is nil.
//   - ErrLengthMismatch when len(keys) != data.Rows().
//   - ErrDuplicateIndex when a key repeats.
//
// Complexity:
//   - Time O(r log r + r*c), Space O(r*c).
func NewFrame(keys Index, data *mat.Dense) (*Frame, error) {
	if data == nil {
		return nil, fmt.Errorf("NewFrame: %w", mat.ErrNilMatrix)
	}
	if len(keys) != data.Rows() {
		return nil, fmt.Errorf("NewFrame: %d keys vs %d rows: %w", len(keys), data.Rows(), ErrLengthMismatch)
	}

	perm := sortPerm(keys) // stable permutation ordering keys ascending

	idx := make(Index, len(keys))
	var i int
	for i = 0; i < len(perm); i++ {
		idx[i] = keys[perm[i]]
	}
	for i = 1; i < len(idx); i++ { // duplicates are adjacent after sorting
		if idx[i] == idx[i-1] {
			return nil, fmt.Errorf("NewFrame: key %d: %w", idx[i], ErrDuplicateIndex)
		}
	}

	permuted, err := data.Induced(perm, iotaInts(data.Cols())) // reorder rows, copy all columns
	if err != nil {
		return nil, fmt.Errorf("NewFrame: %w", err)
	}

	return &Frame{idx: idx, dat: permuted}, nil
}

// EmptyFrame returns the 0-key, 0-column frame: the Merge identity and the
// canonical fold accumulator.
func EmptyFrame() *Frame {
	d, _ := mat.NewDense(0, 0) // zero shape cannot fail

	return &Frame{idx: make(Index, 0), dat: d}
}

// newSorted wraps an already-valid index and matrix without copying.
// Internal fast path for Merge/Align/SubRows, which construct both arguments
// themselves; takes ownership of idx and dat.
func newSorted(idx Index, dat *mat.Dense) *Frame {
	return &Frame{idx: idx, dat: dat}
}

// iotaInts returns [0, 1, ..., n-1]; used as the "all rows/cols" index list.
func iotaInts(n int) []int {
	out := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = i
	}

	return out
}

// Rows returns the number of keys (== matrix rows). Complexity: O(1).
func (f *Frame) Rows() int { return len(f.idx) }

// Cols returns the number of value columns. Complexity: O(1).
func (f *Frame) Cols() int { return f.dat.Cols() }

// Index returns a copy of the key column. Complexity: O(r).
func (f *Frame) Index() Index { return f.idx.Clone() }

// Dense returns a deep copy of the value matrix. Complexity: O(r*c).
func (f *Frame) Dense() *mat.Dense { return f.dat.Clone() }

// At returns the value at row position i, column j.
// Errors: mat.ErrOutOfRange via the underlying matrix.
// Complexity: O(1).
func (f *Frame) At(i, j int) (float64, error) { return f.dat.At(i, j) }

// Col returns column j as a Series sharing the frame's keys.
// Errors: mat.ErrOutOfRange when j is outside [0, Cols).
// Complexity: O(r).
func (f *Frame) Col(j int) (Series, error) {
	vals, err := f.dat.Col(j)
	if err != nil {
		return Series{}, fmt.Errorf("Frame.Col(%d): %w", j, err)
	}

	return Series{idx: f.idx.Clone(), val: vals}, nil
}

// SubRows returns the frame restricted to the given row positions.
// MAIN DESCRIPTION:
//   - Row subsetting that keeps the index a strict sub-sequence: positions
//     are normalized ascending, so relative key order always survives.
//
// Behavior highlights:
//   - Caller order of positions is irrelevant (normalized away).
//   - Repeated positions would break key uniqueness and are rejected.
//
// Errors:
//   - ErrDuplicateIndex when a position repeats.
//   - mat.ErrOutOfRange when a position is outside [0, Rows).
//
// Complexity:
//   - Time O(p log p + p*c), Space O(p*c).
func (f *Frame) SubRows(positions []int) (*Frame, error) {
	norm := normalizePositions(positions) // sorted copy; caller slice untouched

	var i int
	for i = 1; i < len(norm); i++ { // duplicates are adjacent after sorting
		if norm[i] == norm[i-1] {
			return nil, fmt.Errorf("Frame.SubRows: position %d repeated: %w", norm[i], ErrDuplicateIndex)
		}
	}

	idx := make(Index, len(norm))
	for i = 0; i < len(norm); i++ {
		if norm[i] < 0 || norm[i] >= len(f.idx) {
			return nil, fmt.Errorf("Frame.SubRows: position %d: %w", norm[i], mat.ErrOutOfRange)
		}
		idx[i] = f.idx[norm[i]]
	}

	sub, err := f.dat.Induced(norm, iotaInts(f.dat.Cols())) // copy selected rows, all columns
	if err != nil {
		return nil, fmt.Errorf("Frame.SubRows: %w", err)
	}

	return newSorted(idx, sub), nil
}

// SubCols returns the frame restricted to the given column positions, in
// caller order. Columns carry no order invariant, so duplicates are legal
// (the column is simply repeated).
// Errors: mat.ErrOutOfRange when a position is outside [0, Cols).
// Complexity: O(r*p).
func (f *Frame) SubCols(positions []int) (*Frame, error) {
	sub, err := f.dat.Induced(iotaInts(len(f.idx)), positions) // all rows, selected columns
	if err != nil {
		return nil, fmt.Errorf("Frame.SubCols: %w", err)
	}

	return newSorted(f.idx.Clone(), sub), nil
}

// Shift returns a new Frame with delta added to every key; values are
// deep-copied. Complexity: O(r*c).
func (f *Frame) Shift(delta int64) *Frame {
	return newSorted(f.idx.Shift(delta), f.dat.Clone())
}

// Clone returns a deep copy. Complexity: O(r*c).
func (f *Frame) Clone() *Frame {
	return newSorted(f.idx.Clone(), f.dat.Clone())
}

// Equal reports whether two frames share keys and values exactly.
// NaN gaps compare equal to NaN gaps (mat.EqualApprox with eps 0).
// Complexity: O(r*c).
func (f *Frame) Equal(other *Frame) bool {
	if f == nil || other == nil {
		return f == nil && other == nil
	}

	return f.idx.Equal(other.idx) && mat.EqualApprox(f.dat, other.dat, 0)
}

// String renders one "key: [values]" line per row for diagnostics.
// Complexity: O(r*c).
func (f *Frame) String() string {
	var b strings.Builder
	var i, j int
	var v float64
	for i = 0; i < len(f.idx); i++ {
		b.WriteString(fmt.Sprintf("%d: [", f.idx[i]))
		for j = 0; j < f.dat.Cols(); j++ {
			v, _ = f.dat.At(i, j) // bounds hold by construction
			b.WriteString(fmt.Sprintf("%g", v))
			if j+1 < f.dat.Cols() {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// normalizePositions returns a sorted copy of positions; the caller's slice
// is left untouched.
func normalizePositions(positions []int) []int {
	norm := make([]int, len(positions))
	copy(norm, positions)
	sort.Ints(norm)

	return norm
}
