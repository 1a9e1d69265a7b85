// SPDX-License-Identifier: MIT

// Package series - Series: one value column aligned to an Index.

package series

import (
	"fmt"
	"sort"

	"github.com/cran/zoocat/mat"
)

// Series pairs an Index with one value per key. The zero value is a legal
// empty series. Values may be NaN (gaps survive alignment).
type Series struct {
	idx Index
	val []float64
}

// NewSeries builds a Series from keys and values of equal length.
// Observations may arrive in any key order; rows are sorted by key.
//
// Errors:
//   - ErrLengthMismatch when len(keys) != len(vals).
//   - ErrDuplicateIndex when a key repeats.
//
// Complexity: O(n log n).
func NewSeries(keys Index, vals []float64) (Series, error) {
	if len(keys) != len(vals) {
		return Series{}, fmt.Errorf("NewSeries: %d keys vs %d values: %w", len(keys), len(vals), ErrLengthMismatch)
	}

	perm := sortPerm(keys) // permutation that orders the keys ascending

	idx := make(Index, len(keys))
	val := make([]float64, len(vals))
	var i int
	for i = 0; i < len(perm); i++ { // apply the permutation to both slices
		idx[i] = keys[perm[i]]
		val[i] = vals[perm[i]]
	}
	for i = 1; i < len(idx); i++ { // duplicates are adjacent after sorting
		if idx[i] == idx[i-1] {
			return Series{}, fmt.Errorf("NewSeries: key %d: %w", idx[i], ErrDuplicateIndex)
		}
	}

	return Series{idx: idx, val: val}, nil
}

// sortPerm returns the stable permutation that orders keys ascending.
// Shared by the Series and Frame constructors.
func sortPerm(keys Index) []int {
	perm := make([]int, len(keys))
	var i int
	for i = 0; i < len(perm); i++ {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool { return keys[perm[a]] < keys[perm[b]] })

	return perm
}

// Len returns the number of observations. Complexity: O(1).
func (s Series) Len() int { return len(s.idx) }

// Index returns a copy of the key column. Complexity: O(n).
func (s Series) Index() Index { return s.idx.Clone() }

// Values returns a copy of the value column. Complexity: O(n).
func (s Series) Values() []float64 {
	out := make([]float64, len(s.val))
	copy(out, s.val)

	return out
}

// At returns the key and value at position i.
// Errors: mat.ErrOutOfRange when i is outside [0, Len); positional errors
// share one sentinel across the module.
// Complexity: O(1).
func (s Series) At(i int) (int64, float64, error) {
	if i < 0 || i >= len(s.idx) {
		return 0, 0, fmt.Errorf("Series.At(%d): %w", i, mat.ErrOutOfRange)
	}

	return s.idx[i], s.val[i], nil
}

// Value returns the value stored at key, or false when the key is absent.
// Complexity: O(log n).
func (s Series) Value(key int64) (float64, bool) {
	pos, ok := s.idx.Search(key)
	if !ok {
		return 0, false
	}

	return s.val[pos], true
}

// Shift returns a new Series with delta added to every key.
// Complexity: O(n).
func (s Series) Shift(delta int64) Series {
	out := Series{idx: s.idx.Shift(delta), val: make([]float64, len(s.val))}
	copy(out.val, s.val)

	return out
}
