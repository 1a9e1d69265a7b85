// SPDX-License-Identifier: MIT

// Package series - Index: ordered unique integer keys.

package series

import (
	"fmt"
	"sort"
)

// Index holds time keys (years in the canonical use) in strictly increasing
// order. The type is a plain slice so literals stay cheap; call Validate
// when an Index arrives from outside a constructor.
type Index []int64

// Validate reports whether the keys are strictly increasing and unique.
// Errors:
//   - ErrDuplicateIndex for a repeated key.
//   - ErrIndexOrder for keys out of order.
//
// Complexity: O(n).
func (ix Index) Validate() error {
	var i int
	for i = 1; i < len(ix); i++ {
		if ix[i] == ix[i-1] {
			return fmt.Errorf("Index.Validate: key %d at position %d: %w", ix[i], i, ErrDuplicateIndex)
		}
		if ix[i] < ix[i-1] {
			return fmt.Errorf("Index.Validate: key %d at position %d: %w", ix[i], i, ErrIndexOrder)
		}
	}

	return nil
}

// Search returns the position of key and true, or the insertion point and
// false when the key is absent. Binary search; requires a valid Index.
// Complexity: O(log n).
func (ix Index) Search(key int64) (int, bool) {
	pos := sort.Search(len(ix), func(i int) bool { return ix[i] >= key })
	if pos < len(ix) && ix[pos] == key {
		return pos, true
	}

	return pos, false
}

// Contains reports whether key is present. Complexity: O(log n).
func (ix Index) Contains(key int64) bool {
	_, ok := ix.Search(key)

	return ok
}

// Shift returns a new Index with delta added to every key. Order is
// preserved, so the result of shifting a valid Index is valid.
// Complexity: O(n).
func (ix Index) Shift(delta int64) Index {
	out := make(Index, len(ix))
	var i int
	for i = 0; i < len(ix); i++ {
		out[i] = ix[i] + delta
	}

	return out
}

// Clone returns an independent copy. Complexity: O(n).
func (ix Index) Clone() Index {
	out := make(Index, len(ix))
	copy(out, ix)

	return out
}

// Equal reports element-wise equality. Complexity: O(n).
func (ix Index) Equal(other Index) bool {
	if len(ix) != len(other) {
		return false
	}
	var i int
	for i = 0; i < len(ix); i++ {
		if ix[i] != other[i] {
			return false
		}
	}

	return true
}

// Union merges two valid Indexes into their sorted set union.
// Classic two-pointer merge; each key appears once.
// Complexity: O(len(a)+len(b)).
func Union(a, b Index) Index {
	out := make(Index, 0, len(a)+len(b))
	var i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default: // shared key emitted once
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...) // drain the longer operand
	out = append(out, b[j:]...)

	return out
}

// Intersect returns the sorted keys present in both valid Indexes.
// Complexity: O(len(a)+len(b)).
func Intersect(a, b Index) Index {
	out := make(Index, 0)
	var i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}
