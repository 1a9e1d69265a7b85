// SPDX-License-Identifier: MIT

// Package series - Align: restrict containers to their shared keys.

package series

import "fmt"

// Align restricts both frames to the keys they share, in ascending order.
// The returned frames have identical indexes (the intersection) and keep
// their own columns; either result may be empty when no key is shared.
// Errors: ErrNilFrame when either operand is nil.
// Complexity: O(r_a + r_b + s*c) for s shared keys.
func Align(a, b *Frame) (*Frame, *Frame, error) {
	if a == nil || b == nil {
		return nil, nil, fmt.Errorf("Align: %w", ErrNilFrame)
	}

	shared := Intersect(a.idx, b.idx)

	ra, err := a.SubRows(positionsOf(a.idx, shared))
	if err != nil {
		return nil, nil, fmt.Errorf("Align: %w", err)
	}
	rb, err := b.SubRows(positionsOf(b.idx, shared))
	if err != nil {
		return nil, nil, fmt.Errorf("Align: %w", err)
	}

	return ra, rb, nil
}

// AlignSeries restricts both series to their shared keys. Same contract as
// Align; infallible because series positions are derived, never supplied.
// Complexity: O(n_a + n_b).
func AlignSeries(a, b Series) (Series, Series) {
	shared := Intersect(a.idx, b.idx)

	return subSeries(a, shared), subSeries(b, shared)
}

// positionsOf maps every key (all present by construction) to its position
// in idx. Both slices are sorted, so a single forward cursor suffices.
func positionsOf(idx Index, keys Index) []int {
	out := make([]int, 0, len(keys))
	var p int
	var k int
	for k = 0; k < len(keys); k++ {
		for idx[p] != keys[k] { // advance to the next matching key
			p++
		}
		out = append(out, p)
		p++
	}

	return out
}

// subSeries restricts s to keys (a subset of s.idx, sorted).
func subSeries(s Series, keys Index) Series {
	pos := positionsOf(s.idx, keys)
	val := make([]float64, len(pos))
	var i int
	for i = 0; i < len(pos); i++ {
		val[i] = s.val[pos[i]]
	}

	return Series{idx: keys.Clone(), val: val}
}
