// SPDX-License-Identifier: MIT

// Package series - Merge: column-wise union-by-index.

package series

import (
	"fmt"
	"math"

	"github.com/cran/zoocat/mat"
)

// Merge joins two frames column-wise over the union of their keys.
// MAIN DESCRIPTION:
//   - The result holds every key from either operand and every column from
//     both (a's columns first, then b's). Where an operand has no row for a
//     key, its columns hold NaN: the gap sentinel.
//
// Implementation:
//   - Stage 1: nil guard; identity shortcut for an operand with no columns.
//   - Stage 2: compute the sorted key union.
//   - Stage 3: build NaN-filled rows, then walk the union once with one
//     cursor per operand, copying each operand's row where its key matches.
//
// Behavior highlights:
//   - A frame with no value columns is the merge identity, so a fold seeded
//     with EmptyFrame() reproduces the last operand set exactly.
//   - Column order is deterministic: all of a's columns, then all of b's.
//   - Inputs are never mutated; the result owns its storage.
//
// Inputs:
//   - a, b: non-nil frames.
//
// Returns:
//   - *Frame of shape |union| x (a.Cols()+b.Cols()).
//
// Errors:
//   - ErrNilFrame when either operand is nil.
//
// Determinism:
//   - Single forward pass over the union; no map iteration anywhere.
//
// Complexity:
//   - Time O(u*c) for u union keys and c total columns, Space O(u*c).
func Merge(a, b *Frame) (*Frame, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Merge: %w", ErrNilFrame)
	}
	// An operand with no columns labels no values: merge identity.
	if a.Cols() == 0 {
		return b.Clone(), nil
	}
	if b.Cols() == 0 {
		return a.Clone(), nil
	}

	union := Union(a.idx, b.idx)
	ca, cb := a.Cols(), b.Cols()

	rows := make([][]float64, len(union))
	var u, j int
	for u = 0; u < len(union); u++ { // pre-fill every cell with the gap sentinel
		row := make([]float64, ca+cb)
		for j = 0; j < ca+cb; j++ {
			row[j] = math.NaN()
		}
		rows[u] = row
	}

	var pa, pb int // one cursor per operand; both indexes are sorted
	var src []float64
	var err error
	for u = 0; u < len(union); u++ {
		if pa < len(a.idx) && a.idx[pa] == union[u] {
			if src, err = a.dat.Row(pa); err != nil {
				return nil, fmt.Errorf("Merge: %w", err)
			}
			copy(rows[u][:ca], src) // a's columns occupy the left block
			pa++
		}
		if pb < len(b.idx) && b.idx[pb] == union[u] {
			if src, err = b.dat.Row(pb); err != nil {
				return nil, fmt.Errorf("Merge: %w", err)
			}
			copy(rows[u][ca:], src) // b's columns occupy the right block
			pb++
		}
	}

	d, err := fromRectRows(rows, ca+cb)
	if err != nil {
		return nil, fmt.Errorf("Merge: %w", err)
	}

	return newSorted(union, d), nil
}

// fromRectRows builds a Dense from rows while preserving the column count
// for the zero-row case (mat.FromRows would collapse it to 0x0, and a merged
// frame must keep its columns even when no key survives).
func fromRectRows(rows [][]float64, cols int) (*mat.Dense, error) {
	if len(rows) == 0 {
		return mat.NewDense(0, cols)
	}

	return mat.FromRows(rows)
}

// MergeAll folds Merge over the operands left to right, starting from the
// empty frame. Zero operands yield EmptyFrame().
// Errors: ErrNilFrame when any operand is nil.
// Complexity: O(sum of pairwise merge costs).
func MergeAll(frames ...*Frame) (*Frame, error) {
	acc := EmptyFrame()
	var err error
	var i int
	for i = 0; i < len(frames); i++ { // deterministic left-to-right fold
		if acc, err = Merge(acc, frames[i]); err != nil {
			return nil, fmt.Errorf("MergeAll: operand %d: %w", i, err)
		}
	}

	return acc, nil
}
