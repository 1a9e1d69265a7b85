// SPDX-License-Identifier: MIT

// Package mat - shape-level operations & approximate comparison.
//
// What lives here:
//   - Transpose: copy-based axis swap.
//   - EqualApprox: tolerance comparison where NaN matches NaN, so merged
//     frames with gap sentinels compare stable.

package mat

import (
	"fmt"
	"math"
)

// Transpose returns a new Dense with rows and columns swapped.
// MAIN DESCRIPTION:
//   - Copy-based transpose; the input is left untouched.
//
// Implementation:
//   - Stage 1: nil guard.
//   - Stage 2: allocate c×r result.
//   - Stage 3: nested i→j loops with direct offset math.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//
// Determinism:
//   - Fixed loop order over the source matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("Transpose: %w", ErrNilMatrix)
	}

	res := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}

	var i, j int
	for i = 0; i < m.r; i++ { // walk the source row-major
		for j = 0; j < m.c; j++ {
			res.data[j*res.c+i] = m.data[i*m.c+j] // (i,j) -> (j,i)
		}
	}

	return res, nil
}

// EqualApprox reports whether a and b share a shape and agree element-wise
// within eps. Two NaN entries count as equal: NaN is the gap sentinel, and a
// gap in one frame must match a gap in the other.
//
// Behavior highlights:
//   - nil==nil is true; nil vs non-nil is false.
//   - Shape mismatch is false, not an error.
//   - Panics when eps is negative or NaN (programmer error, same contract as
//     option constructors).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func EqualApprox(a, b *Dense, eps float64) bool {
	if eps < 0 || math.IsNaN(eps) {
		panic(fmt.Sprintf("mat: EqualApprox called with invalid eps %g", eps))
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.r != b.r || a.c != b.c {
		return false
	}

	var k int
	var x, y float64
	for k = 0; k < len(a.data); k++ { // flat walk; same layout on both sides
		x, y = a.data[k], b.data[k]
		if math.IsNaN(x) && math.IsNaN(y) {
			continue // gap matches gap
		}
		if math.IsNaN(x) || math.IsNaN(y) {
			return false
		}
		if math.Abs(x-y) > eps {
			return false
		}
	}

	return true
}
