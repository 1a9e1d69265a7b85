// SPDX-License-Identifier: MIT

// Package stats - plain reductions over mat.Dense.
//
// What lives here:
//   - ColMeans / ColSums / RowMeans: NaN-propagating reductions.
//   - ColMeansNA: NaN-skipping column means for gap-bearing data.
//   - Reduce: adapter from a plain reducer to the applicator shape.

package stats

import (
	"math"

	"github.com/cran/zoocat/mat"
)

// ColMeans returns the arithmetic mean of every column.
// MAIN DESCRIPTION:
//   - NaN propagates: one gap cell makes the whole column mean NaN.
//   - Zero rows make every mean NaN (empty average), matching the
//     convention that a reduction over nothing is a gap.
//
// Implementation:
//   - Stage 1: nil and shape guards (nil -> nil slice, no error channel).
//   - Stage 2: accumulate column sums in a deterministic i→j pass.
//   - Stage 3: divide by the row count.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColMeans(d *mat.Dense) []float64 {
	if d == nil {
		return nil
	}

	r, c := d.Shape()
	means := make([]float64, c)
	if r == 0 {
		for j := 0; j < c; j++ {
			means[j] = math.NaN() // empty average is a gap
		}
		return means
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ { // deterministic row order
		for j = 0; j < c; j++ {
			v, _ = d.At(i, j) // bounds hold by construction
			means[j] += v
		}
	}

	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means
}

// ColSums returns the sum of every column. NaN propagates. Zero rows sum
// to 0, the additive identity.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColSums(d *mat.Dense) []float64 {
	if d == nil {
		return nil
	}

	r, c := d.Shape()
	sums := make([]float64, c)

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, _ = d.At(i, j)
			sums[j] += v
		}
	}

	return sums
}

// RowMeans returns the arithmetic mean of every row. NaN propagates; a row
// with zero columns reduces to NaN.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func RowMeans(d *mat.Dense) []float64 {
	if d == nil {
		return nil
	}

	r, c := d.Shape()
	means := make([]float64, r)
	if c == 0 {
		for i := 0; i < r; i++ {
			means[i] = math.NaN()
		}
		return means
	}

	var i, j int
	var s, v float64
	invC := 1.0 / float64(c)
	for i = 0; i < r; i++ {
		s = 0.0
		for j = 0; j < c; j++ {
			v, _ = d.At(i, j)
			s += v
		}
		means[i] = s * invC
	}

	return means
}

// ColMeansNA returns per-column means over the observed cells only.
// MAIN DESCRIPTION:
//   - NaN cells are skipped, so columns that picked up gaps during a merge
//     still reduce to the mean of what was actually observed.
//   - A column with no observed cells (all NaN, or zero rows) reduces
//     to NaN.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColMeansNA(d *mat.Dense) []float64 {
	if d == nil {
		return nil
	}

	r, c := d.Shape()
	sums := make([]float64, c)
	seen := make([]int, c) // observed cells per column

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, _ = d.At(i, j)
			if math.IsNaN(v) {
				continue // gap: not an observation
			}
			sums[j] += v
			seen[j]++
		}
	}

	means := make([]float64, c)
	for j = 0; j < c; j++ {
		if seen[j] == 0 {
			means[j] = math.NaN()
			continue
		}
		means[j] = sums[j] / float64(seen[j])
	}

	return means
}

// Reduce adapts a plain reducer to the two-return shape the tagged-matrix
// applicator expects, so ColMeans and friends can be passed straight in:
//
//	z.Apply(stats.Reduce(stats.ColMeans), zoocat.Bind{zoocat.BindCattr})
//
// The adapted function ignores extra arguments and never fails.
func Reduce(f func(*mat.Dense) []float64) func(*mat.Dense, ...any) (any, error) {
	return func(d *mat.Dense, _ ...any) (any, error) {
		return f(d), nil
	}
}
