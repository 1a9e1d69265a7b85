// SPDX-License-Identifier: MIT

// Package stats - Pearson correlation over columns and over aligned series.
//
// What lives here:
//   - Correlation: c×c correlation matrix of the columns of a mat.Dense.
//   - SeriesCorrelation: scalar correlation of two series on shared keys.
//
// Degeneracy policy (shared by both):
//   - A column with zero variance, or one whose variance is undefined
//     because it contains gaps, contributes zero correlation entries
//     rather than NaN noise.

package stats

import (
	"fmt"
	"math"

	"github.com/cran/zoocat/mat"
	"github.com/cran/zoocat/series"
)

// Correlation returns the Pearson correlation of the columns of d as a
// square c×c matrix.
// MAIN DESCRIPTION:
//   - Each column is z-scored (centered, scaled by its sample standard
//     deviation); the result is Corr = ZᵀZ/(r-1) computed with plain loops.
//   - Degenerate columns (zero or undefined variance) are zeroed before the
//     product, so their correlation rows and columns are zero and their
//     diagonal entry is 0 instead of 1.
//
// Implementation:
//   - Stage 1: validate (nil, then shape: c==0 degenerates to an empty
//     matrix, r<2 cannot support a sample statistic).
//   - Stage 2: copy each column out and z-score it in place.
//   - Stage 3: fill the symmetric result with a fixed a→b→i accumulation.
//
// Errors:
//   - mat.ErrNilMatrix when d is nil.
//   - mat.ErrDimensionMismatch when d has columns but fewer than two rows.
//
// Determinism:
//   - Fixed traversal order; identical inputs give identical outputs.
//
// Complexity:
//   - Time O(r*c^2), Space O(r*c) for the z-scored copies plus O(c^2).
func Correlation(d *mat.Dense) (*mat.Dense, error) {
	if d == nil {
		return nil, fmt.Errorf("Correlation: %w", mat.ErrNilMatrix)
	}

	r, c := d.Shape()
	if c == 0 {
		out, err := mat.NewDense(0, 0) // no columns: correlation of nothing
		if err != nil {
			return nil, fmt.Errorf("Correlation: %w", err)
		}
		return out, nil
	}
	if r < 2 {
		return nil, fmt.Errorf("Correlation: %w", mat.ErrDimensionMismatch)
	}

	// Stage 2: pull column copies and z-score each in place.
	cols := make([][]float64, c)
	var j int
	for j = 0; j < c; j++ {
		col, err := d.Col(j)
		if err != nil {
			return nil, fmt.Errorf("Correlation: %w", err)
		}
		zscore(col)
		cols[j] = col
	}

	out, err := mat.NewDense(c, c)
	if err != nil {
		return nil, fmt.Errorf("Correlation: %w", err)
	}

	// Stage 3: symmetric fill; only the upper triangle is accumulated.
	inv := 1.0 / float64(r-1)
	var a, b, i int
	var s float64
	for a = 0; a < c; a++ {
		for b = a; b < c; b++ {
			s = 0.0
			for i = 0; i < r; i++ {
				s += cols[a][i] * cols[b][i]
			}
			s *= inv
			_ = out.Set(a, b, s) // bounds hold by construction
			_ = out.Set(b, a, s)
		}
	}

	return out, nil
}

// SeriesCorrelation returns the Pearson correlation of two series.
// MAIN DESCRIPTION:
//   - The series are first aligned on their shared keys; pairs where either
//     side is a gap (NaN) are dropped, so series assembled from merged
//     frames correlate over their common observations only.
//
// Errors:
//   - mat.ErrDimensionMismatch when fewer than two complete pairs remain
//     after alignment and gap dropping.
//
// Behavior highlights:
//   - Either side degenerate (zero variance over the shared pairs) yields
//     correlation 0, the same policy as Correlation.
//
// Complexity:
//   - Time O(n) after alignment, Space O(n) for the pair buffers.
func SeriesCorrelation(a, b series.Series) (float64, error) {
	aa, bb := series.AlignSeries(a, b)
	av, bv := aa.Values(), bb.Values()

	// Keep complete pairs only.
	xs := make([]float64, 0, len(av))
	ys := make([]float64, 0, len(bv))
	var k int
	for k = 0; k < len(av); k++ {
		if math.IsNaN(av[k]) || math.IsNaN(bv[k]) {
			continue // gap on either side: not a shared observation
		}
		xs = append(xs, av[k])
		ys = append(ys, bv[k])
	}
	if len(xs) < 2 {
		return 0, fmt.Errorf("SeriesCorrelation: %w", mat.ErrDimensionMismatch)
	}

	zscore(xs)
	zscore(ys)

	var s float64
	inv := 1.0 / float64(len(xs)-1)
	for k = 0; k < len(xs); k++ {
		s += xs[k] * ys[k]
	}

	return s * inv, nil
}

// zscore centers vs and scales by the sample standard deviation, in place.
// Degenerate vectors (zero variance, or undefined variance because of NaN)
// are zeroed so downstream products stay finite.
func zscore(vs []float64) {
	n := len(vs)
	if n < 2 {
		for k := range vs {
			vs[k] = 0.0
		}
		return
	}

	var k int
	var mean float64
	for k = 0; k < n; k++ {
		mean += vs[k]
	}
	mean /= float64(n)

	var sumsq, v float64
	for k = 0; k < n; k++ {
		v = vs[k] - mean
		vs[k] = v
		sumsq += v * v
	}

	std := math.Sqrt(sumsq / float64(n-1))
	if !(std > 0) { // catches 0 and NaN in one test
		for k = 0; k < n; k++ {
			vs[k] = 0.0
		}
		return
	}

	invStd := 1.0 / std
	for k = 0; k < n; k++ {
		vs[k] *= invStd
	}
}
