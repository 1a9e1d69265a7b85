// SPDX-License-Identifier: MIT

// Package stats supplies the numeric reductions that callers hand to the
// tagged-matrix applicator. The core container never defines transformations
// of its own; this package is the standard set its tests and examples use.
//
// What you get:
//
//   - ColMeans / ColSums / RowMeans: plain reductions over a mat.Dense.
//     NaN propagates, so a gap in the input yields a gap in the result.
//   - ColMeansNA: the gap-tolerant variant. NaN cells are skipped; a column
//     with no observed cells reduces to NaN.
//   - Reduce: adapts a plain reducer to the applicator's function shape.
//   - Correlation: Pearson correlation of columns, returned as a square
//     mat.Dense. Columns with zero variance produce zero rows and columns.
//   - SeriesCorrelation: Pearson correlation of two series after aligning
//     them on their shared keys and dropping gap pairs.
//
// Design guarantees:
//
//   - Reducers are total: any shape, including zero rows or columns, yields
//     a slice of the documented length with no error channel.
//   - Correlation follows the container error discipline: sentinel errors
//     from package mat, matched with errors.Is.
//   - Determinism: fixed i→j traversal everywhere; identical inputs produce
//     identical outputs bit for bit.
package stats
