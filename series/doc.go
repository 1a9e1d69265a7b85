// SPDX-License-Identifier: MIT

// Package series provides the ordered containers under the tagged-matrix
// layer: an integer Index of strictly increasing unique keys, a single
// aligned column (Series), and an index-aligned matrix (Frame).
//
// What you get:
//
//   - Index: []int64 keys, strictly increasing and unique once validated.
//     Set algebra (Union, Intersect), binary Search, Shift by a constant.
//   - Series: one column of values aligned to an Index. Constructors sort
//     rows by key, so callers may supply observations in any order.
//   - Frame: an Index plus a mat.Dense whose rows follow the index.
//     Row subsetting keeps keys in ascending order; column subsetting
//     preserves caller order.
//   - Merge / MergeAll: column-wise union-by-index. Keys present in one
//     operand only produce NaN gaps in the other operand's columns. A frame
//     with no columns is the merge identity, which makes an empty Frame a
//     correct fold accumulator.
//   - Align / AlignSeries: restrict two containers to their shared keys.
//
// Design guarantees:
//
//   - Errors: all failures are sentinel errors (ErrIndexOrder,
//     ErrDuplicateIndex, ErrLengthMismatch, ErrNilFrame) matched with
//     errors.Is; no panics on user input.
//   - Copy discipline: constructors copy their inputs and accessors copy
//     their outputs; no method leaks internal storage.
//   - Determinism: identical inputs produce identical row order, gap
//     placement, and error text.
package series
