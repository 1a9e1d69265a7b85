// SPDX-License-Identifier: MIT

// Package mat provides the dense numeric storage shared by the zoocat
// packages.
//
// The package exposes a single concrete type, Dense: a row-major matrix of
// float64 values with bounds-checked accessors, copy-based submatrix
// extraction (Induced) and a read-only visitor (Do). Two properties are
// deliberate and differ from a general linear-algebra store:
//
//   - Zero-sized shapes (0×c, r×0, 0×0) are first-class values. Empty
//     matrices act as neutral accumulators for column-wise union merges.
//   - NaN entries are legal everywhere. NaN is the gap sentinel written when
//     two series are merged on the union of their indexes, so Set never
//     rejects it. Use EqualApprox, which treats NaN as equal to NaN, when
//     comparing matrices that may carry gaps.
//
// All operations are deterministic (fixed i→j traversal, no map iteration)
// and never panic on user-triggered conditions; public entry points return
// sentinel errors matched with errors.Is.
package mat
