// SPDX-License-Identifier: MIT
// Package mat: sentinel error set.
//
// This file defines ONLY package-level sentinel errors used across the mat
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors (nonsensical tolerance values).

package mat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "mat: ..." for consistency and to allow easy
// grepping across logs. Do not %w-wrap these sentinels at the definition
// site; call sites attach context via fmt.Errorf("ctx: %w", ErrX) so callers
// still match with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// dimension) or when row data is ragged. Zero dimensions are legal.
	ErrBadShape = errors.New("mat: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. a vector whose length does not match a column count.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was
	// passed where a matrix is required.
	ErrNilMatrix = errors.New("mat: nil matrix")
)
