// SPDX-License-Identifier: MIT
// Package zoocat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the root
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions;
// panics are reserved for nonsensical option-constructor arguments.

package zoocat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "zoocat: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("Op: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// Failure timing (documented, enforced in tests): every error is immediate
// and synchronous; constructors fail before any input is copied, and a
// failed operation leaves its receiver untouched.

var (
	// ErrInvalidShape is returned when the three construction pieces disagree:
	// index length vs matrix rows, or attribute-table length vs matrix columns,
	// or a ragged attribute field.
	ErrInvalidShape = errors.New("zoocat: invalid shape")

	// ErrMissingFieldNames signals an attribute table with no fields, an empty
	// field name, or a duplicated field name.
	ErrMissingFieldNames = errors.New("zoocat: missing or duplicate field names")

	// ErrColumnNotFound indicates a string selector that matched no composite
	// column identity. The selection is abandoned whole; no partial result.
	ErrColumnNotFound = errors.New("zoocat: column not found")

	// ErrBadResultType marks an Apply result the coercion table does not
	// cover (neither vector-like nor matrix-like).
	ErrBadResultType = errors.New("zoocat: unsupported apply result type")

	// ErrInvalidBindSpec marks a Bind with zero or more than two targets, a
	// repeated target, or an unknown BindTarget value.
	ErrInvalidBindSpec = errors.New("zoocat: invalid bind spec")

	// ErrShapeMismatch is returned when an Apply result cannot be attached to
	// the axis its bind spec names (wrong element count for the index or for
	// the attribute rows).
	ErrShapeMismatch = errors.New("zoocat: result does not fit the bound axis")

	// ErrPredicate reports a failed filter evaluation: a predicate touched a
	// missing attribute field, or a mask function misbehaved (nil mask or
	// wrong mask length).
	ErrPredicate = errors.New("zoocat: predicate evaluation failed")

	// ErrInvalidMonthRange signals a month attribute outside 1..12 (or a
	// non-integral month value) observed at reprocess time.
	ErrInvalidMonthRange = errors.New("zoocat: month out of range")

	// ErrNilMatrix indicates a nil *Matrix receiver or operand.
	ErrNilMatrix = errors.New("zoocat: nil matrix")

	// ErrFieldMismatch is returned by column-wise merges when the two operands
	// disagree on attribute field names or their order.
	ErrFieldMismatch = errors.New("zoocat: attribute field names differ")

	// ErrNoMonthField signals a Monthly constructed over a matrix whose
	// attribute table has no "month" field.
	ErrNoMonthField = errors.New("zoocat: month field required")
)
