// SPDX-License-Identifier: MIT

// Package series - sentinel errors.
//
// One sentinel per failure mode, matched via errors.Is; methods wrap them
// with method context using fmt.Errorf("...: %w", Err...).

package series

import "errors"

var (
	// ErrIndexOrder reports an Index whose keys are not strictly increasing.
	// Returned by Index.Validate for out-of-order keys; duplicate keys get
	// the more specific ErrDuplicateIndex.
	ErrIndexOrder = errors.New("series: index not strictly increasing")

	// ErrDuplicateIndex reports a repeated key where uniqueness is required:
	// duplicate observations handed to a constructor, or repeated row
	// positions in Frame.SubRows.
	ErrDuplicateIndex = errors.New("series: duplicate index key")

	// ErrLengthMismatch reports an index whose length disagrees with the
	// value rows it should label.
	ErrLengthMismatch = errors.New("series: index length does not match values")

	// ErrNilFrame reports a nil *Frame operand.
	ErrNilFrame = errors.New("series: nil frame")
)

// NOTE ON NAMING & PREFIXING:
//   - Every message carries the "series: " prefix so joined errors stay
//     attributable after wrapping.
//   - Sentinels are package-level vars; never compare messages, always
//     errors.Is.
