// SPDX-License-Identifier: MIT

// Package zoocat - Matrix: the tagged matrix itself.
//
// Purpose:
//   - Bind the three construction pieces together: a numeric core
//     (mat.Dense), an ordered time index (series.Index), and a column
//     attribute table (AttrTable), plus the index field name.
//   - Enforce the shape invariants at construction so every later operation
//     can assume them: len(index) == rows, attrTable.Len() == cols.
//   - Keep column identity structural: the core matrix never carries labels;
//     identity lives in the index and the attribute table alone.
//
// Concurrency: a Matrix is immutable after construction; concurrent readers
// need no locking. All constructors and accessors copy.

package zoocat

import (
	"fmt"
	"strings"

	"github.com/cran/zoocat/mat"
	"github.com/cran/zoocat/series"
)

// Matrix is an immutable tagged matrix: observation rows keyed by an integer
// index, columns described by attribute-table rows.
type Matrix struct {
	fr        *series.Frame // index + numeric core; rows sorted by key
	at        *AttrTable    // one table row per matrix column
	indexName string        // label of the time axis ("year", "index", ...)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New builds a tagged matrix from its three pieces.
// MAIN DESCRIPTION:
//   - The validating constructor: everything else in the package assumes the
//     invariants this function enforces.
//
// Implementation:
//   - Stage 1: nil guards (data, attribute table).
//   - Stage 2: shape invariants: len(idx) == data.Rows(),
//     at.Len() == data.Cols(); field names validated by NewAttrTable.
//   - Stage 3: build the ordered frame (rows sorted by key; duplicate keys
//     rejected) and deep-copy the attribute table.
//
// Behavior highlights:
//   - Observations may arrive in any row order; construction sorts by key.
//   - Any column label carried by the caller's bookkeeping is not consulted:
//     identity is structural (index + attributes only).
//   - Fails before copying: a failed New leaves no half-built state.
//
// Inputs:
//   - data: numeric core, one column per observed variable.
//   - idx: one key per data row (years in the canonical use).
//   - at: one attribute row per data column.
//   - opts: WithIndexName and friends.
//
// Returns:
//   - *Matrix: independent of every input.
//
// Errors:
//   - mat.ErrNilMatrix when data is nil.
//   - ErrMissingFieldNames when at is nil (a table cannot be empty-handed).
//   - ErrInvalidShape when index or attribute lengths disagree with data.
//   - series.ErrDuplicateIndex when a key repeats.
//
// Complexity:
//   - Time O(r log r + r*c), Space O(r*c).
func New(data *mat.Dense, idx series.Index, at *AttrTable, opts ...Option) (*Matrix, error) {
	if data == nil {
		return nil, fmt.Errorf("New: %w", mat.ErrNilMatrix)
	}
	if at == nil {
		return nil, fmt.Errorf("New: nil attribute table: %w", ErrMissingFieldNames)
	}
	if len(idx) != data.Rows() {
		return nil, fmt.Errorf("New: %d index keys vs %d rows: %w", len(idx), data.Rows(), ErrInvalidShape)
	}
	if at.Len() != data.Cols() {
		return nil, fmt.Errorf("New: %d attribute rows vs %d columns: %w", at.Len(), data.Cols(), ErrInvalidShape)
	}

	fr, err := series.NewFrame(idx, data) // sorts by key; rejects duplicates
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	o := gatherOptions(opts...)

	return &Matrix{fr: fr, at: at.clone(), indexName: o.indexName}, nil
}

// Empty returns the 0-key, 0-column, field-less tagged matrix: the neutral
// element of MergeCols and the base case every operation answers without
// error.
func Empty() *Matrix {
	return &Matrix{fr: series.EmptyFrame(), at: emptyAttrTable(), indexName: DefaultIndexName}
}

// newFromParts assembles a Matrix from already-valid parts without copying.
// Internal fast path for selection, filtering and reprocessing; takes
// ownership of fr and at.
func newFromParts(fr *series.Frame, at *AttrTable, indexName string) *Matrix {
	return &Matrix{fr: fr, at: at, indexName: indexName}
}

// Rows returns the number of index keys. Complexity: O(1).
func (z *Matrix) Rows() int { return z.fr.Rows() }

// Cols returns the number of value columns. Complexity: O(1).
func (z *Matrix) Cols() int { return z.fr.Cols() }

// IsEmpty reports whether the matrix holds no values (either axis empty).
// Complexity: O(1).
func (z *Matrix) IsEmpty() bool { return z.fr.Rows() == 0 || z.fr.Cols() == 0 }

// Index returns a copy of the time index. Complexity: O(r).
func (z *Matrix) Index() series.Index { return z.fr.Index() }

// IndexName returns the label of the time axis. Complexity: O(1).
func (z *Matrix) IndexName() string { return z.indexName }

// Cattr returns a deep copy of the column attribute table. Complexity: O(f*c).
func (z *Matrix) Cattr() *AttrTable { return z.at.clone() }

// Data returns a deep copy of the numeric core. Complexity: O(r*c).
func (z *Matrix) Data() *mat.Dense { return z.fr.Dense() }

// At returns the value at row position i, column j.
// Errors: mat.ErrOutOfRange via the underlying store.
// Complexity: O(1).
func (z *Matrix) At(i, j int) (float64, error) { return z.fr.At(i, j) }

// Labels returns the composite identity of every column: all attribute cells
// of its table row concatenated in field order. Not guaranteed unique.
// Complexity: O(f*c).
func (z *Matrix) Labels() []string { return CompositeLabels(z.at) }

// Clone returns a deep copy. Complexity: O(r*c + f*c).
func (z *Matrix) Clone() *Matrix {
	return newFromParts(z.fr.Clone(), z.at.clone(), z.indexName)
}

// Equal reports whether two tagged matrices agree on index, index name,
// attribute table and values. NaN gaps compare equal to NaN gaps.
// Complexity: O(r*c + f*c).
func (z *Matrix) Equal(o *Matrix) bool {
	if z == nil || o == nil {
		return z == nil && o == nil
	}

	return z.indexName == o.indexName && z.fr.Equal(o.fr) && z.at.Equal(o.at)
}

// String renders a header of composite labels followed by one line per key.
// Diagnostics only.
func (z *Matrix) String() string {
	var b strings.Builder
	b.WriteString(z.indexName)
	b.WriteString(": ")
	b.WriteString(strings.Join(z.Labels(), ", "))
	b.WriteString("\n")
	b.WriteString(z.fr.String())

	return b.String()
}

// MergeCols joins two tagged matrices column-wise over the union of their
// keys.
// MAIN DESCRIPTION:
//   - The cbind of the package and the engine of the month reprocessor:
//     a's columns first, then b's; keys missing from one operand produce NaN
//     gaps in that operand's columns.
//
// Implementation:
//   - Stage 1: nil guards; field-less operand (Empty()) is the identity.
//   - Stage 2: frames merge by index union (series.Merge).
//   - Stage 3: attribute tables concatenate row-wise; field names must
//     coincide in order.
//
// Behavior highlights:
//   - The identity law makes Empty() a correct fold seed: merging Empty()
//     with z yields a copy of z, index name included.
//   - Otherwise the result carries a's index name (first operand wins).
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//   - ErrFieldMismatch when the operands disagree on field names or order.
//
// Complexity:
//   - Time O(u*c), Space O(u*c) for u union keys and c total columns.
func MergeCols(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("MergeCols: %w", ErrNilMatrix)
	}
	// A field-less operand is Empty(): adopt the other operand wholesale.
	if a.at.NumFields() == 0 {
		return b.Clone(), nil
	}
	if b.at.NumFields() == 0 {
		return a.Clone(), nil
	}

	at, err := a.at.concat(b.at) // validates field names before any copying
	if err != nil {
		return nil, fmt.Errorf("MergeCols: %w", err)
	}
	fr, err := series.Merge(a.fr, b.fr)
	if err != nil {
		return nil, fmt.Errorf("MergeCols: %w", err)
	}

	return newFromParts(fr, at, a.indexName), nil
}
