// SPDX-License-Identifier: MIT

// Package zoocat - Indexer: row/column selection with shape collapsing.
//
// Selection is the matrix subscript of the package: pick rows by position,
// columns by position or by composite label, and optionally collapse
// degenerate shapes (one row, one column, one cell) into simpler values the
// way drop=TRUE does in array subscripting.

package zoocat

import (
	"fmt"

	"github.com/cran/zoocat/series"
)

// RowSel selects observation rows. Build with AllRows or RowsAt.
type RowSel struct {
	all bool
	pos []int
}

// AllRows selects every observation row.
func AllRows() RowSel { return RowSel{all: true} }

// RowsAt selects rows by position. Positions are normalized ascending and
// must be unique: row order is an invariant of the tagged matrix, so a row
// selection is a sub-sequence, never a permutation.
func RowsAt(pos ...int) RowSel {
	cp := make([]int, len(pos))
	copy(cp, pos)

	return RowSel{pos: cp}
}

// ColSel selects value columns. Build with AllCols, ColsAt or ColsNamed.
type ColSel struct {
	all    bool
	byName bool
	pos    []int
	labels []string
}

// AllCols selects every column.
func AllCols() ColSel { return ColSel{all: true} }

// ColsAt selects columns by position, in caller order; repeats are legal
// (the column appears twice, attributes included).
func ColsAt(pos ...int) ColSel {
	cp := make([]int, len(pos))
	copy(cp, pos)

	return ColSel{pos: cp}
}

// ColsNamed selects columns by composite label, in caller order. Every label
// must match at least one column of the current attribute table; the first
// match wins when identities collide.
func ColsNamed(labels ...string) ColSel {
	cp := make([]string, len(labels))
	copy(cp, labels)

	return ColSel{byName: true, labels: cp}
}

// SelKind discriminates the Selection payload.
type SelKind uint8

const (
	SelMatrix SelKind = iota // full tagged matrix
	SelVector                // one row collapsed: labeled vector
	SelSeries                // one column collapsed: time series
	SelScalar                // one cell collapsed: plain float64
)

// Vector is a labeled value row: the collapse of a single-row selection.
// Labels are the composite identities of the surviving columns.
type Vector struct {
	labels []string
	values []float64
}

// Len returns the number of entries.
func (v Vector) Len() int { return len(v.values) }

// Labels returns a copy of the label row.
func (v Vector) Labels() []string {
	out := make([]string, len(v.labels))
	copy(out, v.labels)

	return out
}

// Values returns a copy of the value row.
func (v Vector) Values() []float64 {
	out := make([]float64, len(v.values))
	copy(out, v.values)

	return out
}

// Selection is the tagged union a Select call produces. Exactly one payload
// is live; the off-kind accessors return zero values.
type Selection struct {
	kind   SelKind
	matrix *Matrix
	vector Vector
	ser    series.Series
	scalar float64
}

// Kind reports which payload is live.
func (s *Selection) Kind() SelKind { return s.kind }

// Matrix returns the tagged-matrix payload, or nil off-kind.
func (s *Selection) Matrix() *Matrix { return s.matrix }

// Vector returns the labeled-vector payload, or the zero Vector off-kind.
func (s *Selection) Vector() Vector { return s.vector }

// Series returns the time-series payload, or the zero Series off-kind.
func (s *Selection) Series() series.Series { return s.ser }

// Scalar returns the single-cell payload, or 0 off-kind.
func (s *Selection) Scalar() float64 { return s.scalar }

// Select subsets the tagged matrix by rows and columns.
// MAIN DESCRIPTION:
//   - The one indexing entry point: resolves both selectors, subsets frame
//     and attribute table together, then collapses degenerate shapes unless
//     WithNoDrop is given.
//
// Implementation:
//   - Stage 1: empty receiver answers Empty() immediately, whatever the
//     selectors say.
//   - Stage 2: resolve selectors to positions; string selectors resolve all
//     labels first, so a late miss cannot leave a partial result.
//   - Stage 3: subset rows (normalized ascending, unique), then columns
//     (caller order), then the attribute table with the same column list.
//   - Stage 4: collapse by shape when drop is enabled: 1x1 to scalar, one
//     row to labeled vector, one column to series; everything else stays a
//     tagged matrix with the subsetted table and the same index name.
//
// Behavior highlights:
//   - Collapsing loses structure: the vector keeps only composite
//     labels, the series keeps only the index. WithNoDrop keeps everything.
//   - A selection that empties an axis stays a matrix (no collapse rule
//     fires for 0-length axes except the single-column series).
//
// Errors:
//   - series.ErrDuplicateIndex for repeated row positions.
//   - mat.ErrOutOfRange for out-of-bounds positions on either axis.
//   - ErrColumnNotFound when a label matches no composite identity.
//
// Complexity:
//   - Time O(r'*c' + f*c), Space O(r'*c').
func (z *Matrix) Select(rows RowSel, cols ColSel, opts ...SelectOption) (*Selection, error) {
	if z.IsEmpty() && z.at.NumFields() == 0 {
		return &Selection{kind: SelMatrix, matrix: Empty()}, nil
	}

	o := gatherSelectOptions(opts...)

	rowPos := rows.pos
	if rows.all {
		rowPos = iotaPositions(z.Rows())
	}
	colPos, err := z.resolveCols(cols)
	if err != nil {
		return nil, fmt.Errorf("Select: %w", err)
	}

	sub, err := z.fr.SubRows(rowPos) // normalizes ascending, rejects repeats
	if err != nil {
		return nil, fmt.Errorf("Select: %w", err)
	}
	sub, err = sub.SubCols(colPos) // caller order, repeats legal
	if err != nil {
		return nil, fmt.Errorf("Select: %w", err)
	}
	at := z.at.subset(colPos) // positions validated by the frame above

	if !o.drop {
		return &Selection{kind: SelMatrix, matrix: newFromParts(sub, at, z.indexName)}, nil
	}

	return collapse(sub, at, z.indexName), nil
}

// resolveCols turns a ColSel into concrete column positions.
func (z *Matrix) resolveCols(cols ColSel) ([]int, error) {
	if cols.all {
		return iotaPositions(z.Cols()), nil
	}
	if !cols.byName {
		return cols.pos, nil
	}

	labels := z.Labels() // composite identities of the current table
	out := make([]int, len(cols.labels))
	var i, j int
	var found bool
	for i = 0; i < len(cols.labels); i++ {
		found = false
		for j = 0; j < len(labels); j++ { // first match wins on collisions
			if labels[j] == cols.labels[i] {
				out[i] = j
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("label %q: %w", cols.labels[i], ErrColumnNotFound)
		}
	}

	return out, nil
}

// collapse applies the drop rules to a subsetted frame + table.
func collapse(fr *series.Frame, at *AttrTable, indexName string) *Selection {
	r, c := fr.Rows(), fr.Cols()
	switch {
	case r == 1 && c == 1:
		v, _ := fr.At(0, 0) // bounds hold by construction

		return &Selection{kind: SelScalar, scalar: v}
	case r == 1:
		row, _ := fr.Dense().Row(0)

		return &Selection{kind: SelVector, vector: Vector{labels: CompositeLabels(at), values: row}}
	case c == 1:
		s, _ := fr.Col(0)

		return &Selection{kind: SelSeries, ser: s}
	default:
		return &Selection{kind: SelMatrix, matrix: newFromParts(fr, at, indexName)}
	}
}

// iotaPositions returns [0..n).
func iotaPositions(n int) []int {
	out := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = i
	}

	return out
}
