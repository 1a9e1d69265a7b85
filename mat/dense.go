// SPDX-License-Identifier: MIT

// Package mat - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based submatrix extraction (Induced) for independent lifetimes.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Induced: O(r'*c').

package mat

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxSet    = "Set"     // method tag used in error wrappers
	ctxRow    = "Row"     // method tag used in error wrappers
	ctxCol    = "Col"     // method tag used in error wrappers
	ctxInduce = "Induced" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps a sentinel with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0; zero-sized shapes are legal.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// NaN entries are legal: NaN is the gap sentinel produced by index-union
// merges, so neither Set nor any constructor rejects it.
type Dense struct {
	r, c int       // row and column counts (>= 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate a zero-filled buffer (possibly zero-length).
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Zero dimensions yield a legal empty matrix (neutral merge accumulator).
//
// Inputs:
//   - rows: non-negative number of rows
//   - cols: non-negative number of columns
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrBadShape on negative dimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape; zero is legal, negative is not.
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense from a slice of equal-length rows.
// MAIN DESCRIPTION:
//   - Rectangularity-checked constructor copying the input row by row.
//
// Implementation:
//   - Stage 1: derive shape from len(rows) and len(rows[0]).
//   - Stage 2: verify each row length matches; else ErrBadShape.
//   - Stage 3: copy rows into the flat buffer in order.
//
// Behavior highlights:
//   - The result is independent of the input slices (deep copy).
//   - An empty input yields the legal 0×0 matrix.
//
// Errors:
//   - ErrBadShape when the rows are ragged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return &Dense{r: 0, c: 0, data: make([]float64, 0)}, nil
	}
	c := len(rows[0])

	d := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var i int
	for i = 0; i < r; i++ { // deterministic row order
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(rows[i]), c, ErrBadShape)
		}
		copy(d.data[i*c:(i+1)*c], rows[i]) // copy one full row
	}

	return d, nil
}

// FromVector wraps a value slice as a single-column (asColumn=true) or
// single-row matrix. The slice is copied; the result owns its storage.
// Complexity: O(n).
func FromVector(vs []float64, asColumn bool) *Dense {
	n := len(vs)
	buf := make([]float64, n)
	copy(buf, vs)
	if asColumn {
		return &Dense{r: n, c: 1, data: buf}
	}

	return &Dense{r: 1, c: n, data: buf}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether the matrix holds no values (either dimension zero).
// Complexity: O(1).
func (m *Dense) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Kept unexported so the public surface never panics; At/Set wrap the
// sentinel with method name and coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range access.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// NaN and ±Inf are accepted: NaN marks gaps in merged series.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns a copy of row i.
// MAIN DESCRIPTION:
//   - Safe row extraction with independent storage.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows).
//
// Complexity:
//   - Time O(c), Space O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c]) // one contiguous row

	return out, nil
}

// Col returns a copy of column j.
// MAIN DESCRIPTION:
//   - Safe column extraction with independent storage.
//
// Errors:
//   - ErrOutOfRange when j is outside [0, Cols).
//
// Complexity:
//   - Time O(r), Space O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ { // strided column walk
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy (new buffer, same shape).
// Mutations of the clone never affect the original.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy values

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy the rows/cols at the given index lists, in list order.
//
// Implementation:
//   - Stage 1: handle zero-sized result (legal empty Dense).
//   - Stage 2: allocate the result buffer.
//   - Stage 3: nested loops with direct offset math; bounds-check each index.
//
// Behavior highlights:
//   - Duplicates in the index lists are allowed (repeated rows/cols in the
//     result); callers that need set semantics deduplicate upstream.
//   - The result is independent of the base matrix.
//
// Inputs:
//   - rowsIdx: indices into [0..Rows).
//   - colsIdx: indices into [0..Cols).
//
// Returns:
//   - *Dense: independent copy of size len(rowsIdx)×len(colsIdx).
//
// Errors:
//   - ErrOutOfRange when any index is outside bounds.
//
// Determinism:
//   - Fixed nested i→j loops.
//
// Complexity:
//   - Time O(r'*c'), Space O(r'*c').
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp := len(rowsIdx) // result rows
	cp := len(colsIdx) // result cols
	// Zero-area: legal empty Dense.
	if rp == 0 || cp == 0 {
		return &Dense{r: rp, c: cp, data: make([]float64, 0)}, nil
	}

	res := &Dense{r: rp, c: cp, data: make([]float64, rp*cp)}

	// Deterministic double loop; direct offset math in both matrices.
	var i, j int
	var ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj] // source offset in base, destination in result
		}
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Behavior highlights:
//   - No allocations; deterministic i→j order.
//   - The visitor sees values directly from the flat buffer.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int // predeclare loop counters and base offset

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c            // flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) { // invoke callback; stop if it returns false
				return // early exit requested by caller
			}
		}
	}
}

// String renders a readable row-wise dump for diagnostics.
// Not for hot paths; intended for logs and debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
