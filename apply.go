// SPDX-License-Identifier: MIT

// Package zoocat - Functional Applicator: run a function over the numeric
// core and re-bind its result.
//
// The matrix never defines numeric transformations itself; callers pass one
// in, and a declarative bind spec says which axes of the original tagged
// matrix the result still follows: the index, the attribute table, both, or
// neither. The applicator checks the claim (shape validation) and assembles
// the right container.

package zoocat

import (
	"fmt"

	"github.com/cran/zoocat/mat"
	"github.com/cran/zoocat/series"
)

// ApplyFunc transforms the numeric core. It is invoked exactly once, with a
// deep copy of the matrix (mutations cannot reach the receiver) and the
// extra arguments passed to Apply. It may return, in vector position,
// []float64, float64, series.Series or *series.Series; in matrix position,
// *mat.Dense, [][]float64 or *series.Frame (index dropped). Anything else
// is ErrBadResultType.
type ApplyFunc func(d *mat.Dense, extra ...any) (any, error)

// BindTarget names one axis slot of a bind spec.
type BindTarget uint8

const (
	BindNone  BindTarget = iota // slot absent
	BindIndex                   // result follows the time index
	BindCattr                   // result follows the attribute table
)

// Bind is a length-1 or length-2 sequence of axis slots. Slot order carries
// orientation: the first slot is the result's row axis, the second its
// column axis. Bind{BindNone, BindCattr} therefore means "result columns
// follow the attribute table" and transposes matrix results before binding.
type Bind []BindTarget

// AppliedKind discriminates the Applied payload.
type AppliedKind uint8

const (
	AppliedRawVector AppliedKind = iota // pass-through vector
	AppliedRawMatrix                    // pass-through matrix
	AppliedMatrix                       // both axes bound: full tagged matrix
	AppliedTable                        // cattr bound: table with appended v1..vk
	AppliedSeries                       // index bound, vector result
	AppliedFrame                        // index bound, matrix result
)

// Applied is the tagged union an Apply call produces. Exactly one payload is
// live; the off-kind accessors return zero values.
type Applied struct {
	kind   AppliedKind
	rawVec []float64
	rawMat *mat.Dense
	matrix *Matrix
	table  *AttrTable
	ser    series.Series
	frame  *series.Frame
}

// Kind reports which payload is live.
func (a *Applied) Kind() AppliedKind { return a.kind }

// RawVector returns the unbound vector payload, or nil off-kind.
func (a *Applied) RawVector() []float64 { return a.rawVec }

// RawMatrix returns the unbound matrix payload, or nil off-kind.
func (a *Applied) RawMatrix() *mat.Dense { return a.rawMat }

// Matrix returns the rebuilt tagged matrix, or nil off-kind.
func (a *Applied) Matrix() *Matrix { return a.matrix }

// Table returns the attribute table with appended result fields, or nil
// off-kind.
func (a *Applied) Table() *AttrTable { return a.table }

// Series returns the index-bound series payload, or the zero Series off-kind.
func (a *Applied) Series() series.Series { return a.ser }

// Frame returns the index-bound frame payload, or nil off-kind.
func (a *Applied) Frame() *series.Frame { return a.frame }

// Internal panic message (programmer error, same contract as option
// constructors).
const panicNilApplyFunc = "zoocat: Apply: nil function"

// Apply invokes fn once over a copy of the numeric core and binds the result
// per the bind spec.
// MAIN DESCRIPTION:
//   - The one extension point of the package: every numeric transformation
//     (means, anomalies, EOF projections) enters through here.
//
// Implementation:
//   - Stage 1: empty receiver answers Empty() without invoking fn (the
//     empty-instance law outranks everything).
//   - Stage 2: validate the bind spec: length 1 or 2, known targets, no
//     repeated axis.
//   - Stage 3: invoke fn with a deep copy and the extra arguments; its error
//     propagates unwrapped inside an "Apply:" context.
//   - Stage 4: coerce the result to vector or matrix form (the only two
//     shapes with binding semantics).
//   - Stage 5: dispatch on the bind spec: pass-through, both-axes rebuild
//     (orientation from slot order), or single-axis attach with the
//     positional transpose rule.
//
// Behavior highlights:
//   - Both-axes binds demand exact shapes: R×C for {index,cattr}, C×R for
//     {cattr,index}; vector results have no two-axis shape and always fail
//     those specs.
//   - Single cattr: k result columns append as float fields v1..vk to a copy
//     of the attribute table (row identity reset: the result is a table, not
//     a tagged matrix).
//   - Single index: vector results become a series, matrix results a frame,
//     both keyed by the original index.
//
// Errors:
//   - ErrInvalidBindSpec, ErrBadResultType, ErrShapeMismatch as above;
//     fn's own error is passed through for errors.Is/As inspection.
//
// Complexity:
//   - One fn invocation plus O(r*c) copying.
func (z *Matrix) Apply(fn ApplyFunc, bind Bind, extra ...any) (*Applied, error) {
	if fn == nil {
		panic(panicNilApplyFunc)
	}
	if z.IsEmpty() && z.at.NumFields() == 0 {
		return &Applied{kind: AppliedMatrix, matrix: Empty()}, nil
	}
	if err := validateBind(bind); err != nil {
		return nil, fmt.Errorf("Apply: %w", err)
	}

	raw, err := fn(z.Data(), extra...) // deep copy in; fn cannot corrupt z
	if err != nil {
		return nil, fmt.Errorf("Apply: %w", err)
	}

	vec, m, err := coerceResult(raw)
	if err != nil {
		return nil, fmt.Errorf("Apply: %w", err)
	}

	switch {
	case allNone(bind):
		return passThrough(vec, m), nil
	case len(bind) == 2 && bind[0] != BindNone && bind[1] != BindNone:
		return z.bindBoth(bind, vec, m)
	default:
		return z.bindSingle(bind, vec, m)
	}
}

// validateBind enforces the bind grammar: length 1 or 2, known targets, at
// most one slot per axis.
func validateBind(bind Bind) error {
	if len(bind) < 1 || len(bind) > 2 {
		return fmt.Errorf("bind length %d: %w", len(bind), ErrInvalidBindSpec)
	}
	var nIdx, nCat int
	var i int
	for i = 0; i < len(bind); i++ {
		switch bind[i] {
		case BindNone:
		case BindIndex:
			nIdx++
		case BindCattr:
			nCat++
		default:
			return fmt.Errorf("bind slot %d holds unknown target %d: %w", i, bind[i], ErrInvalidBindSpec)
		}
	}
	if nIdx > 1 || nCat > 1 {
		return fmt.Errorf("repeated bind target: %w", ErrInvalidBindSpec)
	}

	return nil
}

// allNone reports a fully absent spec (pass-through).
func allNone(bind Bind) bool {
	var i int
	for i = 0; i < len(bind); i++ {
		if bind[i] != BindNone {
			return false
		}
	}

	return true
}

// coerceResult narrows an arbitrary fn result to vector or matrix form.
// Exactly one of vec/m is non-nil on success. Results are copied: fn may
// keep references to what it returned.
func coerceResult(raw any) (vec []float64, m *mat.Dense, err error) {
	switch r := raw.(type) {
	case []float64:
		vec = make([]float64, len(r))
		copy(vec, r)
	case float64: // length-1 vector
		vec = []float64{r}
	case series.Series:
		vec = r.Values()
	case *series.Series:
		if r == nil {
			return nil, nil, fmt.Errorf("nil *series.Series: %w", ErrBadResultType)
		}
		vec = r.Values()
	case *mat.Dense:
		if r == nil {
			return nil, nil, fmt.Errorf("nil *mat.Dense: %w", ErrBadResultType)
		}
		m = r.Clone()
	case [][]float64:
		if m, err = mat.FromRows(r); err != nil {
			return nil, nil, fmt.Errorf("ragged [][]float64: %w", ErrBadResultType)
		}
	case *series.Frame: // table result: coerced to matrix, index dropped
		if r == nil {
			return nil, nil, fmt.Errorf("nil *series.Frame: %w", ErrBadResultType)
		}
		m = r.Dense()
	default:
		return nil, nil, fmt.Errorf("result type %T: %w", raw, ErrBadResultType)
	}

	return vec, m, nil
}

// passThrough wraps an unbound result.
func passThrough(vec []float64, m *mat.Dense) *Applied {
	if vec != nil {
		return &Applied{kind: AppliedRawVector, rawVec: vec}
	}

	return &Applied{kind: AppliedRawMatrix, rawMat: m}
}

// bindBoth rebuilds a full tagged matrix from a result claiming both axes.
// Slot order fixes the orientation the result must arrive in.
func (z *Matrix) bindBoth(bind Bind, vec []float64, m *mat.Dense) (*Applied, error) {
	if vec != nil { // a vector has no two-axis shape
		return nil, fmt.Errorf("Apply: vector result under a two-axis bind: %w", ErrShapeMismatch)
	}

	r, c := z.Rows(), z.Cols()
	if bind[0] == BindCattr { // {cattr,index}: result arrives transposed
		if m.Rows() != c || m.Cols() != r {
			return nil, fmt.Errorf("Apply: result %dx%d, want %dx%d: %w", m.Rows(), m.Cols(), c, r, ErrShapeMismatch)
		}
		var err error
		if m, err = mat.Transpose(m); err != nil {
			return nil, fmt.Errorf("Apply: %w", err)
		}
	} else if m.Rows() != r || m.Cols() != c { // {index,cattr}: input orientation
		return nil, fmt.Errorf("Apply: result %dx%d, want %dx%d: %w", m.Rows(), m.Cols(), r, c, ErrShapeMismatch)
	}

	fr, err := series.NewFrame(z.Index(), m)
	if err != nil {
		return nil, fmt.Errorf("Apply: %w", err)
	}

	return &Applied{kind: AppliedMatrix, matrix: newFromParts(fr, z.at.clone(), z.indexName)}, nil
}

// bindSingle attaches a result to one axis. The positional transpose rule:
// a present slot in second position (Bind{BindNone, X}) claims the result's
// column axis, so matrix results are transposed before binding. Vectors
// carry no orientation and skip the rule.
func (z *Matrix) bindSingle(bind Bind, vec []float64, m *mat.Dense) (*Applied, error) {
	target := bind[0]
	transposed := false
	if len(bind) == 2 && bind[0] == BindNone {
		target = bind[1]
		transposed = true
	}

	if m != nil && transposed {
		var err error
		if m, err = mat.Transpose(m); err != nil {
			return nil, fmt.Errorf("Apply: %w", err)
		}
	}

	if target == BindCattr {
		return z.attachCattr(vec, m)
	}

	return z.attachIndex(vec, m)
}

// attachCattr appends the result to the attribute axis: one float field per
// result column, named v1..vk.
func (z *Matrix) attachCattr(vec []float64, m *mat.Dense) (*Applied, error) {
	c := z.Cols()

	var cols [][]float64
	if vec != nil {
		if len(vec) != c {
			return nil, fmt.Errorf("Apply: %d values for %d columns: %w", len(vec), c, ErrShapeMismatch)
		}
		cols = [][]float64{vec}
	} else {
		if m.Rows() != c {
			return nil, fmt.Errorf("Apply: %d result rows for %d columns: %w", m.Rows(), c, ErrShapeMismatch)
		}
		cols = make([][]float64, m.Cols())
		var j int
		var err error
		for j = 0; j < m.Cols(); j++ {
			if cols[j], err = m.Col(j); err != nil {
				return nil, fmt.Errorf("Apply: %w", err)
			}
		}
	}

	at, err := z.at.appendFloatFields(cols)
	if err != nil {
		return nil, fmt.Errorf("Apply: %w", err)
	}

	return &Applied{kind: AppliedTable, table: at}, nil
}

// attachIndex keys the result by the original time index: vector results
// become a series, matrix results a frame.
func (z *Matrix) attachIndex(vec []float64, m *mat.Dense) (*Applied, error) {
	r := z.Rows()

	if vec != nil {
		if len(vec) != r {
			return nil, fmt.Errorf("Apply: %d values for %d keys: %w", len(vec), r, ErrShapeMismatch)
		}
		s, err := series.NewSeries(z.Index(), vec)
		if err != nil {
			return nil, fmt.Errorf("Apply: %w", err)
		}

		return &Applied{kind: AppliedSeries, ser: s}, nil
	}

	if m.Rows() != r {
		return nil, fmt.Errorf("Apply: %d result rows for %d keys: %w", m.Rows(), r, ErrShapeMismatch)
	}
	fr, err := series.NewFrame(z.Index(), m)
	if err != nil {
		return nil, fmt.Errorf("Apply: %w", err)
	}

	return &Applied{kind: AppliedFrame, frame: fr}, nil
}
