// SPDX-License-Identifier: MIT

// Package zoocat - Monthly: the month-attributed specialization and its
// reprocessor.
//
// A Monthly is a tagged matrix whose attribute table carries a "month"
// field. Reprocessing reinterprets requested month offsets as months of
// adjacent years: offset 13 is January of the following year, offset 0 is
// December of the preceding one. Columns are pulled from the matching
// canonical months, their index keys shifted into the right relative year,
// and everything merged back over the union of keys.

package zoocat

import (
	"fmt"
	"sort"

	"github.com/cran/zoocat/mat"
	"github.com/cran/zoocat/series"
)

// MonthField is the attribute field the monthly specialization requires.
const MonthField = "month"

// monthsPerYear fixes the calendar period of the offset arithmetic.
const monthsPerYear = 12

// Monthly is a tagged matrix guaranteed to carry a month field. It embeds
// the full Matrix surface; Select, Apply and the plain filters work
// unchanged.
type Monthly struct {
	*Matrix
}

// NewMonthly builds a month-attributed tagged matrix directly.
// Same contract as New, plus the month-field requirement of AsMonthly.
func NewMonthly(data *mat.Dense, idx series.Index, at *AttrTable, opts ...Option) (*Monthly, error) {
	z, err := New(data, idx, at, opts...)
	if err != nil {
		return nil, err
	}

	return AsMonthly(z)
}

// AsMonthly wraps an existing tagged matrix as Monthly.
// Only the presence of the month field is checked here; the 1..12 range is
// enforced at reprocess time, so a matrix may carry exotic month values as
// long as it never reprocesses them.
//
// Errors:
//   - ErrNilMatrix when z is nil.
//   - ErrNoMonthField when the attribute table lacks the month field.
func AsMonthly(z *Matrix) (*Monthly, error) {
	if z == nil {
		return nil, fmt.Errorf("AsMonthly: %w", ErrNilMatrix)
	}
	if !z.at.HasField(MonthField) {
		return nil, fmt.Errorf("AsMonthly: %w", ErrNoMonthField)
	}

	return &Monthly{Matrix: z}, nil
}

// FilterCols keeps the columns whose attribute row satisfies pred, then,
// when offsets are given, reprocesses the survivors through Reprocess.
// With no offsets the result is the plain filtered Monthly.
//
// Errors: the FilterCols set, plus the Reprocess set when offsets are given.
func (m *Monthly) FilterCols(pred func(Row) bool, offsets ...int) (*Monthly, error) {
	base, err := m.Matrix.FilterCols(pred)
	if err != nil {
		return nil, err
	}

	fm := &Monthly{Matrix: base} // filtering keeps every field, month included
	if len(offsets) == 0 {
		return fm, nil
	}

	return fm.Reprocess(offsets...)
}

// Reprocess builds a new Monthly from the requested month offsets.
// MAIN DESCRIPTION:
//   - Reinterpret offsets as (canonical month, relative year) pairs, pull
//     the matching columns shift by shift, move their keys into the right
//     year, and merge everything over the union of keys.
//
// Implementation:
//   - Stage 1: validate every month attribute is an integer in 1..12.
//   - Stage 2: normalize each offset m: trueMonth = ((m-1) mod 12) + 1,
//     relYear = floor((m-1) / 12), with floored division so negative
//     offsets land in earlier years.
//   - Stage 3: group offsets by relYear; walk the shifts in ascending order.
//     Per shift y: keep the columns whose month is requested at y (none →
//     the shift contributes nothing), shift their keys by -y, pass the month
//     attribute through the same normalization (identity on canonical
//     months), and MergeCols into the accumulator. Keys present in one
//     shift but not another become NaN gaps.
//   - Stage 4: reorder the merged columns ascending by month, then by the
//     remaining attribute fields in field order (stable), and carry the
//     original index field name.
//
// Behavior highlights:
//   - Offsets 1..12 reproduce the input up to column order.
//   - Offset 13 selects the month-1 columns, shifts them back one year, and
//     leaves their month attribute at 1; requesting {1, 13} therefore yields
//     two columns with identical attributes (label collisions are legal;
//     string selection takes the first).
//   - Repeated identical offsets collapse to one request.
//   - Zero offsets (or offsets matching nothing) yield a keyless, 0-column
//     Monthly that still carries the attribute schema.
//
// Errors:
//   - ErrInvalidMonthRange when a month attribute is non-integral or
//     outside 1..12.
//
// Determinism:
//   - Shifts ascend, columns keep table order within a shift, and the final
//     reorder is a stable sort; identical inputs give identical output.
//
// Complexity:
//   - Time O(s*u*c) over s shifts, u union keys, c kept columns.
func (m *Monthly) Reprocess(offsets ...int) (*Monthly, error) {
	months, err := m.monthValues()
	if err != nil {
		return nil, fmt.Errorf("Reprocess: %w", err)
	}

	// relYear -> set of requested canonical months.
	shifts := make(map[int]map[int]struct{})
	var trueMonth, relYear int
	var i int
	for i = 0; i < len(offsets); i++ {
		trueMonth, relYear = normalizeOffset(offsets[i])
		if shifts[relYear] == nil {
			shifts[relYear] = make(map[int]struct{})
		}
		shifts[relYear][trueMonth] = struct{}{}
	}
	years := make([]int, 0, len(shifts))
	for relYear = range shifts {
		years = append(years, relYear)
	}
	sort.Ints(years) // deterministic shift order

	// Schema-empty accumulator: original fields, no columns, no keys. Keeps
	// the month field in the schema even when nothing matches.
	acc := newFromParts(series.EmptyFrame(), m.at.subset(nil), m.indexName)

	var y int
	var keep []int
	for _, y = range years {
		keep = keep[:0]
		for i = 0; i < len(months); i++ { // table order within a shift
			if _, ok := shifts[y][months[i]]; ok {
				keep = append(keep, i)
			}
		}
		if len(keep) == 0 {
			continue // this shift contributes nothing
		}

		sub, err := m.fr.SubCols(keep)
		if err != nil {
			return nil, fmt.Errorf("Reprocess: %w", err)
		}
		canon := make([]int, len(keep))
		for i = 0; i < len(keep); i++ { // identity on canonical months
			canon[i], _ = normalizeOffset(months[keep[i]])
		}
		contribution := newFromParts(
			sub.Shift(int64(-y)), // keys move into the right year
			m.at.subset(keep).withIntField(MonthField, canon),
			m.indexName,
		)

		if acc, err = MergeCols(acc, contribution); err != nil {
			return nil, fmt.Errorf("Reprocess: %w", err)
		}
	}

	return &Monthly{Matrix: acc.reorderByMonth()}, nil
}

// monthValues reads the month field as integers, enforcing 1..12.
func (m *Monthly) monthValues() ([]int, error) {
	cells, _ := m.at.Values(MonthField) // presence guaranteed by AsMonthly
	out := make([]int, len(cells))
	var i, v int
	var ok bool
	for i = 0; i < len(cells); i++ {
		if v, ok = cells[i].Int(); !ok {
			return nil, fmt.Errorf("column %d month %s: %w", i, cells[i], ErrInvalidMonthRange)
		}
		if v < 1 || v > monthsPerYear {
			return nil, fmt.Errorf("column %d month %d: %w", i, v, ErrInvalidMonthRange)
		}
		out[i] = v
	}

	return out, nil
}

// normalizeOffset maps a signed month offset onto a canonical month and a
// relative-year shift: 13 -> (1, 1), 0 -> (12, -1), 7 -> (7, 0).
func normalizeOffset(m int) (trueMonth, relYear int) {
	relYear = floorDiv(m-1, monthsPerYear)

	return (m - 1) - relYear*monthsPerYear + 1, relYear
}

// floorDiv divides rounding toward negative infinity (Go's / truncates
// toward zero, which is wrong for negative offsets).
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}

// reorderByMonth returns a copy with columns sorted ascending by the month
// field, then by the remaining fields in field order; stable, so merge
// order breaks the remaining ties.
func (z *Matrix) reorderByMonth() *Matrix {
	perm := iotaPositions(z.Cols())
	sort.SliceStable(perm, func(a, b int) bool {
		return z.at.lessRows(perm[a], perm[b], MonthField)
	})

	sub, err := z.fr.SubCols(perm)
	if err != nil { // positions come from iota: cannot be out of range
		return z.Clone()
	}

	return newFromParts(sub, z.at.subset(perm), z.indexName)
}

// lessRows orders two table rows by the named field first, then by the
// remaining fields in table order.
func (at *AttrTable) lessRows(a, b int, first string) bool {
	pos, ok := at.fieldIndex(first)
	if ok {
		if !at.fields[pos].Values[a].Equal(at.fields[pos].Values[b]) {
			return at.fields[pos].Values[a].Less(at.fields[pos].Values[b])
		}
	}
	var i int
	for i = 0; i < len(at.fields); i++ {
		if i == pos && ok {
			continue
		}
		if !at.fields[i].Values[a].Equal(at.fields[i].Values[b]) {
			return at.fields[i].Values[a].Less(at.fields[i].Values[b])
		}
	}

	return false
}
