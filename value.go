// SPDX-License-Identifier: MIT

// Package zoocat - Value: one typed attribute cell.
//
// Attribute tables mix strings, integers and floats (variable names, months,
// thresholds), so the cell type is a small tagged scalar instead of any or
// reflection. Three kinds cover the zoocat attribute universe.

package zoocat

import (
	"math"
	"strconv"
)

// valueKind discriminates the Value payload.
type valueKind uint8

const (
	kindString valueKind = iota // payload in str
	kindInt                     // payload in num, integral
	kindFloat                   // payload in num
)

// Value is an immutable tagged scalar: the cell type of attribute tables.
// The zero Value is the empty string.
type Value struct {
	kind valueKind
	str  string
	num  float64 // integer payloads are exact for |v| < 2^53
}

// StringValue wraps a string attribute.
func StringValue(s string) Value { return Value{kind: kindString, str: s} }

// IntValue wraps an integer attribute (months, counts, years).
func IntValue(v int) Value { return Value{kind: kindInt, num: float64(v)} }

// FloatValue wraps a floating-point attribute.
func FloatValue(v float64) Value { return Value{kind: kindFloat, num: v} }

// IsNumeric reports whether the value holds an int or float payload.
func (v Value) IsNumeric() bool { return v.kind != kindString }

// Str returns the string payload; ok is false for numeric kinds.
func (v Value) Str() (string, bool) {
	if v.kind != kindString {
		return "", false
	}

	return v.str, true
}

// Int returns the value as an int. Integer payloads convert exactly; float
// payloads convert when integral (so a month stored as 3.0 still reads as 3);
// strings never convert.
func (v Value) Int() (int, bool) {
	switch v.kind {
	case kindInt:
		return int(v.num), true
	case kindFloat:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) || math.Trunc(v.num) != v.num {
			return 0, false
		}

		return int(v.num), true
	default:
		return 0, false
	}
}

// Float returns the numeric payload; ok is false for strings.
func (v Value) Float() (float64, bool) {
	if v.kind == kindString {
		return 0, false
	}

	return v.num, true
}

// String renders the cell the way composite labels need it: strings verbatim,
// integers without a decimal point, floats in shortest form.
func (v Value) String() string {
	switch v.kind {
	case kindString:
		return v.str
	case kindInt:
		return strconv.FormatInt(int64(v.num), 10)
	default:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
}

// Equal reports payload equality. The two numeric kinds compare by value
// (IntValue(2) equals FloatValue(2)); numeric never equals string; NaN is
// unequal to everything including itself.
func (v Value) Equal(o Value) bool {
	if v.kind == kindString || o.kind == kindString {
		return v.kind == o.kind && v.str == o.str
	}

	return v.num == o.num
}

// Less orders values for deterministic column reordering: numeric sorts
// before string, numerics compare by value, strings lexicographically.
// NaN sorts before every non-NaN numeric.
func (v Value) Less(o Value) bool {
	vn, on := v.kind != kindString, o.kind != kindString
	switch {
	case vn && !on:
		return true // numeric before string
	case !vn && on:
		return false
	case !vn && !on:
		return v.str < o.str
	}
	// Both numeric; push NaN to the front so sorting stays total.
	if math.IsNaN(v.num) {
		return !math.IsNaN(o.num)
	}
	if math.IsNaN(o.num) {
		return false
	}

	return v.num < o.num
}
