// Package zoocat is your in-memory toolkit for tagged time-series
// matrices — numeric matrices whose rows follow an ordered time index and
// whose columns carry an attribute table describing what each column is.
//
// 🚀 What is zoocat?
//
//	A small, deterministic library that brings together:
//		• Tagged matrices: data + time index + column attribute table + index name
//		• Selection: subset by position or composite label, collapse degenerate shapes
//		• Application: run any numeric function and bind its result back by axis
//		• Filtering: keep columns whose attribute rows satisfy a predicate
//		• Monthly reprocessing: reinterpret month offsets across year boundaries
//		• Long-form bridge: cast records into a matrix and melt one back
//
// ✨ Why choose zoocat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sorted unique index, value-copy accessors, sentinel errors
//   - Pure Go – no cgo, NaN as the one gap marker throughout
//   - Extensible – Apply takes any function over the numeric core
//
// Under the hood, everything is organized under three subpackages:
//
//	mat/    — dense row-major float64 matrices: the numeric core
//	series/ — ordered int64 index, series, frames, alignment & merging
//	stats/  — column/row reducers and correlation over the numeric core
//
// Quick ASCII example:
//
//	  year:  xxx2  xxx3  yyy5
//	  1990   [ 1.0   2.0   3.0 ]
//	  1991   [ 4.0   5.0   6.0 ]
//
//	three columns tagged by name and month; "xxx2" is the composite label
//	of the column whose name is "xxx" and month is 2.
//
// Dive into examples/ for full workflows: seasonal reprocessing and
// long-form casting.
//
//	go get github.com/cran/zoocat
package zoocat
