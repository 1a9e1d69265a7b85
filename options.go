// SPDX-License-Identifier: MIT

// Package zoocat: functional configuration. This file defines:
//   - Option / Options for construction (index field name),
//   - SelectOption / SelectOptions for the indexing family (drop collapsing),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gather* helpers (internal) that resolve setters against defaults.
//
// Two separate option types keep the two call families honest: a selection
// flag cannot leak into construction and vice versa.

package zoocat

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultIndexName labels the time axis when construction passes no
	// WithIndexName. "index" mirrors the neutral name melted records use.
	DefaultIndexName = "index"

	// DefaultDrop controls shape collapsing on selection: a single surviving
	// row becomes a labeled vector, a single column a series, a single cell a
	// scalar. WithNoDrop keeps the full tagged-matrix shape instead.
	DefaultDrop = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicIndexNameEmpty = "zoocat: WithIndexName: name must be non-empty"

// ---------- Construction options ----------

// Option mutates construction options. Safe to apply repeatedly; last writer
// wins. Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores effective construction configuration. Unexported fields;
// public entry points accept ...Option and resolve via gatherOptions.
type Options struct {
	indexName string // label of the time axis; DefaultIndexName
}

// WithIndexName names the index field ("year" in the canonical climate use).
// Implementation:
//   - Stage 1: validate name is non-empty (panic otherwise).
//   - Stage 2: return a setter writing the name.
//
// Behavior highlights:
//   - The name is carried verbatim through selection, filtering and
//     reprocessing; only a new construction changes it.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithIndexName(name string) Option {
	if name == "" {
		panic(panicIndexNameEmpty)
	}

	return func(o *Options) { o.indexName = name }
}

// gatherOptions resolves construction setters against documented defaults.
// Last-writer-wins; pure function.
func gatherOptions(opts ...Option) Options {
	o := Options{indexName: DefaultIndexName}
	for _, set := range opts {
		set(&o) // apply in order
	}

	return o
}

// ---------- Selection options ----------

// SelectOption mutates selection options (the indexing call family).
type SelectOption func(*SelectOptions)

// SelectOptions stores effective selection configuration.
type SelectOptions struct {
	drop bool // collapse degenerate shapes; DefaultDrop
}

// WithDrop enables shape collapsing (the default): 1×n → labeled vector,
// n×1 → series, 1×1 → scalar.
func WithDrop() SelectOption {
	return func(o *SelectOptions) { o.drop = true }
}

// WithNoDrop disables shape collapsing: every selection yields a full
// tagged matrix regardless of its shape.
func WithNoDrop() SelectOption {
	return func(o *SelectOptions) { o.drop = false }
}

// gatherSelectOptions resolves selection setters against documented defaults.
func gatherSelectOptions(opts ...SelectOption) SelectOptions {
	o := SelectOptions{drop: DefaultDrop}
	for _, set := range opts {
		set(&o) // apply in order
	}

	return o
}
