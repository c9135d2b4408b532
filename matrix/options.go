// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Sparse matrices. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective configuration.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options travel with the matrix: results of arithmetic inherit the
//     configuration of the left operand, the way Dense carried its numeric policy.
package matrix

import "github.com/go-logr/logr"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrictBounds disables bounds enforcement on Set and during parsing.
	// Out-of-range reads always return 0; out-of-range writes are stored.
	DefaultStrictBounds = false

	// DefaultFieldWidth is the right-aligned cell width used by Format/String.
	DefaultFieldWidth = 8
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicFieldWidthInvalid = "matrix: WithFieldWidth: width must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	strictBounds bool        // DefaultStrictBounds
	fieldWidth   int         // DefaultFieldWidth
	logger       logr.Logger // discards unless WithLogger
}

// WithStrictBounds makes Set (and therefore parsing) reject coordinates
// outside [0,rows)×[0,cols) with ErrOutOfRange.
func WithStrictBounds() Option {
	return func(o *Options) { o.strictBounds = true }
}

// WithPermissiveBounds restores the default: any coordinate may be written.
func WithPermissiveBounds() Option {
	return func(o *Options) { o.strictBounds = false }
}

// WithFieldWidth sets the cell width used by Format/String.
// Panics if width < 1.
func WithFieldWidth(width int) Option {
	if width < 1 {
		panic(panicFieldWidthInvalid)
	}

	return func(o *Options) { o.fieldWidth = width }
}

// WithLogger attaches a logr.Logger. Loading logs at V(1), arithmetic
// summaries at V(2). The zero Logger discards everything.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// NewMatrixOptions resolves opts on top of the defaults.
// Exposed for callers that want to inspect a configuration before use.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// StrictBounds reports whether bounds are enforced.
func (o Options) StrictBounds() bool { return o.strictBounds }

// FieldWidth reports the rendering cell width.
func (o Options) FieldWidth() int { return o.fieldWidth }

// defaultOptions returns the documented defaults. Keep in sync with the constants above.
func defaultOptions() Options {
	return Options{
		strictBounds: DefaultStrictBounds,
		fieldWidth:   DefaultFieldWidth,
		logger:       logr.Discard(),
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters run in order; last writer wins.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
