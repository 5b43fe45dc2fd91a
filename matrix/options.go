// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for layouts and numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: options are resolved once at construction.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Layout options (order, starting index) are consumed by NewLayout.
//   - Policy options (NaN/Inf guard) are consumed by SmallMatrix constructors
//     and inherited by every result derived from that matrix.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOrder is the storage order of layouts built by NewLayout.
	DefaultOrder = ColMajor

	// DefaultStartIndex is the first valid index on every axis (1-based).
	DefaultStartIndex = 1

	// DefaultValidateNaNInf toggles NaN/±Inf rejection on Set, SetIndex,
	// SetVal, Apply and literal ingestion. Off: SmallMatrix is a plain
	// numeric value type.
	DefaultValidateNaNInf = false

	// DefaultRTol and DefaultATol are the AllClose tolerances used by Equalish.
	DefaultRTol = 1e-9
	DefaultATol = 1e-12
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicOrderInvalid      = "matrix: WithOrder: order must be ColMajor or RowMajor"
	panicStartIndexInvalid = "matrix: WithStartIndex: start index must be 0 or 1"
	panicToleranceInvalid  = "matrix: WithTolerances: tolerances must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	order          Order   // DefaultOrder
	startIndex     int     // DefaultStartIndex
	validateNaNInf bool    // DefaultValidateNaNInf
	rtol, atol     float64 // DefaultRTol, DefaultATol
}

// WithOrder selects the storage order for NewLayout.
// Panics if o is not ColMajor or RowMajor.
func WithOrder(o Order) Option {
	if !o.Valid() {
		panic(panicOrderInvalid)
	}

	return func(opt *Options) { opt.order = o }
}

// WithRowMajor is shorthand for WithOrder(RowMajor).
func WithRowMajor() Option { return WithOrder(RowMajor) }

// WithColMajor is shorthand for WithOrder(ColMajor).
func WithColMajor() Option { return WithOrder(ColMajor) }

// WithStartIndex selects the starting index (0 or 1) for NewLayout.
// Panics on any other value.
func WithStartIndex(s int) Option {
	if s != 0 && s != 1 {
		panic(panicStartIndexInvalid)
	}

	return func(opt *Options) { opt.startIndex = s }
}

// WithZeroBased is shorthand for WithStartIndex(0).
func WithZeroBased() Option { return WithStartIndex(0) }

// WithValidateNaNInf enables NaN/±Inf rejection on writes.
func WithValidateNaNInf() Option {
	return func(opt *Options) { opt.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/±Inf rejection on writes.
func WithNoValidateNaNInf() Option {
	return func(opt *Options) { opt.validateNaNInf = false }
}

// WithTolerances sets the relative/absolute tolerances used by Equalish.
// Panics on negative, NaN or infinite values.
func WithTolerances(rtol, atol float64) Option {
	if !finiteNonNeg(rtol) || !finiteNonNeg(atol) {
		panic(panicToleranceInvalid)
	}

	return func(opt *Options) { opt.rtol, opt.atol = rtol, atol }
}

// NewLayout builds a validated Layout from extents and options.
//
// Errors:
//   - ErrInvalidDimensions when rows<1 or cols<1.
func NewLayout(rows, cols int, opts ...Option) (Layout, error) {
	o := gatherOptions(opts...)
	l := Layout{Rows: rows, Cols: cols, Order: o.order, StartIndex: o.startIndex}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}

	return l, nil
}

// MustLayout is NewLayout that panics on error. Intended for package-level
// variables and tests with literal extents.
func MustLayout(rows, cols int, opts ...Option) Layout {
	l, err := NewLayout(rows, cols, opts...)
	if err != nil {
		panic(err)
	}

	return l
}

func defaultOptions() Options {
	return Options{
		order:          DefaultOrder,
		startIndex:     DefaultStartIndex,
		validateNaNInf: DefaultValidateNaNInf,
		rtol:           DefaultRTol,
		atol:           DefaultATol,
	}
}

// gatherOptions applies user options over defaults, skipping nil entries.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

func finiteNonNeg(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}
