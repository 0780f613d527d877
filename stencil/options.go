// SPDX-License-Identifier: MIT

// Package stencil: functional configuration for Run. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants) matching the reference benchmark,
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces cross-field invariants.
//
// Notes:
//   - Shape-only options are validated in their constructor; the seed block
//     depends on the shape and is validated once all options are applied.
//   - No global state: every Run resolves its own Options.
package stencil

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRows and DefaultCols give the reference 2002×2002 grid.
	DefaultRows = 2002
	DefaultCols = 2002

	// DefaultIterations is the number of Jacobi passes.
	DefaultIterations = 10000

	// DefaultSeedHalfWidth k seeds [R/2-k, R/2+k) × [C/2-k, C/2+k).
	DefaultSeedHalfWidth = 5

	// DefaultSeedValue is written into every cell of the seed block.
	DefaultSeedValue = 400.0

	// DefaultScratchMultiplier sizes the eviction block as a multiple of the
	// grid's element count. It is a heuristic, not derived from cache sizes.
	DefaultScratchMultiplier = 10

	// DefaultScratchMarker is the word written over the scratch block.
	DefaultScratchMarker uint32 = 1

	// DefaultReportEvery is the progress cadence; iteration 0 always reports.
	DefaultReportEvery = 1000
)

// ---------- Internal panic messages ----------

const (
	panicShape       = "stencil: WithShape: rows and cols must be >= 3"
	panicIterations  = "stencil: WithIterations: n must be >= 0"
	panicSeed        = "stencil: WithSeed: halfWidth must be >= 0 and value finite"
	panicScratchMult = "stencil: WithScratchMultiplier: m must be > 0"
	panicReportEvery = "stencil: WithReportEvery: n must be > 0"
	panicClockNil    = "stencil: WithClock: clock must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; entry points accept ...Option.
type Options struct {
	rows, cols    int
	iterations    int
	seedHalfWidth int
	seedValue     float64
	scratchMult   int
	scratchMarker uint32
	reportEvery   int
	progress      func(iter int)
	clock         Clock
}

// WithShape sets the grid shape. Both axes need an interior, so each must
// be at least 3.
func WithShape(rows, cols int) Option {
	if rows < 3 || cols < 3 {
		panic(panicShape)
	}

	return func(o *Options) { o.rows, o.cols = rows, cols }
}

// WithIterations sets the number of Jacobi passes. Zero is legal and times
// an empty loop.
func WithIterations(n int) Option {
	if n < 0 {
		panic(panicIterations)
	}

	return func(o *Options) { o.iterations = n }
}

// WithSeed sets the seed block half-width k and the value written into it.
// Implementation:
//   - Stage 1: validate k >= 0 and value finite.
//   - Stage 2: return a setter; fit against the shape is checked in gatherOptions.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithSeed(halfWidth int, value float64) Option {
	if halfWidth < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(panicSeed)
	}

	return func(o *Options) { o.seedHalfWidth, o.seedValue = halfWidth, value }
}

// WithScratchMultiplier sizes the eviction block as m × rows × cols words.
func WithScratchMultiplier(m int) Option {
	if m <= 0 {
		panic(panicScratchMult)
	}

	return func(o *Options) { o.scratchMult = m }
}

// WithScratchMarker sets the word written over the scratch block on every
// eviction.
func WithScratchMarker(v uint32) Option {
	return func(o *Options) { o.scratchMarker = v }
}

// WithReportEvery sets the progress cadence: progress is called for every
// iteration with iter%n == 0.
func WithReportEvery(n int) Option {
	if n <= 0 {
		panic(panicReportEvery)
	}

	return func(o *Options) { o.reportEvery = n }
}

// WithProgress installs a progress callback. nil silences progress.
func WithProgress(fn func(iter int)) Option {
	return func(o *Options) { o.progress = fn }
}

// WithClock replaces the time source.
func WithClock(c Clock) Option {
	if c == nil {
		panic(panicClockNil)
	}

	return func(o *Options) { o.clock = c }
}

// defaultOptions returns the reference configuration.
func defaultOptions() Options {
	return Options{
		rows:          DefaultRows,
		cols:          DefaultCols,
		iterations:    DefaultIterations,
		seedHalfWidth: DefaultSeedHalfWidth,
		seedValue:     DefaultSeedValue,
		scratchMult:   DefaultScratchMultiplier,
		scratchMarker: DefaultScratchMarker,
		reportEvery:   DefaultReportEvery,
		clock:         RealClock{},
	}
}

// gatherOptions applies opts over the defaults and enforces the invariants
// that span several fields. Panics with PanicSeedBlock when the seed block
// would fall outside the grid.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !seedFits(o.rows, o.cols, o.seedHalfWidth) {
		panic(PanicSeedBlock)
	}

	return o
}
