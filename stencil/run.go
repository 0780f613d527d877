// SPDX-License-Identifier: MIT

package stencil

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvgrid/vec2d"
)

// Result summarises one benchmark run.
type Result struct {
	Rows, Cols int
	Iterations int

	// Elapsed is the single wall-clock measurement bracketing the loop.
	Elapsed time.Duration

	// MeanIter and StdDevIter describe the per-iteration durations
	// (eviction + pass + swap). StdDevIter is 0 for fewer than 2 iterations.
	MeanIter   time.Duration
	StdDevIter time.Duration

	// Mass is the sum of the final grid, Peak its largest cell.
	Mass float64
	Peak float64
}

// String renders a one-line summary.
func (r Result) String() string {
	return fmt.Sprintf("%dx%d grid, %d iterations: total %v, per iteration %v ± %v, mass %.6g, peak %.6g",
		r.Rows, r.Cols, r.Iterations, r.Elapsed, r.MeanIter, r.StdDevIter, r.Mass, r.Peak)
}

// Run executes the full benchmark: allocate two grids, seed the current one,
// allocate the eviction block, then iterate evict → Step → Swap under one
// timer.
//
// Implementation:
//   - Stage 1: resolve options; allocate current/next (vec2d.New panics on
//     capacity overflow or allocation failure).
//   - Stage 2: seed current; allocate and pre-fill the scratch block.
//   - Stage 3: run the timed loop; release the scratch block.
//
// Errors:
//   - ErrAllocFailed (wrapped) when the scratch block cannot be obtained.
//   - a wrapped release error from Scratch.Close.
func Run(opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	current := vec2d.New[float64](o.rows, o.cols)
	next := vec2d.New[float64](o.rows, o.cols)
	Seed(current, o.seedHalfWidth, o.seedValue)

	cells := o.rows * o.cols
	if o.scratchMult > math.MaxInt/cells {
		return Result{}, fmt.Errorf("stencil: scratch %d×%d cells: %w", o.scratchMult, cells, ErrAllocFailed)
	}
	scratch, err := NewScratch(cells * o.scratchMult)
	if err != nil {
		return Result{}, fmt.Errorf("stencil: %w", err)
	}
	scratch.Evict(o.scratchMarker)

	res := runLoop(current, next, scratch, o)
	if err := scratch.Close(); err != nil {
		return res, fmt.Errorf("stencil: release scratch: %w", err)
	}

	return res, nil
}

// RunOn drives an already prepared grid pair. Shape and seed options are
// ignored; the grids are used as they are. A nil scratch skips eviction.
// On return current holds the
// final state and next the state one pass earlier.
// Panics with vec2d.PanicShapeMismatch when the grids differ in shape.
func RunOn(current, next *vec2d.Vec2D[float64], scratch *Scratch, opts ...Option) Result {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if current.Rows() != next.Rows() || current.Cols() != next.Cols() {
		panic(vec2d.PanicShapeMismatch)
	}

	return runLoop(current, next, scratch, o)
}

// runLoop is the timed region. Everything outside it (allocation, seeding,
// the first scratch fill) is excluded from Elapsed.
func runLoop(current, next *vec2d.Vec2D[float64], scratch *Scratch, o Options) Result {
	samples := make([]float64, o.iterations)

	start := o.clock.Now()
	prev := start
	for iter := 0; iter < o.iterations; iter++ {
		scratch.Evict(o.scratchMarker)
		Step(next, current)
		current.Swap(next)

		now := o.clock.Now()
		samples[iter] = now.Sub(prev).Seconds()
		prev = now

		if o.progress != nil && iter%o.reportEvery == 0 {
			o.progress(iter)
		}
	}
	elapsed := o.clock.Since(start)

	res := Result{
		Rows:       current.Rows(),
		Cols:       current.Cols(),
		Iterations: o.iterations,
		Elapsed:    elapsed,
	}
	if len(samples) > 0 {
		mean, std := stat.MeanStdDev(samples, nil)
		if len(samples) < 2 {
			std = 0
		}
		res.MeanIter = seconds(mean)
		res.StdDevIter = seconds(std)
	}
	if flat := current.Flat(); len(flat) > 0 {
		res.Mass = floats.Sum(flat)
		res.Peak = floats.Max(flat)
	}

	return res
}

// seconds converts float seconds to a Duration.
func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
