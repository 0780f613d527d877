package stencil_test

import (
	"time"

	"github.com/katalvlaran/lvgrid/vec2d"
)

// stepClock advances by a fixed step on every reading, making elapsed and
// per-iteration durations exact.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(c.step)

	return c.t
}

func (c *stepClock) Since(t time.Time) time.Duration { return c.Now().Sub(t) }

// snapshot copies a grid's cells into a plain row-major slice.
func snapshot[T any](g *vec2d.Vec2D[T]) []T {
	return append([]T(nil), g.Flat()...)
}

// manhattanToBlock is the 4-neighbour distance from (j,i) to the half-open
// rectangle [r0,r1)×[c0,c1); 0 inside it.
func manhattanToBlock(j, i, r0, r1, c0, c1 int) int {
	return gap(j, r0, r1) + gap(i, c0, c1)
}

func gap(x, lo, hi int) int {
	switch {
	case x < lo:
		return lo - x
	case x >= hi:
		return x - (hi - 1)
	default:
		return 0
	}
}

// onBorder reports whether (j,i) is on the outer ring of a rows×cols grid.
func onBorder(j, i, rows, cols int) bool {
	return j == 0 || i == 0 || j == rows-1 || i == cols-1
}
