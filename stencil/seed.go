// SPDX-License-Identifier: MIT

package stencil

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvgrid/vec2d"
)

// Seed writes value into the centered block [R/2-k, R/2+k) × [C/2-k, C/2+k)
// of g and leaves every other cell untouched. k == 0 writes nothing.
// Panics with PanicSeedBlock when the block does not fit.
func Seed[T constraints.Float](g *vec2d.Vec2D[T], halfWidth int, value T) {
	if !seedFits(g.Rows(), g.Cols(), halfWidth) {
		panic(PanicSeedBlock)
	}
	cj, ci := g.Rows()/2, g.Cols()/2
	SeedBlock(g, cj-halfWidth, cj+halfWidth, ci-halfWidth, ci+halfWidth, value)
}

// SeedBlock writes value into the half-open rectangle [r0, r1) × [c0, c1).
// Panics with PanicSeedBlock unless 0 <= r0 <= r1 <= Rows() and
// 0 <= c0 <= c1 <= Cols().
func SeedBlock[T constraints.Float](g *vec2d.Vec2D[T], r0, r1, c0, c1 int, value T) {
	if r0 < 0 || r1 > g.Rows() || r0 > r1 || c0 < 0 || c1 > g.Cols() || c0 > c1 {
		panic(PanicSeedBlock)
	}
	for j := r0; j < r1; j++ {
		row := g.RowMut(j)[c0:c1]
		for i := range row {
			row[i] = value
		}
	}
}

// seedFits reports whether the centered block of half-width k lies inside a
// rows×cols grid.
func seedFits(rows, cols, k int) bool {
	if k < 0 {
		return false
	}

	return rows/2-k >= 0 && rows/2+k <= rows && cols/2-k >= 0 && cols/2+k <= cols
}
