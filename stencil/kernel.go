// SPDX-License-Identifier: MIT

package stencil

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvgrid/vec2d"
)

// Step performs one Jacobi pass of the five-point averaging stencil:
//
//	dst[j][i] = (src[j][i] + src[j][i-1] + src[j][i+1] + src[j-1][i] + src[j+1][i]) / 5
//
// for 1 <= j < R-1 and 1 <= i < C-1.
//
// Behavior highlights:
//   - Reads only src; no value written to dst in this pass is ever read back.
//   - Border rows and columns of dst are never written and keep whatever
//     they held.
//   - Grids with fewer than 3 rows or columns have no interior; Step is a no-op.
//
// Panics:
//   - vec2d.PanicShapeMismatch when the shapes differ.
//   - PanicInPlace when dst and src are the same grid.
//
// Complexity:
//   - Time O(R*C), Space O(1).
func Step[T constraints.Float](dst, src *vec2d.Vec2D[T]) {
	if dst == src {
		panic(PanicInPlace)
	}
	rows, cols := src.Rows(), src.Cols()
	if dst.Rows() != rows || dst.Cols() != cols {
		panic(vec2d.PanicShapeMismatch)
	}
	if rows < 3 || cols < 3 {
		return
	}

	for j := 1; j < rows-1; j++ {
		up, mid, down := src.Row(j-1), src.Row(j), src.Row(j+1)
		out := dst.RowMut(j)
		for i := 1; i < cols-1; i++ {
			out[i] = (mid[i] + mid[i-1] + mid[i+1] + up[i] + down[i]) / 5
		}
	}
}
