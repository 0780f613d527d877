// SPDX-License-Identifier: MIT

package vec2d

import (
	"fmt"
	"math"
	"math/bits"
	"strings"
	"unsafe"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// New allocates a rows×cols grid with every cell set to the zero value of T.
//
// Implementation:
//   - Stage 1: compute the element count and byte size, panicking with
//     PanicCapacityOverflow when either does not fit the platform.
//   - Stage 2: allocate one zero-filled buffer; a refused allocation panics
//     with PanicAllocFailed.
//
// Zero-sized shapes are legal and allocate nothing; Row on a grid with no
// rows always panics.
//
// Complexity: Time O(rows*cols), Space O(rows*cols).
func New[T any](rows, cols int) *Vec2D[T] {
	n := layoutLen[T](rows, cols)

	return &Vec2D[T]{
		rows: rows,
		cols: cols,
		data: allocZeroed[T](n),
	}
}

// layoutLen validates the requested shape and returns rows*cols.
func layoutLen[T any](rows, cols int) int {
	if rows < 0 || cols < 0 {
		panic(PanicCapacityOverflow)
	}
	hi, n := bits.Mul64(uint64(rows), uint64(cols))
	if hi != 0 || n > math.MaxInt {
		panic(PanicCapacityOverflow)
	}
	var zero T
	// Total bytes must stay addressable, same as the element count.
	hi, size := bits.Mul64(n, uint64(unsafe.Sizeof(zero)))
	if hi != 0 || size > math.MaxInt {
		panic(PanicCapacityOverflow)
	}

	return int(n)
}

// allocZeroed asks the runtime for n zeroed elements. A makeslice failure
// (length beyond what the runtime can map) is reported as PanicAllocFailed.
// Real memory exhaustion is a fatal runtime error and never returns.
func allocZeroed[T any](n int) []T {
	defer func() {
		if r := recover(); r != nil {
			panic(PanicAllocFailed)
		}
	}()

	return make([]T, n)
}

// Rows returns the number of rows.
func (g *Vec2D[T]) Rows() int { return g.rows }

// Cols returns the number of columns (the length of every row view).
func (g *Vec2D[T]) Cols() int { return g.cols }

// Len returns rows*cols.
func (g *Vec2D[T]) Len() int { return len(g.data) }

// Row returns a read view of row j: Cols() contiguous elements starting at
// flat offset j*Cols(). The view aliases the grid and must not outlive it;
// callers should treat it as read-only (use RowMut to write).
// Panics with PanicRowOutOfRange unless 0 <= j < Rows().
func (g *Vec2D[T]) Row(j int) []T {
	return g.rowView(j)
}

// RowMut returns a writable view of row j. Same bounds contract as Row.
func (g *Vec2D[T]) RowMut(j int) []T {
	return g.rowView(j)
}

// rowView slices out row j with capacity clipped to the row, so an append on
// the view reallocates instead of spilling into row j+1.
func (g *Vec2D[T]) rowView(j int) []T {
	if j < 0 || j >= g.rows {
		panic(PanicRowOutOfRange)
	}
	lo := j * g.cols
	hi := lo + g.cols

	return g.data[lo:hi:hi]
}

// InBounds reports whether (j, i) addresses a cell of the grid.
func (g *Vec2D[T]) InBounds(j, i int) bool {
	return j >= 0 && j < g.rows && i >= 0 && i < g.cols
}

// Offset maps (j, i) to its flat row-major offset j*Cols() + i.
// Panics with PanicRowOutOfRange / PanicColOutOfRange on invalid indices.
func (g *Vec2D[T]) Offset(j, i int) int {
	if j < 0 || j >= g.rows {
		panic(PanicRowOutOfRange)
	}
	if i < 0 || i >= g.cols {
		panic(PanicColOutOfRange)
	}

	return j*g.cols + i
}

// Coordinate converts a flat offset back to (j, i).
// Panics with PanicOffsetOutOfRange unless 0 <= off < Len().
func (g *Vec2D[T]) Coordinate(off int) (j, i int) {
	if off < 0 || off >= len(g.data) {
		panic(PanicOffsetOutOfRange)
	}

	return off / g.cols, off % g.cols
}

// Flat returns the whole grid as one row-major view of length Len().
// Like Row, it aliases the grid and is invalidated by nothing but the grid
// going away; a Swap moves it to the other grid.
func (g *Vec2D[T]) Flat() []T {
	return g.data[:len(g.data):len(g.data)]
}

// Fill writes v into every cell.
func (g *Vec2D[T]) Fill(v T) {
	for k := range g.data {
		g.data[k] = v
	}
}

// Swap exchanges the backing buffers of g and other in O(1). Shapes must
// match exactly (PanicShapeMismatch otherwise). No element is copied and
// neither grid is reallocated: afterwards each grid owns the memory the
// other owned before.
func (g *Vec2D[T]) Swap(other *Vec2D[T]) {
	if g.rows != other.rows || g.cols != other.cols {
		panic(PanicShapeMismatch)
	}
	g.data, other.data = other.data, g.data
}

// String renders one bracketed line per row, e.g. "[0, 1]\n[2, 3]\n".
// Complexity: O(rows*cols).
func (g *Vec2D[T]) String() string {
	var sb strings.Builder
	for j := 0; j < g.rows; j++ {
		sb.WriteString(_fmtRowOpen)
		for i, v := range g.rowView(j) {
			if i > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, v)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
