// SPDX-License-Identifier: MIT

package vec2d

import "fmt"

// Vec2D is a rows×cols grid of T in row-major order.
//   - rows, cols are fixed at construction and never change.
//   - data is the single owned buffer, len(data) == rows*cols.
//
// Cell (j, i) lives at data[j*cols + i]. T is expected to be a plain value
// type (numbers, small structs without pointers); nothing here runs
// destructors or deep copies.
type Vec2D[T any] struct {
	rows, cols int
	data       []T
}

var _ fmt.Stringer = (*Vec2D[float64])(nil)
