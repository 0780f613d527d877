// SPDX-License-Identifier: MIT

// Package vec2d provides Vec2D, a fixed-shape two-dimensional grid stored
// as one contiguous row-major buffer.
//
// What:
//
//   - New allocates a rows×cols grid, zero-filled, in a single allocation.
//   - Row / RowMut return a view of one row; two-dimensional access is always
//     "take the row, then index into it": g.Row(j)[i] is flat offset j*cols + i.
//   - Swap exchanges the backing buffers of two same-shaped grids in O(1),
//     which is how double-buffered kernels rotate their current/next roles.
//
// Why:
//
//   - Numeric kernels (stencils, diffusion, image filters) want one flat,
//     cache-friendly block instead of a [][]T of separately allocated rows.
//
// Failure model:
//
//   - Capacity overflow, allocation failure and row-index violations are
//     fatal: they panic. There is no error return anywhere in this package.
//     A grid that failed construction is never observable.
//
// Complexity:
//
//   - New: O(rows*cols) zero-init. Row/RowMut/Swap: O(1). Fill: O(rows*cols).
//
// Concurrency:
//
//   - A Vec2D is not safe for concurrent mutation; it carries no locks.
package vec2d
