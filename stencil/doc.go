// SPDX-License-Identifier: MIT

// Package stencil times a five-point Jacobi stencil over two vec2d grids,
// evicting the CPU cache between passes so every pass reads its input from
// main memory.
//
// What:
//
//   - Seed writes a constant into a centered square block of a grid.
//   - Step computes one Jacobi pass: every interior cell of dst becomes the
//     unweighted mean of the matching src cell and its four orthogonal
//     neighbours. Border cells are never written.
//   - Scratch is an off-heap block, several times larger than the grids,
//     that is overwritten before each pass to push the grids out of cache.
//   - Run wires it together: seed, then per iteration evict → Step → Swap,
//     bracketed by one wall-clock measurement.
//
// Why two buffers:
//
//   - Jacobi semantics require every output to depend only on the previous
//     iteration's values. Updating in place would read half-updated
//     neighbours (Gauss-Seidel). Current/next roles are rotated with
//     vec2d.Swap, so no data is copied between iterations.
//
// Configuration:
//
//   - Functional options (WithShape, WithIterations, WithSeed, ...) with
//     defaults matching the reference run: 2002×2002 grid, 10 000
//     iterations, 10×10 seed block of 400, scratch of 10× the grid's
//     element count, progress every 1000 iterations.
//
// Concurrency:
//
//   - Single-threaded. Nothing in this package starts goroutines.
package stencil
