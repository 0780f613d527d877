// Package lvgrid is a small toolkit for timing memory-bound numeric kernels
// on flat two-dimensional grids.
//
// Under the hood, everything is organized under two subpackages and one
// command:
//
//	vec2d/             Vec2D[T]: one contiguous row-major allocation, row views, O(1) Swap
//	stencil/           five-point Jacobi kernel, seeding, cache-eviction scratch, timed Run
//	cmd/stencilbench/  reference benchmark: 2002×2002 grid, 10 000 cold-cache passes
//
// Quick ASCII example of one Jacobi pass around a single hot cell:
//
//	. . . . .        . . . . .
//	. . . . .        . . 1 . .
//	. . 5 . .   →    . 1 1 1 .
//	. . . . .        . . 1 . .
//	. . . . .        . . . . .
//
//	go run github.com/katalvlaran/lvgrid/cmd/stencilbench
package lvgrid
