// SPDX-License-Identifier: MIT

package stencil

import "errors"

// Sentinel errors. Match with errors.Is; Run wraps them with context.
var (
	// ErrAllocFailed indicates the scratch block could not be obtained.
	ErrAllocFailed = errors.New("stencil: allocation failed")

	// ErrBadScratch indicates a non-positive scratch length.
	ErrBadScratch = errors.New("stencil: scratch length must be > 0")
)

// Panic messages for programmer errors raised by Step and Seed.
const (
	PanicInPlace   = "stencil: Step: dst and src must be distinct grids"
	PanicSeedBlock = "stencil: seed block does not fit the grid"
)
