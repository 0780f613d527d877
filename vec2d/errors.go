// SPDX-License-Identifier: MIT

package vec2d

// Panic messages. Every fatal condition in this package panics with one of
// these values, so callers and tests can match them exactly.
const (
	// PanicCapacityOverflow: the shape, or its byte size, does not fit the
	// addressable range of the platform (also raised for negative dimensions).
	PanicCapacityOverflow = "vec2d: capacity overflow"

	// PanicAllocFailed: the runtime refused to hand out the requested block.
	PanicAllocFailed = "vec2d: allocation failed"

	// PanicRowOutOfRange: a row index outside [0, Rows()) was requested.
	PanicRowOutOfRange = "vec2d: row index out of range"

	// PanicColOutOfRange: a column index outside [0, Cols()) was requested
	// from one of the flat-offset helpers.
	PanicColOutOfRange = "vec2d: column index out of range"

	// PanicOffsetOutOfRange: a flat offset outside [0, Len()) was requested.
	PanicOffsetOutOfRange = "vec2d: offset out of range"

	// PanicShapeMismatch: a two-grid operation received grids of different shape.
	PanicShapeMismatch = "vec2d: shape mismatch"
)
