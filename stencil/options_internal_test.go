package stencil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDefaultOptions pins the reference configuration.
func TestDefaultOptions(t *testing.T) {
	o := gatherOptions()
	require.Equal(t, 2002, o.rows)
	require.Equal(t, 2002, o.cols)
	require.Equal(t, 10000, o.iterations)
	require.Equal(t, 5, o.seedHalfWidth)
	require.Equal(t, 400.0, o.seedValue)
	require.Equal(t, 10, o.scratchMult)
	require.Equal(t, uint32(1), o.scratchMarker)
	require.Equal(t, 1000, o.reportEvery)
	require.Nil(t, o.progress)
	require.IsType(t, RealClock{}, o.clock)
}

// TestGatherOptionsLastWins applies options in order.
func TestGatherOptionsLastWins(t *testing.T) {
	o := gatherOptions(WithIterations(3), WithIterations(9), WithShape(20, 30), WithSeed(2, 7))
	require.Equal(t, 9, o.iterations)
	require.Equal(t, 20, o.rows)
	require.Equal(t, 30, o.cols)
	require.Equal(t, 2, o.seedHalfWidth)
	require.Equal(t, 7.0, o.seedValue)
}

// TestSeedFits covers the centered-block predicate.
func TestSeedFits(t *testing.T) {
	require.True(t, seedFits(10, 10, 5))
	require.False(t, seedFits(9, 10, 5))
	require.True(t, seedFits(3, 3, 1))
	require.False(t, seedFits(3, 3, 2))
	require.False(t, seedFits(10, 10, -1))
}
