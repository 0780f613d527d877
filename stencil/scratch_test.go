package stencil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrid/stencil"
)

// TestNewScratchInvalid rejects empty blocks.
func TestNewScratchInvalid(t *testing.T) {
	_, err := stencil.NewScratch(0)
	require.ErrorIs(t, err, stencil.ErrBadScratch)

	_, err = stencil.NewScratch(-3)
	require.ErrorIs(t, err, stencil.ErrBadScratch)
}

// TestScratchLifecycle allocates, evicts and releases a block.
func TestScratchLifecycle(t *testing.T) {
	const n = 1 << 16
	s, err := stencil.NewScratch(n)
	require.NoError(t, err)
	require.Equal(t, n, s.Len())

	for _, w := range s.Words() {
		require.Zero(t, w)
	}

	s.Evict(stencil.DefaultScratchMarker)
	for k, w := range s.Words() {
		require.Equalf(t, stencil.DefaultScratchMarker, w, "word %d", k)
	}
	s.Evict(0xdeadbeef)
	require.Equal(t, uint32(0xdeadbeef), s.Words()[n-1])

	require.NoError(t, s.Close())
	require.Zero(t, s.Len())
	require.NoError(t, s.Close(), "second Close is a no-op")
	require.NotPanics(t, func() { s.Evict(1) })
}

// TestScratchNilEvict allows callers to skip eviction.
func TestScratchNilEvict(t *testing.T) {
	var s *stencil.Scratch
	require.NotPanics(t, func() { s.Evict(1) })
}
