// SPDX-License-Identifier: MIT

package stencil

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"modernc.org/memory"
)

// scratchWordSize is the byte width of one scratch element.
const scratchWordSize = int(unsafe.Sizeof(uint32(0)))

// Scratch is the cache-eviction block: n uint32 words allocated outside the
// Go heap. It is only ever written, never read for numeric purposes. Writing
// all of it between stencil passes displaces the grids from every cache
// level as long as it is comfortably larger than the last-level cache.
//
// The block comes from modernc.org/memory, so the garbage collector neither
// scans nor moves it and its size does not inflate the GC's heap target.
// Close must be called to return it to the OS.
type Scratch struct {
	alloc memory.Allocator
	raw   []byte
	words []uint32
}

// NewScratch allocates a zeroed scratch block of n words.
//
// Errors:
//   - ErrBadScratch when n <= 0.
//   - ErrAllocFailed (wrapped) when the block cannot be obtained.
func NewScratch(n int) (*Scratch, error) {
	if n <= 0 {
		return nil, ErrBadScratch
	}
	if n > math.MaxInt/scratchWordSize {
		return nil, fmt.Errorf("scratch of %d words: %w", n, ErrAllocFailed)
	}

	s := &Scratch{}
	raw, err := s.alloc.Calloc(n * scratchWordSize)
	if err != nil {
		return nil, fmt.Errorf("scratch of %d words: %w: %v", n, ErrAllocFailed, err)
	}
	s.raw = raw
	s.words = unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(raw))), n)

	return s, nil
}

// Len returns the number of words in the block (0 after Close).
func (s *Scratch) Len() int { return len(s.words) }

// Words exposes the block for inspection. The slice is invalid after Close.
func (s *Scratch) Words() []uint32 { return s.words }

// Evict overwrites every word with marker. A nil or closed Scratch does
// nothing.
func (s *Scratch) Evict(marker uint32) {
	if s == nil {
		return
	}
	w := s.words
	for k := range w {
		w[k] = marker
	}
}

// Close frees the block and releases the allocator. Calling Close more than
// once is safe.
func (s *Scratch) Close() error {
	if s.raw == nil {
		return nil
	}
	errFree := s.alloc.Free(s.raw)
	s.raw, s.words = nil, nil

	return errors.Join(errFree, s.alloc.Close())
}
