// File: layout/layout.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package layout

import "unsafe"

// Align is the alignment boundary, in bytes, for every sub-structure carved
// by this package. Some targets (notably WASM) fault on unaligned access, and
// 16 keeps SIMD-friendly placement on the rest.
const Align = 16

// AlignUp rounds n up to the next multiple of Align.
// The result wraps for n > ^uint32(0)-Align+1; SizeAdd detects that case.
func AlignUp(n uint32) uint32 {
	return (n + Align - 1) &^ (Align - 1)
}

// AlignPtr rounds an address up to the next Align boundary.
func AlignPtr(p uintptr) uintptr {
	return (p + Align - 1) &^ uintptr(Align-1)
}

// SizeInit starts a sizing chain. The accumulator is primed with one full
// alignment unit of headroom so that rounding an arbitrary, possibly
// misaligned base address up to the boundary can never push the first
// sub-structure past the reserved size.
func SizeInit() uint32 {
	return Align
}

// SizeAdd appends a sub-structure of n bytes to the sizing chain: the
// accumulator is rounded up to the alignment boundary, then n is added.
// It returns false if the accumulated size wrapped around; after a false
// return the accumulator is only meaningful for aborting the composition.
func SizeAdd(size *uint32, n uint32) bool {
	newSize := (*size + n + Align - 1) &^ (Align - 1)
	if newSize < *size {
		return false
	}
	*size = newSize
	return true
}

// AlignAdvance is the raw carving primitive: it rounds *addr up to the
// alignment boundary, returns the rounded address as the start of the next
// sub-structure, and advances *addr n bytes past that start. Rounding for the
// following sub-structure happens on the following call, not here.
func AlignAdvance(addr *uintptr, n uint32) uintptr {
	start := AlignPtr(*addr)
	*addr = start + uintptr(n)
	return start
}

// Cursor carves aligned sub-structure views out of a single flat buffer.
// It is transient state for one carving pass: not safe for concurrent use,
// and meant to be discarded once the pass is complete.
type Cursor struct {
	buf []byte
	off uintptr // next unclaimed byte, relative to the buffer start
}

// NewCursor starts a carving pass over buf. The buffer does not need to be
// aligned; the first Advance rounds into it, which is exactly the headroom
// SizeInit reserves.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Advance returns an aligned view of n bytes for the next sub-structure and
// moves the cursor past it. Carving beyond the end of the buffer means the
// sizing and carving passes disagree; that is a caller bug, so it panics
// rather than returning a short view.
func (c *Cursor) Advance(n uint32) []byte {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(c.buf)))
	start := AlignPtr(base+c.off) - base
	end := start + uintptr(n)
	if end > uintptr(len(c.buf)) {
		panic("layout: carve past end of buffer")
	}
	c.off = end
	return c.buf[start:end:end]
}

// Offset reports how many bytes of the buffer the pass has consumed.
func (c *Cursor) Offset() uintptr {
	return c.off
}

// Remaining reports how many bytes are left before the cursor, ignoring the
// rounding the next Advance will apply.
func (c *Cursor) Remaining() int {
	return len(c.buf) - int(c.off)
}

// ZeroAligned clears buf word-wise. The buffer must start on the Align
// boundary (carved views from this package always do). Use this instead of a
// byte loop when resetting freshly claimed slots.
func ZeroAligned(buf []byte) {
	if len(buf) == 0 {
		return
	}
	p := unsafe.Pointer(unsafe.SliceData(buf))
	if uintptr(p)&(Align-1) != 0 {
		panic("layout: buffer not aligned")
	}
	words := unsafe.Slice((*uint64)(p), len(buf)/8)
	for i := range words {
		words[i] = 0
	}
	for i := len(buf) &^ 7; i < len(buf); i++ {
		buf[i] = 0
	}
}
