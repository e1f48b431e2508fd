// File: pool/slotpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Raw slot allocation over caller-owned shared state. Storage for the bitmap,
// the search hint and the allocated count belongs to the caller; this file
// only mutates it through atomic compare-and-swap. For best throughput the
// three values should live on separate cache lines (see SlotPool in pool.go,
// which lays them out that way).

package pool

import "sync/atomic"

// WordBits is the width of one bitmap word. Each word tracks 32 slots.
const WordBits = 32

// BitmapWords returns the number of bitmap words needed to track capacity
// slots.
func BitmapWords(capacity uint32) uint32 {
	return (capacity + WordBits - 1) / WordBits
}

// Claim allocates one slot index from the pool and returns it. When every
// slot is taken it returns capacity, which is distinguishable from any valid
// index; callers must branch on that sentinel.
//
// Each outer iteration probes exactly one candidate derived from the shared
// hint, then advances the hint by one so concurrent callers diverge their
// probe positions. The hint is a suggestion, never a guarantee: coverage of
// the index space comes from repeated iteration, not from a full scan per
// call. Progress is lock-free for the system as a whole, but an individual
// caller may retry arbitrarily often under contention.
func Claim(bitmap []atomic.Uint32, hint, count *atomic.Uint32, capacity uint32) uint32 {
	for {
		// Advance the shared hint past the index we are about to probe.
		idx := hint.Load()
		for !hint.CompareAndSwap(idx, (idx+1)%capacity) {
			idx = hint.Load()
		}

		// Fast-path exhaustion check. The counter may be transiently stale in
		// either direction: a concurrent release makes this spuriously report
		// full, a concurrent claim that has set its bit but not yet counted
		// lets us pass. Both are fine — the CAS below re-validates.
		if count.Load() >= capacity {
			return capacity
		}

		word := &bitmap[idx/WordBits]
		mask := uint32(1) << (idx % WordBits)

		cur := word.Load()
		if cur&mask == 0 && word.CompareAndSwap(cur, cur|mask) {
			// The slot is ours. Between the bit flipping and the increment
			// below the count under-reports; that window only ever delays
			// another caller's exhaustion verdict.
			n := count.Load()
			for !count.CompareAndSwap(n, n+1) {
				n = count.Load()
			}
			return idx
		}
		// Bit already set, or we lost the race for it: retry at the new hint.
	}
}

// Release returns a previously claimed index to the pool. The index must have
// been returned by Claim and not yet released; double-release is a caller
// contract violation and is not checked here.
func Release(index uint32, bitmap []atomic.Uint32, hint, count *atomic.Uint32) {
	word := &bitmap[index/WordBits]
	mask := uint32(1) << (index % WordBits)

	for {
		cur := word.Load()
		if word.CompareAndSwap(cur, cur&^mask) {
			break
		}
	}

	// The count is transiently one too high between the bit clear above and
	// this decrement. At worst a concurrent Claim briefly reports exhaustion,
	// which is correct: this release has not finished yet.
	for {
		n := count.Load()
		if count.CompareAndSwap(n, n-1) {
			break
		}
	}

	// Pull the hint down, but only toward lower indices. Biasing reuse toward
	// the low end keeps a contiguous high-index region untouched for longer,
	// which is what lets page-backed pools return whole pages to the OS.
	for {
		h := hint.Load()
		if index >= h || hint.CompareAndSwap(h, index) {
			break
		}
	}
}
