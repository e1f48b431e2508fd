// File: pool/slotpool_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Tests for the raw claim/release surface over caller-owned state.

package pool

import (
	"sync/atomic"
	"testing"
)

// poolState bundles caller-owned allocator storage for tests.
type poolState struct {
	bitmap []atomic.Uint32
	hint   atomic.Uint32
	count  atomic.Uint32
}

func newPoolState(capacity uint32) *poolState {
	return &poolState{bitmap: make([]atomic.Uint32, BitmapWords(capacity))}
}

func (s *poolState) claim(capacity uint32) uint32 {
	return Claim(s.bitmap, &s.hint, &s.count, capacity)
}

func (s *poolState) release(idx uint32) {
	Release(idx, s.bitmap, &s.hint, &s.count)
}

func TestBitmapWords(t *testing.T) {
	cases := []struct{ capacity, words uint32 }{
		{1, 1}, {31, 1}, {32, 1}, {33, 2}, {64, 2}, {65, 3},
	}
	for _, c := range cases {
		if got := BitmapWords(c.capacity); got != c.words {
			t.Errorf("BitmapWords(%d) = %d, want %d", c.capacity, got, c.words)
		}
	}
}

// TestClaim_SequentialDeterminism: from an empty pool, sequential claims
// return 0,1,2,... in order, one per call.
func TestClaim_SequentialDeterminism(t *testing.T) {
	const capacity = 31
	s := newPoolState(capacity)

	for i := uint32(0); i < capacity; i++ {
		idx := s.claim(capacity)
		if idx != i {
			t.Fatalf("claim %d returned %d", i, idx)
		}
		if got := s.count.Load(); got != i+1 {
			t.Errorf("allocated count after claim %d is %d", i, got)
		}
	}

	// One 32-bit word minus one slot: all bits but the top one.
	if got := s.bitmap[0].Load(); got != 0x7FFFFFFF {
		t.Errorf("bitmap word = %#x, want 0x7fffffff", got)
	}
}

func TestClaim_Exhaustion(t *testing.T) {
	const capacity = 31
	s := newPoolState(capacity)

	for i := uint32(0); i < capacity; i++ {
		s.claim(capacity)
	}
	// Every further claim reports the sentinel.
	if idx := s.claim(capacity); idx != capacity {
		t.Errorf("exhausted claim returned %d, want %d", idx, capacity)
	}
	if idx := s.claim(capacity); idx != capacity {
		t.Errorf("exhausted claim returned %d, want %d", idx, capacity)
	}
}

// TestClaim_WordBoundaries fills a pool spanning several bitmap words and
// checks the fill pattern, including the partial last word.
func TestClaim_WordBoundaries(t *testing.T) {
	const capacity = 79 // two full words plus 15 bits
	s := newPoolState(capacity)

	for i := uint32(0); i < capacity; i++ {
		if idx := s.claim(capacity); idx != i {
			t.Fatalf("claim %d returned %d", i, idx)
		}
	}
	for w := 0; w < 2; w++ {
		if got := s.bitmap[w].Load(); got != 0xFFFFFFFF {
			t.Errorf("bitmap word %d = %#x, want full", w, got)
		}
	}
	if got := s.bitmap[2].Load(); got != 0x7FFF {
		t.Errorf("last bitmap word = %#x, want 0x7fff", got)
	}
}

// TestRelease_Reuse: freeing one slot makes exactly that slot claimable
// again, for every slot in turn.
func TestRelease_Reuse(t *testing.T) {
	const capacity = 31
	s := newPoolState(capacity)

	for i := uint32(0); i < capacity; i++ {
		s.claim(capacity)
	}
	for i := uint32(0); i < capacity; i++ {
		s.release(i)
		if got := s.count.Load(); got != capacity-1 {
			t.Errorf("count after release = %d", got)
		}
		if idx := s.claim(capacity); idx != i {
			t.Errorf("claim after releasing %d returned %d", i, idx)
		}
		if got := s.count.Load(); got != capacity {
			t.Errorf("count after reclaim = %d", got)
		}
	}
}

// TestRelease_HintBias: the hint only ever moves down on release.
func TestRelease_HintBias(t *testing.T) {
	const capacity = 31
	s := newPoolState(capacity)

	for i := 0; i < 10; i++ {
		s.claim(capacity)
	}
	if got := s.hint.Load(); got != 10 {
		t.Fatalf("hint after 10 claims = %d", got)
	}

	s.release(3)
	if got := s.hint.Load(); got != 3 {
		t.Errorf("hint after releasing 3 = %d, want 3", got)
	}

	// Releasing an index at or above the hint leaves it unchanged.
	s.release(7)
	if got := s.hint.Load(); got != 3 {
		t.Errorf("hint after releasing 7 = %d, want 3", got)
	}

	// The next claim starts probing at the lowered hint.
	if idx := s.claim(capacity); idx != 3 {
		t.Errorf("claim after bias returned %d, want 3", idx)
	}
}

// TestRelease_AllDescendingCount drains a full pool and checks the counter
// converges to claims minus releases at every step.
func TestRelease_AllDescendingCount(t *testing.T) {
	const capacity = 31
	s := newPoolState(capacity)

	for i := uint32(0); i < capacity; i++ {
		s.claim(capacity)
	}
	for i := uint32(0); i < capacity; i++ {
		s.release(i)
		if got := s.count.Load(); got != capacity-i-1 {
			t.Errorf("count after %d releases = %d", i+1, got)
		}
		if got := s.hint.Load(); got != 0 {
			t.Errorf("hint = %d, want 0", got)
		}
	}
}
