// File: pool/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SlotPool is the owning handle around the raw Claim/Release primitives: one
// cohesive object that allocates its bitmap at construction, keeps the three
// shared words on separate cache lines, and exposes only claim/release.

package pool

import (
	"sync/atomic"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/internal/concurrency"
)

// Ensure compile-time interface compliance.
var _ api.SlotAllocator = (*SlotPool)(nil)

// SlotPool is a fixed-capacity, lock-free slot index allocator.
// The zero value is not usable; construct with NewSlotPool.
type SlotPool struct {
	capacity uint32
	_        concurrency.CacheLinePad
	hint     atomic.Uint32
	_        concurrency.CacheLinePad
	count    atomic.Uint32
	_        concurrency.CacheLinePad
	bitmap   []atomic.Uint32
}

// NewSlotPool creates a pool of the given fixed capacity. All slots start
// free. Capacity never changes for the lifetime of the pool.
func NewSlotPool(capacity uint32) (*SlotPool, error) {
	if capacity == 0 {
		return nil, api.ErrInvalidCapacity
	}
	return &SlotPool{
		capacity: capacity,
		bitmap:   make([]atomic.Uint32, BitmapWords(capacity)),
	}, nil
}

// Claim allocates a slot index. ok is false when the pool is exhausted;
// exhaustion is a normal condition, not an error.
func (p *SlotPool) Claim() (uint32, bool) {
	idx := Claim(p.bitmap, &p.hint, &p.count, p.capacity)
	if idx == p.capacity {
		return 0, false
	}
	return idx, true
}

// Release returns a claimed index to the pool. The caller must not release
// an index twice or release an index it never claimed.
func (p *SlotPool) Release(index uint32) {
	Release(index, p.bitmap, &p.hint, &p.count)
}

// Cap returns the fixed pool capacity.
func (p *SlotPool) Cap() uint32 {
	return p.capacity
}

// Allocated returns the current claimed-slot count. The value may lag
// in-flight claims and releases by design.
func (p *SlotPool) Allocated() uint32 {
	return p.count.Load()
}

// Stats returns an occupancy snapshot.
func (p *SlotPool) Stats() api.SlotPoolStats {
	return api.SlotPoolStats{
		Capacity:  p.capacity,
		Allocated: p.count.Load(),
		Hint:      p.hint.Load(),
	}
}
