// File: pool/reclaim.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ReclaimQueue stages releases until an explicit drain point. Useful when
// slot contents must quiesce before the index may be reissued, e.g. readers
// still holding views into a slot until an epoch boundary. The queue itself
// is mutex-guarded; only the underlying pool is lock-free.

package pool

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-mem/api"
)

// ReclaimQueue defers slot releases against a target allocator.
type ReclaimQueue struct {
	mu     sync.Mutex
	staged *queue.Queue
	target api.SlotAllocator
}

// NewReclaimQueue creates a reclaim queue draining into target.
func NewReclaimQueue(target api.SlotAllocator) *ReclaimQueue {
	return &ReclaimQueue{
		staged: queue.New(),
		target: target,
	}
}

// Defer stages index for a later Drain. The slot stays claimed until then.
func (r *ReclaimQueue) Defer(index uint32) {
	r.mu.Lock()
	r.staged.Add(index)
	r.mu.Unlock()
}

// Pending returns the number of staged, not yet released indices.
func (r *ReclaimQueue) Pending() int {
	r.mu.Lock()
	n := r.staged.Length()
	r.mu.Unlock()
	return n
}

// DrainN releases up to n staged indices in FIFO order and returns how many
// were released.
func (r *ReclaimQueue) DrainN(n int) int {
	released := 0
	for released < n {
		r.mu.Lock()
		if r.staged.Length() == 0 {
			r.mu.Unlock()
			break
		}
		idx := r.staged.Remove().(uint32)
		r.mu.Unlock()

		r.target.Release(idx)
		released++
	}
	return released
}

// Drain releases every staged index and returns the count.
func (r *ReclaimQueue) Drain() int {
	total := 0
	for {
		n := r.DrainN(64)
		total += n
		if n < 64 {
			return total
		}
	}
}
