// Package pool — zero-alloc batching without locks.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ClaimBatch aggregates slot indices claimed by one caller so they can be
// handed around and released in bulk. This implementation is NOT thread-safe
// and avoids mutex in hot-path; each batch belongs to a single goroutine.

package pool

import "github.com/momentics/hioload-mem/api"

// ClaimBatch is a minimal zero-alloc batch of claimed slot indices.
type ClaimBatch struct {
	indices []uint32
}

// NewClaimBatch creates a new batch with given capacity.
func NewClaimBatch(capacity int) *ClaimBatch {
	return &ClaimBatch{
		indices: make([]uint32, 0, capacity),
	}
}

// Append adds an already-claimed index to the batch.
func (b *ClaimBatch) Append(index uint32) {
	b.indices = append(b.indices, index)
}

// Len returns number of indices in the batch.
func (b *ClaimBatch) Len() int {
	return len(b.indices)
}

// Get retrieves the index at position i.
func (b *ClaimBatch) Get(i int) uint32 {
	return b.indices[i]
}

// Underlying returns the underlying slice.
func (b *ClaimBatch) Underlying() []uint32 {
	return b.indices
}

// ClaimFrom claims up to n slots from a and appends them to the batch.
// It stops early on exhaustion and returns the number actually claimed.
func (b *ClaimBatch) ClaimFrom(a api.SlotAllocator, n int) int {
	claimed := 0
	for ; claimed < n; claimed++ {
		idx, ok := a.Claim()
		if !ok {
			break
		}
		b.indices = append(b.indices, idx)
	}
	return claimed
}

// ReleaseAll releases every batched index back to a and resets the batch.
func (b *ClaimBatch) ReleaseAll(a api.SlotAllocator) {
	for _, idx := range b.indices {
		a.Release(idx)
	}
	b.Reset()
}

// Reset clears the batch retaining underlying storage.
func (b *ClaimBatch) Reset() {
	b.indices = b.indices[:0]
}
