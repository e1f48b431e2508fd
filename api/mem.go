// File: api/mem.go
// Author: momentics <momentics@gmail.com>
//
// Slot allocation contracts. A slot allocator hands out integer indices from
// a bounded pool; it tracks occupancy only, never slot payload.

package api

// SlotAllocator claims and releases fixed slot indices from a bounded pool.
// Implementations must be safe for any number of concurrent callers and must
// never block: exhaustion is reported through the ok result, not by waiting.
type SlotAllocator interface {
	// Claim returns a free slot index in [0, Cap()) with ok == true, or
	// ok == false when the pool is exhausted. A returned index is exclusively
	// owned by the caller until passed to Release.
	Claim() (uint32, bool)

	// Release marks a previously claimed index as free again. Releasing an
	// index that is not currently claimed is a caller contract violation.
	Release(index uint32)

	// Cap returns the fixed pool capacity.
	Cap() uint32

	// Allocated returns the number of currently claimed slots. The value may
	// be transiently stale while claims or releases are in flight.
	Allocated() uint32

	// Stats exposes occupancy counters for observability.
	Stats() SlotPoolStats
}

// SlotPoolStats is a point-in-time snapshot of pool occupancy.
// Snapshots are approximate under concurrent mutation.
type SlotPoolStats struct {
	Capacity  uint32
	Allocated uint32
	Hint      uint32
}

// InUse reports the fraction of claimed slots, in [0, 1].
func (s SlotPoolStats) InUse() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Allocated) / float64(s.Capacity)
}
