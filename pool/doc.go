// Package pool
// Author: momentics <momentics@gmail.com>
//
// Lock-free slot allocation over an atomic bitmap. The allocator hands out
// integer slot indices from a fixed-capacity pool under any number of
// concurrent callers, using only compare-and-swap retry loops — no mutex, no
// blocking, no backoff. It tracks occupancy only; slot payload lifetime is
// the caller's concern.
//
// Two surfaces are provided: raw Claim/Release functions operating on
// caller-owned storage (static arrays, mapped regions), and the SlotPool
// handle that owns its own state and implements api.SlotAllocator.
// See slotpool.go, pool.go, batch.go, reclaim.go for implementation details.
package pool
