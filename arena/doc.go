// Package arena
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity record arenas composing the layout and pool packages: one
// mapped (or heap-backed) region carved into equal-size aligned slots, with
// slot occupancy managed by the lock-free pool allocator. The arena allocates
// exactly once, at construction; claim and release paths are allocation-free.
// Platform-specific region mapping lives in region_linux.go / region_stub.go.
package arena
