// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer for hioload-mem.
//
// Provides concurrent-safe observability primitives:
//   - Metrics registry with slot-pool occupancy publishing
//   - Debug hooks and probe registration for live state dumps
//
// The allocator hot paths never touch this package; callers publish
// snapshots at whatever cadence suits them.
package control
