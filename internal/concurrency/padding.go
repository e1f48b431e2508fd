// File: internal/concurrency/padding.go
// Package concurrency provides shared-memory layout primitives.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// CacheLinePad separates hot shared words so independent writers do not
// invalidate each other's cache lines. False sharing here is a throughput
// problem, never a correctness problem.

package concurrency

// CacheLineSize is the assumed cache line width in bytes. 64 covers the
// architectures this library targets; oversizing only wastes padding.
const CacheLineSize = 64

// CacheLinePad occupies one full cache line.
type CacheLinePad struct {
	_ [CacheLineSize]byte
}
