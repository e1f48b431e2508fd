//go:build linux
// +build linux

// File: arena/region_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific region mapping: anonymous private mmap, with
// MADV_DONTNEED-based page reclamation on slot release.

package arena

import (
	"golang.org/x/sys/unix"
)

// mapRegion maps size bytes of zeroed, page-aligned memory.
// Falls back to the Go heap if the mapping fails.
func mapRegion(size int) (*Region, error) {
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return &Region{data: make([]byte, size)}, nil
	}
	return &Region{data: data[:size], mapped: true}, nil
}

// unmap returns the mapping to the OS. Heap-backed regions are left to GC.
func (r *Region) unmap() error {
	if !r.mapped {
		return nil
	}
	return unix.Munmap(r.data)
}

// reclaim tells the kernel the given page-aligned span is no longer needed.
// The virtual range stays valid and reads back as zeros on next touch.
func (r *Region) reclaim(span []byte) {
	if !r.mapped || len(span) == 0 {
		return
	}
	_ = unix.Madvise(span, unix.MADV_DONTNEED)
}
