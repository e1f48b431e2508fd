//go:build !linux
// +build !linux

// File: arena/region_stub.go
// Author: momentics <momentics@gmail.com>
//
// Heap-backed region for platforms without a mapping/reclaim path.

package arena

// mapRegion allocates size bytes on the Go heap.
func mapRegion(size int) (*Region, error) {
	return &Region{data: make([]byte, size)}, nil
}

func (r *Region) unmap() error {
	return nil
}

func (r *Region) reclaim(span []byte) {}
