// File: arena/region.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Region is a flat byte range backing an arena. On Linux it is an anonymous
// private mapping so unused pages can be returned to the OS; elsewhere it
// falls back to the Go heap. Concrete mapping code resides in the
// platform-specific files.

package arena

// Region owns one contiguous byte range for the lifetime of an arena.
type Region struct {
	data   []byte
	mapped bool
	closed bool
}

// Bytes returns the full backing range. The returned slice is invalidated by
// Close.
func (r *Region) Bytes() []byte {
	return r.data
}

// Len returns the region size in bytes.
func (r *Region) Len() int {
	return len(r.data)
}

// Mapped reports whether the region is OS-mapped rather than heap-backed.
func (r *Region) Mapped() bool {
	return r.mapped
}

// Close releases the backing storage. Close is idempotent; all views into
// the region become invalid after the first call.
func (r *Region) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	err := r.unmap()
	r.data = nil
	return err
}
