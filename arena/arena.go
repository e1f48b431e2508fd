// File: arena/arena.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SlotArena composes the layout planner and the slot pool allocator the way
// real callers do: size the region once, carve it once, then claim and
// release record views concurrently for the arena's whole lifetime.

package arena

import (
	"math"
	"os"
	"unsafe"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/layout"
	"github.com/momentics/hioload-mem/pool"
)

// SlotArena is a fixed pool of equal-size, alignment-aligned records inside
// one Region. Claim/Release are safe for concurrent use; construction and
// Close are not.
type SlotArena struct {
	pool      *pool.SlotPool
	region    *Region
	slots     []byte
	slotSize  uint32
	stride    uint32
	reclaimOK bool
	cfg       config
}

// NewSlotArena maps a region sized for capacity records of slotSize bytes
// each and prepares the occupancy pool. The per-record stride is slotSize
// rounded up to layout.Align, so every record view starts on the alignment
// boundary.
func NewSlotArena(capacity, slotSize uint32, opts ...Option) (*SlotArena, error) {
	if capacity == 0 {
		return nil, api.ErrInvalidCapacity
	}
	if slotSize == 0 {
		return nil, api.ErrInvalidSlotSize
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	stride := layout.AlignUp(slotSize)
	if stride < slotSize {
		return nil, api.ErrLayoutOverflow
	}

	block := uint64(stride) * uint64(capacity)
	size := layout.SizeInit()
	if block > math.MaxUint32 || !layout.SizeAdd(&size, uint32(block)) {
		return nil, api.NewError(api.ErrCodeOverflow, api.ErrLayoutOverflow.Error()).
			WithContext("capacity", capacity).
			WithContext("slotSize", slotSize)
	}

	region, err := mapRegion(int(size))
	if err != nil {
		return nil, err
	}

	cur := layout.NewCursor(region.Bytes())
	slots := cur.Advance(uint32(block))

	p, err := pool.NewSlotPool(capacity)
	if err != nil {
		_ = region.Close()
		return nil, err
	}

	pageSize := uint32(os.Getpagesize())
	reclaimOK := cfg.pageReclaim && region.Mapped() &&
		stride%pageSize == 0 &&
		uintptr(unsafe.Pointer(unsafe.SliceData(slots)))%uintptr(pageSize) == 0

	return &SlotArena{
		pool:      p,
		region:    region,
		slots:     slots,
		slotSize:  slotSize,
		stride:    stride,
		reclaimOK: reclaimOK,
		cfg:       cfg,
	}, nil
}

// Claim allocates a record and returns its index and byte view. ok is false
// on exhaustion or after Close.
func (a *SlotArena) Claim() (uint32, []byte, bool) {
	if a.region.closed {
		return 0, nil, false
	}
	idx, ok := a.pool.Claim()
	if !ok {
		return 0, nil, false
	}
	view := a.Slot(idx)
	if a.cfg.zeroOnClaim {
		layout.ZeroAligned(view)
	}
	return idx, view, true
}

// Release returns a record to the arena. When page reclaim is active the
// record's backing pages are handed back to the OS before the index becomes
// claimable again.
func (a *SlotArena) Release(index uint32) {
	if a.reclaimOK {
		off := int(index) * int(a.stride)
		a.region.reclaim(a.slots[off : off+int(a.stride)])
	}
	a.pool.Release(index)
}

// Slot returns the byte view of record index regardless of occupancy.
// Intended for owners of a claimed index and for diagnostics.
func (a *SlotArena) Slot(index uint32) []byte {
	off := int(index) * int(a.stride)
	return a.slots[off : off+int(a.slotSize) : off+int(a.stride)]
}

// SlotSize returns the usable bytes per record.
func (a *SlotArena) SlotSize() uint32 {
	return a.slotSize
}

// Stride returns the aligned distance between consecutive records.
func (a *SlotArena) Stride() uint32 {
	return a.stride
}

// Region exposes the backing region for diagnostics.
func (a *SlotArena) Region() *Region {
	return a.region
}

// Cap returns the fixed record capacity.
func (a *SlotArena) Cap() uint32 {
	return a.pool.Cap()
}

// Allocated returns the current claimed-record count.
func (a *SlotArena) Allocated() uint32 {
	return a.pool.Allocated()
}

// Stats returns the occupancy snapshot of the underlying pool.
func (a *SlotArena) Stats() api.SlotPoolStats {
	return a.pool.Stats()
}

// Close unmaps the region. Idempotent. Outstanding record views become
// invalid; Claim fails afterwards.
func (a *SlotArena) Close() error {
	if a.region.closed {
		return nil
	}
	a.slots = nil
	return a.region.Close()
}
