// File: pool/reclaim_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReclaimQueue_DeferHoldsSlots(t *testing.T) {
	p, err := NewSlotPool(8)
	require.NoError(t, err)
	rq := NewReclaimQueue(p)

	for i := 0; i < 8; i++ {
		idx, ok := p.Claim()
		require.True(t, ok)
		rq.Defer(idx)
	}
	assert.Equal(t, 8, rq.Pending())

	// Staged indices are still claimed: the pool stays exhausted.
	_, ok := p.Claim()
	assert.False(t, ok)

	assert.Equal(t, 3, rq.DrainN(3))
	assert.Equal(t, 5, rq.Pending())
	assert.Equal(t, uint32(5), p.Allocated())

	assert.Equal(t, 5, rq.Drain())
	assert.Equal(t, 0, rq.Pending())
	assert.Equal(t, uint32(0), p.Allocated())

	_, ok = p.Claim()
	assert.True(t, ok)
}

func TestReclaimQueue_DrainEmpty(t *testing.T) {
	p, err := NewSlotPool(4)
	require.NoError(t, err)
	rq := NewReclaimQueue(p)
	assert.Equal(t, 0, rq.Drain())
	assert.Equal(t, 0, rq.DrainN(10))
}

func TestReclaimQueue_ConcurrentDefer(t *testing.T) {
	const capacity = 256
	p, err := NewSlotPool(capacity)
	require.NoError(t, err)
	rq := NewReclaimQueue(p)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				idx, ok := p.Claim()
				if !ok {
					return
				}
				rq.Defer(idx)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, capacity, rq.Pending())
	assert.Equal(t, capacity, rq.Drain())
	assert.Equal(t, uint32(0), p.Allocated())
}
