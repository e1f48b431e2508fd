// File: arena/options.go
// Package arena defines functional options for SlotArena construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package arena

// Option customizes SlotArena initialization.
type Option func(*config)

type config struct {
	zeroOnClaim bool
	pageReclaim bool
}

// WithZeroOnClaim zeroes a slot's bytes before Claim returns it. Mapped
// regions start zeroed and reclaimed pages read back as zeros, so this only
// costs anything for slots reused without an intervening reclaim.
func WithZeroOnClaim() Option {
	return func(c *config) {
		c.zeroOnClaim = true
	}
}

// WithPageReclaim advises the OS to drop a slot's backing pages on release.
// Effective only when the region is mapped and the slot stride is a whole
// number of pages; otherwise it is silently inert.
func WithPageReclaim() Option {
	return func(c *config) {
		c.pageReclaim = true
	}
}
