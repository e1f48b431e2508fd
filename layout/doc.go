// Package layout
// Author: momentics <momentics@gmail.com>
//
// Pure arithmetic for packing aligned sub-structures into one pre-existing
// flat buffer. A sizing pass (SizeInit/SizeAdd) computes the total byte count
// for a sequence of sub-structures; a carving pass (Cursor or AlignAdvance)
// replays the same sequence against a concrete base address and yields
// aligned, non-overlapping views that always fit within the computed total.
// No function in this package allocates or performs IO.
package layout
