package enumx

import "slices"

// Flag algebra over raw width-masked patterns. These operations are pure
// bit arithmetic; only decomposition and validity consult the member set.

// HasAll reports whether every set bit of mask is set in b.
func (d *Info) HasAll(b, mask uint64) bool { return b&mask == mask }

// HasAny reports whether b and mask share a set bit.
func (d *Info) HasAny(b, mask uint64) bool { return b&mask != 0 }

// HasAllFlags reports whether b contains every declared flag bit.
func (d *Info) HasAllFlags(b uint64) bool { return b&d.allFlags == d.allFlags }

// HasAnyFlags reports whether b contains any declared flag bit.
func (d *Info) HasAnyFlags(b uint64) bool { return b&d.allFlags != 0 }

// Combine returns the union of the given patterns.
func (d *Info) Combine(bs ...uint64) uint64 {
	var acc uint64
	for _, b := range bs {
		acc |= b
	}
	return acc & d.ops.mask
}

// Remove returns b with mask's bits cleared.
func (d *Info) Remove(b, mask uint64) uint64 { return b &^ mask }

// Toggle returns b with mask's bits flipped.
func (d *Info) Toggle(b, mask uint64) uint64 {
	return (b ^ mask) & d.ops.mask
}

// ToggleAll returns b with every declared flag bit flipped. For enums
// without flag semantics the declared flag space is empty, so b comes back
// unchanged.
func (d *Info) ToggleAll(b uint64) uint64 { return b ^ d.allFlags }

// ValidFlags reports whether b uses only declared flag bits. Zero is always
// a valid combination.
func (d *Info) ValidFlags(b uint64) bool { return b&^d.allFlags == 0 }

// decompose greedily subtracts distinct declared values from b, walking
// values descending so that composite members absorb the bits of their
// parts. Returned positions are ascending, leftmost of each value run, and
// never include a zero-valued member. residual carries the bits no declared
// value covered.
func (d *Info) decompose(b uint64) (positions []int, residual uint64) {
	residual = b
	for i := len(d.members) - 1; i >= 0 && residual != 0; {
		j := i
		for j > 0 && d.members[j-1].norm == d.members[i].norm {
			j--
		}
		v := d.members[j].bits
		if v != 0 && residual&v == v {
			positions = append(positions, j)
			residual &^= v
		}
		i = j - 1
	}
	slices.Reverse(positions)
	return positions, residual
}

// FlagPatterns returns the ascending distinct declared values whose union
// is the covered part of b. Bits outside the declared flag space are
// ignored; use ValidFlags to detect them.
func (d *Info) FlagPatterns(b uint64) []uint64 {
	positions, _ := d.decompose(b & d.ops.mask)
	out := make([]uint64, len(positions))
	for i, p := range positions {
		out[i] = d.members[p].bits
	}
	return out
}
