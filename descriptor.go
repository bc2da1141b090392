package enumx

import (
	"cmp"
	"math/bits"
	"slices"
	"strings"
)

// Config collects definition options. Zero value means: unregistered, flag
// semantics auto-detected.
type Config struct {
	name  string
	flags bool
}

// WithName registers the definition in the package registry under name, so
// dynamic callers can find it without the Go type. Names are unique; a
// second definition claiming a taken name panics.
func WithName(name string) func(*Config) {
	return func(c *Config) { c.name = name }
}

// WithFlags marks the enum as a flag set even when its values alone would
// not classify it as one.
func WithFlags() func(*Config) {
	return func(c *Config) { c.flags = true }
}

// Info is the erased runtime descriptor of one enum definition: members in
// sorted value order, the derived lookup structures, and classification
// bits. A published Info is immutable and safe for concurrent use without
// synchronization.
//
// The sorted order is stable with respect to declaration, which is what the
// alias tie-breaks lean on: among members sharing a value the leftmost is
// the first declared.
type Info struct {
	name       string
	ops        *intOps
	members    []member
	names      nameIndex
	typed      any // sorted []Member[E], index-aligned with members
	allFlags   uint64
	contiguous bool
	flags      bool
}

// buildInfo derives a descriptor from erased members. ms is owned by the
// callee; decl indexes must already be assigned in declaration order.
func buildInfo(ops *intOps, ms []member, cfg *Config) *Info {
	slices.SortStableFunc(ms, func(a, b member) int {
		return cmp.Compare(a.norm, b.norm)
	})
	d := &Info{
		name:    cfg.name,
		ops:     ops,
		members: ms,
	}
	contiguous := len(ms) > 0
	pow2 := false
	if len(ms) > 0 {
		pow2 = bits.OnesCount64(ms[0].bits) <= 1
		d.allFlags = ms[0].bits
	}
	for i := 1; i < len(ms); i++ {
		if ms[i].norm == ms[i-1].norm {
			continue
		}
		if ms[i].norm != ms[i-1].norm+1 {
			contiguous = false
		}
		if bits.OnesCount64(ms[i].bits) > 1 {
			pow2 = false
		}
		d.allFlags |= ms[i].bits
	}
	d.contiguous = contiguous
	d.flags = cfg.flags || (len(ms) > 0 && pow2)
	if !d.flags {
		d.allFlags = 0
	}
	d.names = buildNameIndex(ms)
	return d
}

// ==== classification accessors ====

// Name returns the registry name given via WithName, or "".
func (d *Info) Name() string { return d.name }

// Kind returns the underlying integer type.
func (d *Info) Kind() Kind { return d.ops.kind }

// Len returns the number of declared members, aliases included.
func (d *Info) Len() int { return len(d.members) }

// IsFlags reports whether the enum carries flag semantics, either detected
// (every declared value is zero or a single bit) or forced via WithFlags.
func (d *Info) IsFlags() bool { return d.flags }

// IsContiguous reports whether the distinct declared values form an
// unbroken run. Contiguous enums answer IsDefined with two comparisons.
func (d *Info) IsContiguous() bool { return d.contiguous }

// AllFlags returns the union of all declared values for flag enums, and 0
// for anything else.
func (d *Info) AllFlags() uint64 { return d.allFlags }

// Names returns the member names in sorted value order, aliases included.
func (d *Info) Names() []string {
	out := make([]string, len(d.members))
	for i := range d.members {
		out[i] = d.members[i].name
	}
	return out
}

// ==== lookups ====

// firstByNorm returns the leftmost sorted position holding the normalized
// value n, or -1. Leftmost is what makes duplicate values resolve to the
// first-declared member.
func (d *Info) firstByNorm(n uint64) int {
	lo, hi := 0, len(d.members)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if d.members[mid].norm < n {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(d.members) && d.members[lo].norm == n {
		return lo
	}
	return -1
}

// lookupBits returns the leftmost sorted position holding the raw pattern
// b, or -1.
func (d *Info) lookupBits(b uint64) int {
	return d.firstByNorm(d.ops.norm(b))
}

// byName returns the sorted position for name. Exact matches come from the
// index; with fold set, a miss falls back to a declaration-order scan that
// compares case-insensitively.
func (d *Info) byName(name string, fold bool) int {
	if i := d.names.lookup(d.members, name); i >= 0 {
		return i
	}
	if fold {
		best := -1
		for i := range d.members {
			if strings.EqualFold(d.members[i].name, name) &&
				(best < 0 || d.members[i].decl < d.members[best].decl) {
				best = i
			}
		}
		return best
	}
	return -1
}

// NameOf returns the canonical name for the raw pattern b: the name of the
// first-declared member carrying that exact value.
func (d *Info) NameOf(b uint64) (string, bool) {
	if i := d.lookupBits(b); i >= 0 {
		return d.members[i].name, true
	}
	return "", false
}

// ValueOf returns the raw pattern bound to name, exact match only.
func (d *Info) ValueOf(name string) (uint64, bool) {
	if i := d.names.lookup(d.members, name); i >= 0 {
		return d.members[i].bits, true
	}
	return 0, false
}

// IsDefined reports whether b equals some declared member value.
func (d *Info) IsDefined(b uint64) bool {
	if len(d.members) == 0 {
		return false
	}
	n := d.ops.norm(b)
	if d.contiguous {
		return n >= d.members[0].norm && n <= d.members[len(d.members)-1].norm
	}
	return d.firstByNorm(n) >= 0
}

// AttrOf returns the attribute value under key for the first-declared
// member equal to b. Alias attributes are not consulted.
func (d *Info) AttrOf(b uint64, key string) (string, bool) {
	if i := d.lookupBits(b); i >= 0 {
		return d.members[i].attr(key)
	}
	return "", false
}

// Compare orders two raw patterns as the underlying typed values, returning
// -1, 0 or 1.
func (d *Info) Compare(a, b uint64) int { return d.ops.compare(a, b) }

// label names the enum in error messages.
func (d *Info) label() string {
	if d.name != "" {
		return d.name
	}
	return d.ops.kind.String() + " enum"
}
