package enumx

import (
	"fmt"
	"slices"
	"strconv"
)

// Type is the typed view over a published descriptor. The zero Type is not
// usable; obtain one from Define, DefineLazy combined with Of, or Lookup.
// Values are cheap to copy and safe for concurrent use.
type Type[E Integer] struct {
	info *Info
}

// Info returns the erased descriptor backing t, for dynamic callers.
func (t Type[E]) Info() *Info { return t.info }

// bits converts a typed value to its raw width-masked pattern. Negative
// values sign-extend through uint64 first, so masking recovers the exact
// width-wide pattern.
func (t Type[E]) bits(v E) uint64 { return uint64(v) & t.info.ops.mask }

// value reinterprets a raw pattern as the typed value; the conversion
// truncates to E's width, which for signed kinds restores the sign.
func (t Type[E]) value(b uint64) E { return E(b) }

// ==== declaration accessors ====

// Name returns the registry name given at definition, or "".
func (t Type[E]) Name() string { return t.info.name }

// Kind returns the underlying integer type.
func (t Type[E]) Kind() Kind { return t.info.ops.kind }

// Len returns the number of declared members, aliases included.
func (t Type[E]) Len() int { return len(t.info.members) }

// IsFlags reports whether the enum carries flag semantics.
func (t Type[E]) IsFlags() bool { return t.info.flags }

// IsContiguous reports whether the distinct values form an unbroken run.
func (t Type[E]) IsContiguous() bool { return t.info.contiguous }

// Names returns the member names in sorted value order.
func (t Type[E]) Names() []string { return t.info.Names() }

// Members returns the members in sorted value order, aliases included. The
// slice is fresh per call; attribute slices are shared with the descriptor
// and must be treated as read-only.
func (t Type[E]) Members() []Member[E] {
	return slices.Clone(t.info.typed.([]Member[E]))
}

// Values returns the declared values in sorted order, aliases included.
func (t Type[E]) Values() []E {
	out := make([]E, len(t.info.members))
	for i := range t.info.members {
		out[i] = t.value(t.info.members[i].bits)
	}
	return out
}

// Min returns the smallest declared value.
func (t Type[E]) Min() (E, bool) {
	if len(t.info.members) == 0 {
		return 0, false
	}
	return t.value(t.info.members[0].bits), true
}

// Max returns the largest declared value.
func (t Type[E]) Max() (E, bool) {
	n := len(t.info.members)
	if n == 0 {
		return 0, false
	}
	return t.value(t.info.members[n-1].bits), true
}

// ==== lookups ====

// NameOf returns the canonical name of v: among members sharing the value,
// the first declared.
func (t Type[E]) NameOf(v E) (string, bool) {
	return t.info.NameOf(t.bits(v))
}

// MustNameOf is NameOf panicking when v is undeclared.
func (t Type[E]) MustNameOf(v E) string {
	s, ok := t.NameOf(v)
	if !ok {
		panic(fmt.Errorf("naming %s value %s: %w",
			t.info.label(), t.info.ops.formatDec(t.bits(v)), ErrNotFound))
	}
	return s
}

// ValueOf returns the value bound to name, exact match only.
func (t Type[E]) ValueOf(name string) (E, bool) {
	b, ok := t.info.ValueOf(name)
	if !ok {
		return 0, false
	}
	return t.value(b), true
}

// IsDefined reports whether v equals some declared member value.
func (t Type[E]) IsDefined(v E) bool { return t.info.IsDefined(t.bits(v)) }

// MemberOf returns the member declaring v: among members sharing the
// value, the first declared.
func (t Type[E]) MemberOf(v E) (Member[E], bool) {
	i := t.info.lookupBits(t.bits(v))
	if i < 0 {
		return Member[E]{}, false
	}
	return t.info.typed.([]Member[E])[i], true
}

// AttrOf returns v's attribute under key, taken from the first-declared
// member with that value.
func (t Type[E]) AttrOf(v E, key string) (string, bool) {
	return t.info.AttrOf(t.bits(v), key)
}

// Compare orders two values as the underlying type does, returning -1, 0
// or 1.
func (t Type[E]) Compare(a, b E) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// ==== text ====

// Parse resolves a single token to a value of E. See Info.Parse for the
// format chain semantics.
func (t Type[E]) Parse(s string, opts ...func(*ParseConfig)) (E, error) {
	b, err := t.info.Parse(s, opts...)
	if err != nil {
		return 0, err
	}
	return t.value(b), nil
}

// MustParse is Parse panicking on error, for initialization-time literals.
func (t Type[E]) MustParse(s string, opts ...func(*ParseConfig)) E {
	v, err := t.Parse(s, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseFlags resolves a delimiter-separated combination to the union of
// its tokens.
func (t Type[E]) ParseFlags(s string, opts ...func(*ParseConfig)) (E, error) {
	b, err := t.info.ParseFlags(s, opts...)
	if err != nil {
		return 0, err
	}
	return t.value(b), nil
}

// MustParseFlags is ParseFlags panicking on error.
func (t Type[E]) MustParseFlags(s string, opts ...func(*ParseConfig)) E {
	v, err := t.ParseFlags(s, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Format renders v using the first supplied format able to represent it,
// defaulting to name then decimal.
func (t Type[E]) Format(v E, formats ...Format) (string, error) {
	return t.info.Format(t.bits(v), formats...)
}

// FormatFlags renders v as a delimiter-joined flag combination.
func (t Type[E]) FormatFlags(v E, opts ...func(*ParseConfig)) string {
	return t.info.FormatFlags(t.bits(v), opts...)
}

// ==== flag algebra ====

// AllFlags returns the union of all declared values for flag enums, and
// zero otherwise.
func (t Type[E]) AllFlags() E { return t.value(t.info.allFlags) }

// HasAll reports whether every set bit of mask is set in v.
func (t Type[E]) HasAll(v, mask E) bool {
	return t.info.HasAll(t.bits(v), t.bits(mask))
}

// HasAny reports whether v and mask share a set bit.
func (t Type[E]) HasAny(v, mask E) bool {
	return t.info.HasAny(t.bits(v), t.bits(mask))
}

// HasAllFlags reports whether v contains every declared flag bit.
func (t Type[E]) HasAllFlags(v E) bool {
	return t.info.HasAllFlags(t.bits(v))
}

// HasAnyFlags reports whether v contains any declared flag bit.
func (t Type[E]) HasAnyFlags(v E) bool {
	return t.info.HasAnyFlags(t.bits(v))
}

// Combine returns the union of the given values.
func (t Type[E]) Combine(vs ...E) E {
	var acc uint64
	for _, v := range vs {
		acc |= t.bits(v)
	}
	return t.value(acc)
}

// Remove returns v with mask's bits cleared.
func (t Type[E]) Remove(v, mask E) E {
	return t.value(t.info.Remove(t.bits(v), t.bits(mask)))
}

// Toggle returns v with mask's bits flipped.
func (t Type[E]) Toggle(v, mask E) E {
	return t.value(t.info.Toggle(t.bits(v), t.bits(mask)))
}

// ToggleAll returns v with every declared flag bit flipped.
func (t Type[E]) ToggleAll(v E) E {
	return t.value(t.info.ToggleAll(t.bits(v)))
}

// ValidFlags reports whether v uses only declared flag bits.
func (t Type[E]) ValidFlags(v E) bool {
	return t.info.ValidFlags(t.bits(v))
}

// Flags decomposes v into the ascending distinct declared values whose
// union is v's covered part. Zero-valued members never appear.
func (t Type[E]) Flags(v E) []E {
	positions, _ := t.info.decompose(t.bits(v))
	out := make([]E, len(positions))
	for i, p := range positions {
		out[i] = t.value(t.info.members[p].bits)
	}
	return out
}

// FlagMembers is Flags returning the full member views instead of bare
// values.
func (t Type[E]) FlagMembers(v E) []Member[E] {
	positions, _ := t.info.decompose(t.bits(v))
	tv := t.info.typed.([]Member[E])
	out := make([]Member[E], len(positions))
	for i, p := range positions {
		out[i] = tv[p]
	}
	return out
}

// newInfo converts a typed declaration into an erased descriptor, builds
// the index structures and attaches the typed views. Declaration indexes
// follow slice order.
func newInfo[E Integer](defs []Member[E], cfg *Config) *Info {
	ops := opsOf[E]()
	ms := make([]member, len(defs))
	for i := range defs {
		if defs[i].Name == "" {
			panic("enumx: member " + strconv.Itoa(i) + " has an empty name")
		}
		b := uint64(defs[i].Value) & ops.mask
		ms[i] = member{
			bits:  b,
			norm:  ops.norm(b),
			name:  defs[i].Name,
			attrs: slices.Clone(defs[i].Attrs),
			decl:  int32(i),
		}
	}
	d := buildInfo(ops, ms, cfg)
	typed := make([]Member[E], len(d.members))
	for i := range d.members {
		m := &d.members[i]
		typed[i] = Member[E]{Name: m.name, Value: E(m.bits), Attrs: m.attrs}
	}
	d.typed = typed
	return d
}
