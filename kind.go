package enumx

import (
	"errors"
	"strconv"
	"unsafe"
)

// Kind identifies the underlying integer type of an enum.
type Kind uint8

const (
	Int8 Kind = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
)

var kindNames = [...]string{
	"int8", "int16", "int32", "int64",
	"uint8", "uint16", "uint32", "uint64",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Bits returns the width of the underlying type in bits.
func (k Kind) Bits() int { return kindOps[k].bits }

// Signed reports whether the underlying type is signed.
func (k Kind) Signed() bool { return k <= Int64 }

// intOps carries the width- and signedness-specific operations for one
// underlying type. All descriptor code works on uint64 bit patterns; the
// ops entry is what gives those patterns their integer meaning.
//
// sign doubles as the signedness marker: it is the width's sign bit for
// signed kinds and zero for unsigned ones, so norm and denorm reduce to a
// single XOR for every kind.
type intOps struct {
	kind Kind
	bits int    // width in bits, also the strconv bitSize
	mask uint64 // low `bits` bits set
	sign uint64 // sign bit of the width, 0 when unsigned
}

var kindOps = [...]intOps{
	Int8:   {Int8, 8, 1<<8 - 1, 1 << 7},
	Int16:  {Int16, 16, 1<<16 - 1, 1 << 15},
	Int32:  {Int32, 32, 1<<32 - 1, 1 << 31},
	Int64:  {Int64, 64, ^uint64(0), 1 << 63},
	Uint8:  {Uint8, 8, 1<<8 - 1, 0},
	Uint16: {Uint16, 16, 1<<16 - 1, 0},
	Uint32: {Uint32, 32, 1<<32 - 1, 0},
	Uint64: {Uint64, 64, ^uint64(0), 0},
}

// opsOf selects the operations entry matching E's size and signedness.
// Both probes collapse to constants at instantiation.
func opsOf[E Integer]() *intOps {
	var zero E
	var k Kind
	switch unsafe.Sizeof(zero) {
	case 1:
		k = Int8
	case 2:
		k = Int16
	case 4:
		k = Int32
	default:
		k = Int64
	}
	if ^zero > zero { // ^0 wraps to the maximum only for unsigned types
		k += Uint8 - Int8
	}
	return &kindOps[k]
}

// norm maps a raw width-masked pattern to its order-normalized form:
// flipping the sign bit of signed kinds makes plain uint64 comparison agree
// with the typed order. Unsigned kinds pass through unchanged.
func (o *intOps) norm(b uint64) uint64 { return b ^ o.sign }

// denorm is the inverse of norm.
func (o *intOps) denorm(n uint64) uint64 { return n ^ o.sign }

// compare orders two raw patterns as the underlying type would.
func (o *intOps) compare(a, b uint64) int {
	na, nb := a^o.sign, b^o.sign
	switch {
	case na < nb:
		return -1
	case na > nb:
		return 1
	}
	return 0
}

// sext sign-extends a width-masked pattern to int64.
func (o *intOps) sext(b uint64) int64 {
	s := 64 - uint(o.bits)
	return int64(b<<s) >> s
}

// parseDec parses a decimal literal. Values outside the width fail with
// ErrRange rather than wrapping.
func (o *intOps) parseDec(s string) (uint64, error) {
	if o.sign != 0 {
		v, err := strconv.ParseInt(s, 10, o.bits)
		if err != nil {
			return 0, numError(err)
		}
		return uint64(v) & o.mask, nil
	}
	v, err := strconv.ParseUint(s, 10, o.bits)
	if err != nil {
		return 0, numError(err)
	}
	return v, nil
}

// parseHex parses a 0x- or 0X-prefixed hexadecimal literal as a raw
// width-wide bit pattern. Signed kinds reinterpret the pattern, so "0xFF"
// parses as -1 for an int8 enum instead of failing.
func (o *intOps) parseHex(s string) (uint64, error) {
	if len(s) < 3 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return 0, ErrSyntax
	}
	v, err := strconv.ParseUint(s[2:], 16, o.bits)
	if err != nil {
		return 0, numError(err)
	}
	return v, nil
}

func (o *intOps) formatDec(b uint64) string {
	if o.sign != 0 {
		return strconv.FormatInt(o.sext(b), 10)
	}
	return strconv.FormatUint(b, 10)
}

const hexDigits = "0123456789ABCDEF"

// formatHex renders the raw pattern as 0x-prefixed upper-case hex,
// zero-padded to the full width so parseHex round-trips it exactly.
func (o *intOps) formatHex(b uint64) string {
	digits := o.bits >> 2
	buf := make([]byte, 2+digits)
	buf[0], buf[1] = '0', 'x'
	for i := 1 + digits; i >= 2; i-- {
		buf[i] = hexDigits[b&0xf]
		b >>= 4
	}
	return string(buf)
}

// numError collapses a strconv failure to the package sentinels.
func numError(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return ErrRange
	}
	return ErrSyntax
}
