package enumx

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Format selects one textual representation. Parsing attempts formats in
// order until one matches; formatting emits the first format able to render
// the value.
type Format uint8

const (
	// FormatName matches declared member names.
	FormatName Format = iota
	// FormatDecimal matches decimal literals of the underlying type.
	FormatDecimal
	// FormatHexadecimal matches 0x-prefixed width-wide bit patterns.
	FormatHexadecimal
	// FormatDescription matches the description attribute text.
	FormatDescription
)

var formatNames = [...]string{"name", "decimal", "hexadecimal", "description"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "format(" + strconv.Itoa(int(f)) + ")"
}

// defaultParseFormats is the order used when the caller supplies none.
var defaultParseFormats = [...]Format{FormatName, FormatDecimal, FormatHexadecimal}

// defaultFormatOrder is the formatting counterpart; decimal is total, so a
// format call without options never fails.
var defaultFormatOrder = [...]Format{FormatName, FormatDecimal}

// defaultDelimiter separates flag tokens. Splitting trims it, so "A,B" and
// "A, B" both parse; joining emits it verbatim.
const defaultDelimiter = ", "

// ParseConfig collects parse and flag-format options. The zero value means
// exact-case names, the default delimiter and the default format order.
type ParseConfig struct {
	fold    bool
	delim   string
	formats []Format
}

// IgnoreCase makes name and description matching fall back to a
// case-insensitive declaration-order scan when the exact lookup misses.
func IgnoreCase() func(*ParseConfig) {
	return func(c *ParseConfig) { c.fold = true }
}

// WithDelimiter sets the token delimiter for flag combinations. Tokens are
// trimmed around it, and splitting uses the delimiter's trimmed form.
func WithDelimiter(d string) func(*ParseConfig) {
	return func(c *ParseConfig) { c.delim = d }
}

// WithFormats overrides the ordered formats a parse attempts or a format
// call emits.
func WithFormats(formats ...Format) func(*ParseConfig) {
	return func(c *ParseConfig) { c.formats = formats }
}

// Parse resolves a single token to a raw bit pattern, attempting each
// format in order. Numeric literals resolve whether or not the value is
// declared; a literal that overflows the width aborts the chain with
// ErrRange instead of falling through.
func (d *Info) Parse(s string, opts ...func(*ParseConfig)) (uint64, error) {
	var cfg ParseConfig
	for _, o := range opts {
		o(&cfg)
	}
	return d.parseToken(strings.TrimSpace(s), &cfg)
}

func (d *Info) parseToken(s string, cfg *ParseConfig) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("parsing %s: empty input: %w", d.label(), ErrSyntax)
	}
	formats := cfg.formats
	if len(formats) == 0 {
		formats = defaultParseFormats[:]
	}
	for _, f := range formats {
		switch f {
		case FormatName:
			if i := d.byName(s, cfg.fold); i >= 0 {
				return d.members[i].bits, nil
			}
		case FormatDecimal:
			b, err := d.ops.parseDec(s)
			if err == nil {
				return b, nil
			}
			if errors.Is(err, ErrRange) {
				return 0, fmt.Errorf("parsing %q as %s: %w", s, d.label(), ErrRange)
			}
		case FormatHexadecimal:
			b, err := d.ops.parseHex(s)
			if err == nil {
				return b, nil
			}
			if errors.Is(err, ErrRange) {
				return 0, fmt.Errorf("parsing %q as %s: %w", s, d.label(), ErrRange)
			}
		case FormatDescription:
			if i := d.byAttrText(s, AttrDescription, cfg.fold); i >= 0 {
				return d.members[i].bits, nil
			}
		}
	}
	return 0, fmt.Errorf("parsing %q as %s: %w", s, d.label(), ErrNotFound)
}

// byAttrText returns the position of the first-declared member whose key
// attribute equals text.
func (d *Info) byAttrText(text, key string, fold bool) int {
	best := -1
	for i := range d.members {
		v, ok := d.members[i].attr(key)
		if !ok {
			continue
		}
		if (v == text || (fold && strings.EqualFold(v, text))) &&
			(best < 0 || d.members[i].decl < d.members[best].decl) {
			best = i
		}
	}
	return best
}

// ParseFlags resolves a delimiter-separated combination to the union of its
// tokens' patterns. Whitespace-only input is the empty combination and
// resolves to zero; an empty token between delimiters fails with
// ErrEmptyToken.
func (d *Info) ParseFlags(s string, opts ...func(*ParseConfig)) (uint64, error) {
	var cfg ParseConfig
	for _, o := range opts {
		o(&cfg)
	}
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	delim := cfg.delim
	if delim == "" {
		delim = defaultDelimiter
	}
	if t := strings.TrimSpace(delim); t != "" {
		delim = t
	}
	var acc uint64
	for _, tok := range strings.Split(s, delim) {
		t := strings.TrimSpace(tok)
		if t == "" {
			return 0, fmt.Errorf("parsing %q as %s: %w", s, d.label(), ErrEmptyToken)
		}
		b, err := d.parseToken(t, &cfg)
		if err != nil {
			return 0, err
		}
		acc |= b
	}
	return acc, nil
}
