package enumx

import (
	"fmt"
	"strings"
)

// Format renders the raw pattern b using the first supplied format able to
// represent it. Without arguments the order is name then decimal, which is
// total: declared values render as their canonical name, everything else as
// a number.
func (d *Info) Format(b uint64, formats ...Format) (string, error) {
	if len(formats) == 0 {
		formats = defaultFormatOrder[:]
	}
	for _, f := range formats {
		switch f {
		case FormatName:
			if s, ok := d.NameOf(b); ok {
				return s, nil
			}
		case FormatDecimal:
			return d.ops.formatDec(b), nil
		case FormatHexadecimal:
			return d.ops.formatHex(b), nil
		case FormatDescription:
			if i := d.lookupBits(b); i >= 0 {
				if v, ok := d.members[i].attr(AttrDescription); ok {
					return v, nil
				}
			}
		}
	}
	return "", fmt.Errorf("formatting %s value %s: %w",
		d.label(), d.ops.formatDec(b), ErrNotFound)
}

// FormatFlags renders b as a delimiter-joined combination of declared
// flags, ascending. Zero renders as the zero member's name when one is
// declared, else "0". A pattern the declared flags cannot reconstruct
// exactly renders as plain decimal instead.
func (d *Info) FormatFlags(b uint64, opts ...func(*ParseConfig)) string {
	var cfg ParseConfig
	for _, o := range opts {
		o(&cfg)
	}
	delim := cfg.delim
	if delim == "" {
		delim = defaultDelimiter
	}
	b &= d.ops.mask
	if b == 0 {
		if s, ok := d.NameOf(0); ok {
			return s
		}
		return "0"
	}
	if b&^d.allFlags != 0 {
		return d.ops.formatDec(b)
	}
	positions, residual := d.decompose(b)
	if residual != 0 {
		return d.ops.formatDec(b)
	}
	if len(positions) == 1 {
		return d.members[positions[0]].name
	}
	var sb strings.Builder
	for i, p := range positions {
		if i > 0 {
			sb.WriteString(delim)
		}
		sb.WriteString(d.members[p].name)
	}
	return sb.String()
}
