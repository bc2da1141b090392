package enumx

import (
	"errors"
	"testing"
)

func TestFormat_DefaultChain(t *testing.T) {
	e := parseFixture()
	if s, err := e.Format(2); err != nil || s != "Green" {
		t.Fatalf("Format(2)=%q err=%v", s, err)
	}
	// Aliased values format as the first-declared name.
	if s, _ := e.Format(1); s != "Red" {
		t.Fatalf("Format(1)=%q want Red", s)
	}
	if s, _ := e.Format(-3); s != "Blue" {
		t.Fatalf("Format(-3)=%q", s)
	}
	// Undeclared values fall through to decimal.
	if s, err := e.Format(99); err != nil || s != "99" {
		t.Fatalf("Format(99)=%q err=%v", s, err)
	}
	if s, err := e.Format(-99); err != nil || s != "-99" {
		t.Fatalf("Format(-99)=%q err=%v", s, err)
	}
}

func TestFormat_Overrides(t *testing.T) {
	e := parseFixture()
	if s, err := e.Format(2, FormatHexadecimal); err != nil || s != "0x0002" {
		t.Fatalf("hex=%q err=%v", s, err)
	}
	if s, err := e.Format(-3, FormatHexadecimal); err != nil || s != "0xFFFD" {
		t.Fatalf("hex negative=%q err=%v", s, err)
	}
	if s, err := e.Format(1, FormatDecimal); err != nil || s != "1" {
		t.Fatalf("decimal=%q err=%v", s, err)
	}
	if _, err := e.Format(99, FormatName); !errors.Is(err, ErrNotFound) {
		t.Fatalf("name-only on undeclared err=%v", err)
	}
}

func TestFormat_Description(t *testing.T) {
	e := mk([]Member[uint8]{
		{Name: "Up", Value: 1, Attrs: []Attr{Desc("moves up")}},
		{Name: "Down", Value: 2},
	})
	if s, err := e.Format(1, FormatDescription); err != nil || s != "moves up" {
		t.Fatalf("description=%q err=%v", s, err)
	}
	// Members without the attribute fall through to the next format.
	if s, err := e.Format(2, FormatDescription, FormatDecimal); err != nil || s != "2" {
		t.Fatalf("fallthrough=%q err=%v", s, err)
	}
	if _, err := e.Format(2, FormatDescription); !errors.Is(err, ErrNotFound) {
		t.Fatalf("exhausted err=%v", err)
	}
}

func flagFixture() Type[uint8] {
	return mk([]Member[uint8]{
		{Name: "None", Value: 0},
		{Name: "R", Value: 1},
		{Name: "W", Value: 2},
		{Name: "X", Value: 4},
	})
}

func TestFormatFlags_Basics(t *testing.T) {
	e := flagFixture()
	cases := []struct {
		v    uint8
		want string
	}{
		{0, "None"},
		{1, "R"},
		{3, "R, W"},
		{5, "R, X"},
		{7, "R, W, X"},
		{8, "8"},
		{9, "9"},
	}
	for _, c := range cases {
		if got := e.FormatFlags(c.v); got != c.want {
			t.Fatalf("FormatFlags(%d)=%q want %q", c.v, got, c.want)
		}
	}
	if got := e.FormatFlags(5, WithDelimiter("|")); got != "R|X" {
		t.Fatalf("custom delim=%q", got)
	}
}

func TestFormatFlags_ZeroWithoutZeroMember(t *testing.T) {
	e := mk([]Member[uint8]{
		{Name: "R", Value: 1},
		{Name: "W", Value: 2},
	})
	if got := e.FormatFlags(0); got != "0" {
		t.Fatalf("FormatFlags(0)=%q", got)
	}
}

func TestFormatFlags_CompositeAbsorption(t *testing.T) {
	e := mk([]Member[uint8]{
		{Name: "A", Value: 1},
		{Name: "B", Value: 2},
		{Name: "AB", Value: 3},
	}, WithFlags())
	if got := e.FormatFlags(3); got != "AB" {
		t.Fatalf("FormatFlags(3)=%q want AB", got)
	}
	if got := e.FormatFlags(1); got != "A" {
		t.Fatalf("FormatFlags(1)=%q", got)
	}
}

func TestFormatFlags_InexactFallsBackToDecimal(t *testing.T) {
	e := mk([]Member[uint8]{
		{Name: "A", Value: 1},
		{Name: "B", Value: 6},
	}, WithFlags())
	// 3 is inside the flag space but 1|6 cannot reconstruct it exactly.
	if got := e.FormatFlags(3); got != "3" {
		t.Fatalf("FormatFlags(3)=%q want 3", got)
	}
}

func TestFormatFlags_NonFlagEnum(t *testing.T) {
	e := mk([]Member[uint8]{
		{Name: "A", Value: 1},
		{Name: "B", Value: 3},
	})
	if got := e.FormatFlags(1); got != "1" {
		t.Fatalf("FormatFlags(1)=%q", got)
	}
	if got := e.FormatFlags(0); got != "0" {
		t.Fatalf("FormatFlags(0)=%q", got)
	}
}

func TestFormatFlags_ParseRoundTrip(t *testing.T) {
	e := flagFixture()
	for v := uint8(0); v < 8; v++ {
		s := e.FormatFlags(v)
		got, err := e.ParseFlags(s)
		if err != nil || got != v {
			t.Fatalf("ParseFlags(FormatFlags(%d)=%q)=%d err=%v", v, s, got, err)
		}
	}
	// Custom delimiters round-trip the same way.
	s := e.FormatFlags(7, WithDelimiter(" | "))
	got, err := e.ParseFlags(s, WithDelimiter(" | "))
	if err != nil || got != 7 {
		t.Fatalf("padded delim round trip %q=%d err=%v", s, got, err)
	}
}
