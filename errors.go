package enumx

import "errors"

// Sentinel errors returned (possibly wrapped with context) by parse and
// lookup operations. Test with errors.Is.
var (
	// ErrUndefined reports that no definition or lazy provider has been
	// installed for the requested enum type.
	ErrUndefined = errors.New("enumx: enum type not defined")

	// ErrNotFound reports that no member matched the input in any of the
	// attempted formats.
	ErrNotFound = errors.New("enumx: no matching member")

	// ErrSyntax reports malformed input, such as an empty string or a
	// numeric literal that no format recognizes.
	ErrSyntax = errors.New("enumx: invalid syntax")

	// ErrRange reports a numeric literal that does not fit the enum's
	// underlying integer width.
	ErrRange = errors.New("enumx: value out of range")

	// ErrEmptyToken reports an empty element between delimiters in a
	// flags-combination string.
	ErrEmptyToken = errors.New("enumx: empty flags token")

	// ErrNameTaken reports a registry name collision between two distinct
	// enum definitions.
	ErrNameTaken = errors.New("enumx: registry name already taken")
)
