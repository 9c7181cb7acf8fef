package naptr

import (
	"errors"
)

var (
	// ErrInvalidFormat is returned if a line does not reduce to the eight core columns.
	ErrInvalidFormat = errors.New("invalid NAPTR format")

	// ErrInvalidNumber is returned if order or preference is not a non-negative
	// integer that fits 32 bit, or 16 bit with WithStrictRange.
	ErrInvalidNumber = errors.New("invalid NAPTR number")

	// ErrUnknownField is returned by ParseField for names that are not record fields.
	ErrUnknownField = errors.New("unknown NAPTR field")

	// ErrNotConformant is returned by Record.RR if the record can't be expressed as a DNS NAPTR RR.
	ErrNotConformant = errors.New("record is not a conformant DNS NAPTR RR")
)
