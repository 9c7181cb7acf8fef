package zone

import (
	"errors"
)

var (
	// ErrIndexOutOfRange is returned if a record index is not within 1..Len().
	ErrIndexOutOfRange = errors.New("record index out of range")

	// ErrIO is returned if a zone file can't be read or written.
	ErrIO = errors.New("zone file i/o failed")
)
