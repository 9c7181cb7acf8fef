package zone

import (
	"errors"
	"fmt"

	"github.com/GoPowerDNS-Admin/naptr-editor/internal/naptr"
)

// LineError ties a rejected NAPTR line to the reason it was rejected.
type LineError struct {
	Line string
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("%v: <%s>", e.Err, e.Line)
}

func (e LineError) Unwrap() error {
	return e.Err
}

// Kind classifies the error for metrics: "format", "number" or "other".
func (e LineError) Kind() string {
	switch {
	case errors.Is(e.Err, naptr.ErrInvalidFormat):
		return "format"
	case errors.Is(e.Err, naptr.ErrInvalidNumber):
		return "number"
	default:
		return "other"
	}
}

// LoadReport summarizes one Load.
type LoadReport struct {
	Loaded       int
	Failures     []LineError
	ResponseSize *int // nil unless a MSG SIZE comment was found
}
