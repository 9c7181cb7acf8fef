package naptr

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	coreColumns = 8
	ttlColumns  = coreColumns + 1
	fullColumns = ttlColumns + 1
)

// ParseOption modifies how Parse treats a line.
type ParseOption func(*parseOptions)

type parseOptions struct {
	strictRange bool
}

// WithStrictRange rejects order and preference values that do not fit the
// 16 bit fields of the DNS wire format.
func WithStrictRange() ParseOption {
	return func(o *parseOptions) {
		o.strictRange = true
	}
}

func newParseOptions(opts []ParseOption) parseOptions {
	var o parseOptions

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Parse decodes one NAPTR line. On error the returned Record is the zero value.
func Parse(line string, opts ...ParseOption) (Record, error) {
	var (
		o      = newParseOptions(opts)
		tokens = strings.Fields(line)
		r      = Record{Zone: Placeholder, TTL: Placeholder}
		err    error
	)

	// the optional leading columns are told apart by count only
	switch len(tokens) {
	case fullColumns:
		r.Zone, r.TTL, tokens = tokens[0], tokens[1], tokens[2:]
	case ttlColumns:
		r.TTL, tokens = tokens[0], tokens[1:]
	case coreColumns:
	default:
		return Record{}, errors.Wrapf(ErrInvalidFormat,
			"expected %d to %d columns, got %d", coreColumns, fullColumns, len(tokens))
	}

	r.Class = tokens[0]
	r.Type = tokens[1]

	if r.Order, err = parseNumber(tokens[2], o.strictRange); err != nil {
		return Record{}, errors.Wrap(err, "order")
	}

	if r.Preference, err = parseNumber(tokens[3], o.strictRange); err != nil {
		return Record{}, errors.Wrap(err, "preference")
	}

	r.Flags = unquote(tokens[4])
	r.Service = unquote(tokens[5])
	r.Delimiter, r.Regexp, r.Replacement = splitRegexpField(tokens[6])
	r.Terminator = tokens[7]

	return r, nil
}

func parseNumber(s string, strict bool) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidNumber, "%q", s)
	}

	if strict && n > math.MaxUint16 {
		return 0, errors.Wrapf(ErrInvalidNumber, "%d exceeds %d", n, math.MaxUint16)
	}

	return uint32(n), nil
}

func unquote(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}

// splitRegexpField decomposes the quoted substitution expression. The
// delimiter is the second character of the raw token, which is the one
// following the opening quote. Missing trailing parts are returned empty.
func splitRegexpField(raw string) (delimiter, regexp, replacement string) {
	stripped := unquote(raw)
	if utf8.RuneCountInString(stripped) <= 2 {
		return "", "", ""
	}

	delimiter = string([]rune(raw)[1])
	parts := dropTrailingEmpty(strings.Split(stripped, delimiter))

	// parts[0] is whatever precedes the first delimiter and is discarded
	return delimiter, part(parts, 1), part(parts, 2)
}

func dropTrailingEmpty(parts []string) []string {
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	return parts
}

func part(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}

	return ""
}
