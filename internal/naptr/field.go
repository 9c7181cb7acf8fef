package naptr

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Field names one editable column of a Record.
type Field int

// Record fields in column order.
const (
	FieldZone Field = iota
	FieldTTL
	FieldClass
	FieldType
	FieldOrder
	FieldPreference
	FieldFlags
	FieldService
	FieldDelimiter
	FieldRegexp
	FieldReplacement
	FieldTerminator
)

var fieldNames = [...]string{
	FieldZone:        "zone",
	FieldTTL:         "ttl",
	FieldClass:       "class",
	FieldType:        "type",
	FieldOrder:       "order",
	FieldPreference:  "preference",
	FieldFlags:       "flags",
	FieldService:     "service",
	FieldDelimiter:   "delimiter",
	FieldRegexp:      "regexp",
	FieldReplacement: "replacement",
	FieldTerminator:  "terminator",
}

// Fields returns the names accepted by ParseField.
func Fields() []string {
	return append([]string(nil), fieldNames[:]...)
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "unknown"
	}

	return fieldNames[f]
}

// Sorting reports whether changing the field can change the record order.
func (f Field) Sorting() bool {
	return f == FieldOrder || f == FieldPreference
}

// ParseField looks a field up by its case-insensitive name.
func ParseField(name string) (Field, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for i, n := range fieldNames {
		if n == name {
			return Field(i), nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownField, "%q", name)
}

// Set replaces a single field. Numeric fields are parsed like in Parse and
// quotes are removed from flags and service. An empty zone or ttl stores the
// Placeholder. The record is left unchanged on error.
func (r *Record) Set(field Field, value string, opts ...ParseOption) error {
	value = strings.TrimSpace(value)

	switch field {
	case FieldZone:
		r.Zone = orPlaceholder(value)
	case FieldTTL:
		r.TTL = orPlaceholder(value)
	case FieldClass:
		r.Class = value
	case FieldType:
		r.Type = value
	case FieldOrder, FieldPreference:
		n, err := parseNumber(value, newParseOptions(opts).strictRange)
		if err != nil {
			return errors.Wrap(err, field.String())
		}

		if field == FieldOrder {
			r.Order = n
		} else {
			r.Preference = n
		}
	case FieldFlags:
		r.Flags = unquote(value)
	case FieldService:
		r.Service = unquote(value)
	case FieldDelimiter:
		if utf8.RuneCountInString(value) > 1 {
			return errors.Wrapf(ErrInvalidFormat, "delimiter %q is longer than one character", value)
		}

		r.Delimiter = value
	case FieldRegexp:
		r.Regexp = value
	case FieldReplacement:
		r.Replacement = value
	case FieldTerminator:
		r.Terminator = value
	default:
		return errors.Wrapf(ErrUnknownField, "%d", int(field))
	}

	return nil
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}

	return s
}
