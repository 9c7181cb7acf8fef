package naptr

import (
	"strconv"
	"strings"
)

// Placeholder is stored in Zone and TTL when the column was omitted.
const Placeholder = " "

const (
	// DefaultTTL is the TTL the record templates start with.
	DefaultTTL = "60"

	// DefaultDelimiter separates the parts of the substitution expression of new records.
	DefaultDelimiter = "!"

	// DefaultTerminator is the replacement domain of new records.
	DefaultTerminator = "."

	terminalOrder    = 100
	nonTerminalOrder = 32767
	defaultPref      = 50
)

// Record is one NAPTR resource record line.
type Record struct {
	Zone        string // owner name or Placeholder
	TTL         string // TTL column or Placeholder
	Class       string
	Type        string
	Order       uint32
	Preference  uint32
	Flags       string // stored without quotes
	Service     string // stored without quotes
	Delimiter   string
	Regexp      string
	Replacement string
	Terminator  string
}

// NewTerminal returns the template used for newly created terminal records:
// flag "U", a catch-all regexp and "!" as delimiter.
func NewTerminal() Record {
	return Record{
		Zone:        Placeholder,
		TTL:         DefaultTTL,
		Class:       "IN",
		Type:        "NAPTR",
		Order:       terminalOrder,
		Preference:  defaultPref,
		Flags:       "U",
		Regexp:      "^.*$",
		Delimiter:   DefaultDelimiter,
		Terminator:  DefaultTerminator,
		Service:     "",
		Replacement: "",
	}
}

// NewNonTerminal returns the template for non-terminal records. They sort
// after terminal ones and carry an empty substitution expression.
func NewNonTerminal() Record {
	r := NewTerminal()
	r.Order = nonTerminalOrder
	r.Regexp = ""
	r.Delimiter = ""

	return r
}

// HasZone reports whether the owner column was present.
func (r Record) HasZone() bool {
	return strings.TrimSpace(r.Zone) != ""
}

// HasTTL reports whether the TTL column was present.
func (r Record) HasTTL() bool {
	return strings.TrimSpace(r.TTL) != ""
}

// RegexpField renders the combined substitution expression without quotes.
func (r Record) RegexpField() string {
	d := r.Delimiter

	return d + r.Regexp + d + r.Replacement + d
}

// Content renders the RDATA columns, i.e. the record without owner, TTL,
// class and type.
func (r Record) Content() string {
	var b strings.Builder

	b.WriteString(strconv.FormatUint(uint64(r.Order), 10))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatUint(uint64(r.Preference), 10))
	b.WriteString(` "` + r.Flags + `"`)
	b.WriteString(` "` + r.Service + `"`)
	b.WriteString(` "` + r.RegexpField() + `"`)
	b.WriteByte(' ')
	b.WriteString(r.Terminator)

	return b.String()
}

// String serializes the record to the ten column line form.
func (r Record) String() string {
	return strings.Join([]string{r.Zone, r.TTL, r.Class, r.Type, r.Content()}, " ")
}
