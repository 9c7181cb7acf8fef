// Package naptr implements the textual codec for single-line DNS NAPTR
// resource records as they appear in the zone files handled by naptr-editor.
//
// A record line has eight core columns, optionally preceded by a TTL column
// and an owner column:
//
//	[zone] [ttl] class type order preference "flags" "service" "{d}{regexp}{d}{replacement}{d}" terminator
//
// Which of the optional columns are present is decided by the column count
// alone: ten columns carry both, nine columns carry the TTL only and eight
// carry neither. Any other count is rejected with ErrInvalidFormat.
//
// Serialization always emits the ten column form. Omitted columns are
// written as Placeholder, so a record parsed from a short line does not
// round-trip to the same text.
//
// Records are ordered by (Order, Preference), both compared numerically.
package naptr
