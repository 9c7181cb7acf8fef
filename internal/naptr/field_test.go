package naptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	for i, name := range Fields() {
		f, err := ParseField(name)
		require.NoError(t, err)
		assert.Equal(t, Field(i), f)
		assert.Equal(t, name, f.String())
	}

	f, err := ParseField(" Preference ")
	require.NoError(t, err)
	assert.Equal(t, FieldPreference, f)

	_, err = ParseField("weight")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestRecord_Set(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value string
		want  func(r *Record)
	}{
		{"order", FieldOrder, "7\n", func(r *Record) { r.Order = 7 }},
		{"preference", FieldPreference, "8", func(r *Record) { r.Preference = 8 }},
		{"service unquoted", FieldService, `"E2U+email"`, func(r *Record) { r.Service = "E2U+email" }},
		{"blank ttl", FieldTTL, "", func(r *Record) { r.TTL = Placeholder }},
		{"zone", FieldZone, "a.example.", func(r *Record) { r.Zone = "a.example." }},
		{"delimiter", FieldDelimiter, "/", func(r *Record) { r.Delimiter = "/" }},
		{"replacement", FieldReplacement, "mailto:x@y", func(r *Record) { r.Replacement = "mailto:x@y" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NewTerminal()
			want := NewTerminal()
			tc.want(&want)

			require.NoError(t, got.Set(tc.field, tc.value))
			assert.Equal(t, want, got)
		})
	}
}

func TestRecord_SetErrors(t *testing.T) {
	r := NewTerminal()

	assert.ErrorIs(t, r.Set(FieldOrder, "abc"), ErrInvalidNumber)
	assert.ErrorIs(t, r.Set(FieldPreference, "65536", WithStrictRange()), ErrInvalidNumber)
	assert.ErrorIs(t, r.Set(FieldDelimiter, "!!"), ErrInvalidFormat)
	assert.ErrorIs(t, r.Set(Field(99), "x"), ErrUnknownField)
	assert.Equal(t, NewTerminal(), r)
}

func TestField_Sorting(t *testing.T) {
	assert.True(t, FieldOrder.Sorting())
	assert.True(t, FieldPreference.Sorting())
	assert.False(t, FieldService.Sorting())
}
