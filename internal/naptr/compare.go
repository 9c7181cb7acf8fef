package naptr

import (
	"cmp"
	"slices"
)

// Compare orders records by Order and then by Preference, ascending.
func Compare(a, b Record) int {
	if c := cmp.Compare(a.Order, b.Order); c != 0 {
		return c
	}

	return cmp.Compare(a.Preference, b.Preference)
}

// Sort sorts records in place. Equal records keep their relative order.
func Sort(records []Record) {
	slices.SortStableFunc(records, Compare)
}
