package swaggervalidation

import "github.com/google/go-cmp/cmp"

// containsDuplicates compares every pair of items, so duplicates are found wherever
// they are in the sequence.
func containsDuplicates(items []any) bool {
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			if equal(items[i], items[j]) {
				return true
			}
		}
	}
	return false
}

// equal compares decoded values deeply. Numbers of different Go types are equal when
// their values are.
func equal(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	return cmp.Equal(a, b)
}
