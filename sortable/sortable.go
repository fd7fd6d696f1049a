package sortable

import (
	"github.com/amp-labs/arrange/compare"
)

// Sortable is satisfied by any type that defines a total order over its own values.
// Equals and LessThan must agree: exactly one of a.LessThan(b), b.LessThan(a) and
// a.Equals(b) holds for any pair.
type Sortable[T any] interface {
	compare.Comparable[T]
	compare.Less[T]
}

// IsSorted reports whether seq is in non-decreasing order. Empty and
// single-element sequences are sorted.
func IsSorted[T Sortable[T]](seq []T) bool {
	for i := 1; i < len(seq); i++ {
		if !compare.LessOrEqual(seq[i-1], seq[i]) {
			return false
		}
	}

	return true
}
