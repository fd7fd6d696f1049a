// Package compare holds the equality and ordering constraints that sortable
// keys are built from, plus the comparison helpers the sort algorithms use.
package compare

// Comparable is implemented by types that decide equality among their own
// values. Equality here means "same position in the order", not identity.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Less is implemented by types that define a strict "less than" over their
// own values.
type Less[T any] interface {
	LessThan(other T) bool
}

// LessOrEqual reports whether a may precede b in a non-decreasing sequence.
func LessOrEqual[T Less[T]](a, b T) bool {
	return !b.LessThan(a)
}

// Greater reports whether a sorts strictly after b.
func Greater[T Less[T]](a, b T) bool {
	return b.LessThan(a)
}
