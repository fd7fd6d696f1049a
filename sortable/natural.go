package sortable

import "facette.io/natsort"

// Natural is a string key ordered the way a person would read it: runs of
// digits compare by numeric value, so "item-9" sorts before "item-10".
//
// Use it instead of String when keys embed counters of different widths.
// Two Natural values are equal only when their text is identical. Digit runs
// must fit in an int; longer runs compare as text and can break transitivity.
type Natural string

// Compile-time check that Natural implements Sortable[Natural].
var _ Sortable[Natural] = (*Natural)(nil)

// Equals returns true if both keys have identical text.
func (n Natural) Equals(other Natural) bool {
	return string(n) == string(other)
}

// LessThan returns true if n sorts before other in natural order. Texts
// that natural order cannot separate, such as "v2" and "v02", fall back to
// lexical order so distinct keys are never tied.
func (n Natural) LessThan(other Natural) bool {
	a, b := string(n), string(other)

	forward, backward := natsort.Compare(a, b), natsort.Compare(b, a)
	if forward != backward {
		return forward
	}

	return a < b
}
