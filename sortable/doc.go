// Package sortable defines the total-order bound shared by every ordering strategy.
//
// # Overview
//
// [Sortable] extends [github.com/amp-labs/arrange/compare.Comparable] with a
// LessThan method, providing both equality and ordering. Strategies in
// [github.com/amp-labs/arrange/ordering] are parameterized as
// Strategy[T Sortable[T]], so the compiler rejects element types that cannot
// be ordered; there are no run-time type checks.
//
// Ready-made key types are provided for common primitives: [Int], [Byte],
// [String] (lexical) and [Natural] (digit-aware).
//
// # Creating Custom Sortable Types
//
// Implement Equals and LessThan over a single field to order by key only:
//
//	type Ticket struct {
//	    Title string
//	    ID    sortable.String
//	}
//
//	func (t *Ticket) Equals(other *Ticket) bool   { return t.ID.Equals(other.ID) }
//	func (t *Ticket) LessThan(other *Ticket) bool { return t.ID.LessThan(other.ID) }
//
// Values that compare equal are interchangeable as far as ordering is
// concerned; strategies make no promise about their relative order.
package sortable
