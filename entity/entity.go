// Package entity provides the orderable value type managed by a coordinator:
// a record with a mutable display label and an immutable order key.
package entity

import (
	"github.com/amp-labs/arrange/sortable"
)

// Key is the bound on order keys: a string type that defines its own total
// order, such as sortable.String or sortable.Natural.
type Key[K any] interface {
	~string
	sortable.Sortable[K]
}

// Keyed is a labelled record ordered solely by its key. The key is fixed at
// construction; the label may be reassigned at any time without affecting
// where the entity sorts. The key type decides the collation.
//
// Entities are handled by pointer. Two distinct values with the same key
// compare equal for ordering purposes but remain different entities.
type Keyed[K Key[K]] struct {
	label string
	key   K
}

// Entity is ordered lexically by key.
type Entity = Keyed[sortable.String]

// Natural is ordered by key with digit runs compared by value, so a key of
// "vol-9" sorts before "vol-10".
type Natural = Keyed[sortable.Natural]

var (
	_ sortable.Sortable[*Entity]  = (*Entity)(nil)
	_ sortable.Sortable[*Natural] = (*Natural)(nil)
)

// New creates a lexically ordered entity.
func New(label, key string) *Entity {
	return NewKeyed(label, sortable.String(key))
}

// NewNatural creates an entity in natural key order.
func NewNatural(label, key string) *Natural {
	return NewKeyed(label, sortable.Natural(key))
}

// NewKeyed creates an entity ordered by a caller-chosen key type.
func NewKeyed[K Key[K]](label string, key K) *Keyed[K] {
	return &Keyed[K]{
		label: label,
		key:   key,
	}
}

// Label returns the current display label.
func (e *Keyed[K]) Label() string {
	return e.label
}

// SetLabel replaces the display label. The order key is unaffected.
func (e *Keyed[K]) SetLabel(label string) {
	e.label = label
}

// Key returns the order key as text.
func (e *Keyed[K]) Key() string {
	return string(e.key)
}

// Equals reports whether both entities share the same order key. A nil
// entity only equals another nil entity.
func (e *Keyed[K]) Equals(other *Keyed[K]) bool {
	if e == nil || other == nil {
		return e == nil && other == nil
	}

	return e.key.Equals(other.key)
}

// LessThan reports whether e sorts strictly before other. Nil sorts before
// every non-nil entity.
func (e *Keyed[K]) LessThan(other *Keyed[K]) bool {
	if e == nil || other == nil {
		return e == nil && other != nil
	}

	return e.key.LessThan(other.key)
}

// String renders the entity's full current state as "label: key".
func (e *Keyed[K]) String() string {
	if e == nil {
		return "<nil>"
	}

	return e.label + ": " + string(e.key)
}
