package sortable

// String orders keys lexically, byte by byte. It is the order key type
// used by entity.Entity.
type String string

// Compile-time check that String implements Sortable[String].
var _ Sortable[String] = (*String)(nil)

// Equals returns true if both keys have identical text.
func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

// LessThan returns true if s sorts before other byte by byte.
func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
