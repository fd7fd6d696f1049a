package ordering

import (
	"fmt"
	"strings"

	"github.com/amp-labs/arrange/errors"
	"github.com/amp-labs/arrange/sortable"
)

// Names of the built-in strategies, as accepted by Lookup.
const (
	InsertionName = "insertion"
	SelectionName = "selection"
)

// Strategy reorders a sequence in place into non-decreasing order.
type Strategy[T sortable.Sortable[T]] interface {
	// Sort permutes seq so that no element is less than its predecessor.
	Sort(seq []T)

	// Name identifies the algorithm in logs and metrics.
	Name() string
}

// Func adapts a plain sorting function to the Strategy interface. The
// function must honor the Strategy contract.
type Func[T sortable.Sortable[T]] struct {
	name string
	fn   func([]T)
}

var _ Strategy[sortable.Int] = (*Func[sortable.Int])(nil)

// NewFunc wraps fn as a Strategy reported under name.
func NewFunc[T sortable.Sortable[T]](name string, fn func([]T)) *Func[T] {
	return &Func[T]{name: name, fn: fn}
}

// Sort calls the wrapped function. Sequences shorter than two elements are
// left alone without calling it.
func (f *Func[T]) Sort(seq []T) {
	if len(seq) < 2 { //nolint:mnd
		return
	}

	f.fn(seq)
}

// Name returns the name given to NewFunc.
func (f *Func[T]) Name() string {
	return f.name
}

// Lookup returns the built-in strategy registered under name. Matching is
// case-insensitive and ignores surrounding whitespace. An unrecognized name
// yields an error wrapping errors.ErrUnknownStrategy.
func Lookup[T sortable.Sortable[T]](name string, opts ...Option) (Strategy[T], error) { //nolint:ireturn
	switch strings.ToLower(strings.TrimSpace(name)) {
	case InsertionName:
		return NewInsertion[T](opts...), nil
	case SelectionName:
		return NewSelection[T](opts...), nil
	default:
		return nil, fmt.Errorf("%w: ordering %q (want %q or %q)",
			errors.ErrUnknownStrategy, name, InsertionName, SelectionName)
	}
}
