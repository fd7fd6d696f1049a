package presentation

import (
	"fmt"
	"strings"

	"github.com/amp-labs/arrange/errors"
)

// Names of the built-in strategies, as accepted by Lookup.
const (
	ForwardName = "forward"
	ReverseName = "reverse"
)

// Strategy renders a sequence to a sink without mutating it.
type Strategy[T fmt.Stringer] interface {
	// Render writes every element of seq to sink in traversal order, then
	// a single terminator.
	Render(seq []T, sink Sink)

	// Name identifies the traversal in logs and metrics.
	Name() string
}

// Forward renders from index 0 to the last element.
type Forward[T fmt.Stringer] struct{}

var _ Strategy[fmt.Stringer] = Forward[fmt.Stringer]{}

// Name returns ForwardName.
func (Forward[T]) Name() string { return ForwardName }

// Render writes seq[0] through seq[len(seq)-1], then the terminator.
func (Forward[T]) Render(seq []T, sink Sink) {
	for _, item := range seq {
		sink.WriteElement(item.String())
	}

	sink.WriteTerminator()
}

// Reverse renders from the last element back to index 0.
type Reverse[T fmt.Stringer] struct{}

var _ Strategy[fmt.Stringer] = Reverse[fmt.Stringer]{}

// Name returns ReverseName.
func (Reverse[T]) Name() string { return ReverseName }

// Render writes seq[len(seq)-1] back to seq[0], then the terminator.
func (Reverse[T]) Render(seq []T, sink Sink) {
	for i := len(seq) - 1; i >= 0; i-- {
		sink.WriteElement(seq[i].String())
	}

	sink.WriteTerminator()
}

// Lookup returns the built-in strategy registered under name. Matching is
// case-insensitive and ignores surrounding whitespace. An unrecognized name
// yields an error wrapping errors.ErrUnknownStrategy.
func Lookup[T fmt.Stringer](name string) (Strategy[T], error) { //nolint:ireturn
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ForwardName:
		return Forward[T]{}, nil
	case ReverseName:
		return Reverse[T]{}, nil
	default:
		return nil, fmt.Errorf("%w: presentation %q (want %q or %q)",
			errors.ErrUnknownStrategy, name, ForwardName, ReverseName)
	}
}
