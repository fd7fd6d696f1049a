// Package errors holds the sentinel errors shared by the arrange packages and
// a helper for reporting every configuration problem at once.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when a coordinator would be left
	// without an ordering strategy, a presentation strategy or a sink.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrUnknownStrategy is returned when a strategy is looked up by a name
	// that no implementation answers to. It wraps ErrInvalidConfiguration.
	ErrUnknownStrategy = fmt.Errorf("%w: unknown strategy", ErrInvalidConfiguration)
)

// Collection gathers problems found while validating a configuration so
// they can be reported together instead of one per attempt. The zero value
// is empty and ready to use. Not safe for concurrent use.
type Collection struct {
	errors []error
}

// Add records err. Nil is skipped, so results can be added unchecked:
//
//	problems.Add(requireStrategy(ord))
//	problems.Add(requireStrategy(pres))
func (c *Collection) Add(err error) {
	if err == nil {
		return
	}

	c.errors = append(c.errors, err)
}

// HasError reports whether any problem has been recorded.
func (c *Collection) HasError() bool {
	return len(c.errors) != 0
}

// GetError returns nil when nothing was recorded, the problem itself when
// there is exactly one, and an errors.Join of all of them otherwise. The
// result matches every recorded problem under errors.Is.
func (c *Collection) GetError() error {
	if len(c.errors) == 1 {
		return c.errors[0]
	}

	return errors.Join(c.errors...)
}
