package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

// Reader is the result of reading one variable: whether it was set, its
// value after any conversions, and the first conversion error. Conversions
// return a new Reader and leave the receiver untouched.
type Reader[A any] struct {
	key     string
	present bool
	err     error

	value A
}

// Value returns the converted value. A failed conversion yields an error
// wrapping both ErrBadEnvVar and the conversion's own error; an unset
// variable with no default yields ErrEnvVarMissing.
func (r Reader[A]) Value() (A, error) { //nolint:ireturn
	switch {
	case r.err != nil:
		return r.value, fmt.Errorf("%w %s: %w", ErrBadEnvVar, r.key, r.err)
	case !r.present:
		return r.value, fmt.Errorf("%w %s", ErrEnvVarMissing, r.key)
	default:
		return r.value, nil
	}
}

// ValueOrFatal is Value for process start-up: on error it logs and exits.
func (r Reader[A]) ValueOrFatal() A { //nolint:ireturn
	value, err := r.Value()
	if err != nil {
		slog.Error("invalid environment", "key", r.key, "error", err)
		os.Exit(1)
	}

	return value
}

// WithDefault treats an unset variable as if it held v.
func (r Reader[A]) WithDefault(v A) Reader[A] { //nolint:ireturn
	if r.present {
		return r
	}

	r.present = true
	r.value = v

	return r
}

// Map converts the value of r with f. Unset variables and earlier errors
// pass through without calling f.
func Map[A any, B any](r Reader[A], f func(A) (B, error)) Reader[B] {
	out := Reader[B]{
		key:     r.key,
		present: r.present,
		err:     r.err,
	}

	if !r.present || r.err != nil {
		return out
	}

	out.value, out.err = f(r.value)

	return out
}
