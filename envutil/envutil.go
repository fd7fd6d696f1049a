// Package envutil reads typed configuration values from environment
// variables, with defaults and per-context overrides.
package envutil

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// get returns a Reader for the given key, preferring a context override
// over the process environment.
func get(ctx context.Context, key string) Reader[string] {
	if val, ok := getEnvOverride(ctx, key); ok {
		return Reader[string]{
			key:     key,
			present: true,
			value:   val,
		}
	}

	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

// Bool returns a Reader parsing the variable with strconv.ParseBool.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), strconv.ParseBool), opts)
}

// SlogLevel returns a Reader parsing the variable as a slog level name
// ("debug", "info", "warn", "error", optionally with an offset like "info+2").
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	rdr := Map(get(ctx, key), func(val string) (slog.Level, error) {
		var level slog.Level

		err := level.UnmarshalText([]byte(strings.TrimSpace(val)))

		return level, err
	})

	return apply(rdr, opts)
}

// Lower returns a Reader for the variable trimmed and lowercased, the usual
// shape for enumerated settings such as strategy names.
func Lower(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	rdr := Map(get(ctx, key), func(val string) (string, error) {
		return strings.ToLower(strings.TrimSpace(val)), nil
	})

	return apply(rdr, opts)
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}
