package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError attaches slog key-value pairs to err. When the error (or
// anything wrapping it) is logged through a logger configured by this
// package, the pairs are added to the record as top-level attributes.
//
//	if err := coord.RebindOrdering(next); err != nil {
//	    return AnnotateError(err, "coordinator", coord.Label(), "family", "ordering")
//	}
//
// Returns nil if err is nil.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	attrs := make([]slog.Attr, 0, r.NumAttrs())

	r.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)

		return true
	})

	return &slogError{
		err:   err,
		attrs: attrs,
	}
}

// slogError is an error carrying structured attributes. It is transparent
// to errors.Is and errors.As.
type slogError struct {
	err   error
	attrs []slog.Attr
}

var _ error = (*slogError)(nil)

func (s *slogError) Error() string {
	return s.err.Error()
}

func (s *slogError) Unwrap() error {
	return s.err
}

// slogErrorLogger decorates a handler so that attributes attached with
// AnnotateError show up in the output.
type slogErrorLogger struct {
	inner slog.Handler
}

var _ slog.Handler = (*slogErrorLogger)(nil)

func (s *slogErrorLogger) Enabled(ctx context.Context, level slog.Level) bool {
	return s.inner.Enabled(ctx, level)
}

// Handle keeps every attribute as-is and appends the attributes of the first
// annotated error found in each error attribute's chain.
func (s *slogErrorLogger) Handle(ctx context.Context, record slog.Record) error {
	var extra []slog.Attr

	record.Attrs(func(attr slog.Attr) bool {
		err, ok := attr.Value.Any().(error)
		if !ok {
			return true
		}

		var se *slogError
		if errors.As(err, &se) {
			extra = append(extra, se.attrs...)
		}

		return true
	})

	if len(extra) == 0 {
		return s.inner.Handle(ctx, record)
	}

	out := record.Clone()
	out.AddAttrs(extra...)

	return s.inner.Handle(ctx, out)
}

func (s *slogErrorLogger) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithAttrs(attrs)}
}

func (s *slogErrorLogger) WithGroup(name string) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithGroup(name)}
}
