package presentation

import (
	"context"
	"io"
	"log/slog"
	"slices"
)

// Sink receives rendered output. Implementations decide how elements and
// the terminator are represented.
type Sink interface {
	// WriteElement receives the textual form of one element.
	WriteElement(repr string)

	// WriteTerminator marks the end of one complete render.
	WriteTerminator()
}

const (
	elementPrefix = "("
	elementSuffix = ")  "
	terminator    = "\n"
)

// WriterSink writes to an io.Writer, wrapping each element as "(repr)  "
// and ending each render with a newline.
//
// The first write error is kept and every later write is skipped; check Err
// after rendering when the writer can fail.
type WriterSink struct {
	w   io.Writer
	err error
}

var _ Sink = (*WriterSink)(nil)

// NewWriterSink returns a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// WriteElement writes repr as "(repr)  ".
func (s *WriterSink) WriteElement(repr string) {
	s.write(elementPrefix + repr + elementSuffix)
}

// WriteTerminator writes a newline.
func (s *WriterSink) WriteTerminator() {
	s.write(terminator)
}

// Err returns the first error encountered while writing, if any.
func (s *WriterSink) Err() error {
	return s.err
}

func (s *WriterSink) write(text string) {
	if s.err != nil {
		return
	}

	_, s.err = io.WriteString(s.w, text)
}

// Collector keeps rendered output in memory. It is meant for tests and
// harnesses that need to inspect exactly what was written.
type Collector struct {
	elements    []string
	terminators int
}

var _ Sink = (*Collector)(nil)

// WriteElement appends repr to the collected elements.
func (c *Collector) WriteElement(repr string) {
	c.elements = append(c.elements, repr)
}

// WriteTerminator counts one completed render.
func (c *Collector) WriteTerminator() {
	c.terminators++
}

// Elements returns a copy of every element written so far, in write order.
func (c *Collector) Elements() []string {
	return slices.Clone(c.elements)
}

// Terminators returns how many terminators have been written.
func (c *Collector) Terminators() int {
	return c.terminators
}

// Reset discards everything collected.
func (c *Collector) Reset() {
	c.elements = nil
	c.terminators = 0
}

// LogSink emits one structured log record per element and one summary
// record per terminator.
type LogSink struct {
	logger *slog.Logger
	level  slog.Level

	// position counts elements since the last terminator.
	position int
}

var _ Sink = (*LogSink)(nil)

// LogSinkOption configures a LogSink.
type LogSinkOption func(*LogSink)

// WithLevel sets the level of every record the sink emits. Defaults to info.
func WithLevel(level slog.Level) LogSinkOption {
	return func(s *LogSink) {
		s.level = level
	}
}

// NewLogSink returns a sink writing records to logger. A nil logger falls
// back to slog.Default().
func NewLogSink(logger *slog.Logger, opts ...LogSinkOption) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}

	sink := &LogSink{
		logger: logger,
		level:  slog.LevelInfo,
	}

	for _, opt := range opts {
		opt(sink)
	}

	return sink
}

// WriteElement logs repr with its position in the current render.
func (s *LogSink) WriteElement(repr string) {
	s.logger.Log(context.Background(), s.level, "presented element",
		"position", s.position,
		"element", repr)

	s.position++
}

// WriteTerminator logs how many elements the render had and starts the
// position count over.
func (s *LogSink) WriteTerminator() {
	s.logger.Log(context.Background(), s.level, "presentation complete",
		"count", s.position)

	s.position = 0
}
