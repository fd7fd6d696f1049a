// Package presentation renders sequences to an output [Sink] using
// interchangeable traversal strategies.
//
// A [Strategy] walks the sequence it is given, writes each element's
// String() form to the sink with one WriteElement call per element, and
// finishes with exactly one WriteTerminator call. The sequence is never
// modified. An empty sequence produces only the terminator.
//
// Strategies: [Forward] (first to last) and [Reverse] (last to first).
//
// Sinks: [WriterSink] for text streams, [Collector] for in-memory capture,
// and [LogSink] for structured slog output.
package presentation
