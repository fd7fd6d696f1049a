package coordinator

import (
	"log/slog"
	"os"

	"github.com/amp-labs/arrange/logger"
	"github.com/amp-labs/arrange/presentation"
)

// Option configures a Coordinator at construction.
type Option func(*config)

type config struct {
	sink     presentation.Sink
	logger   *slog.Logger
	metrics  *Metrics
	capacity int
}

func defaultConfig() config {
	return config{
		sink:   presentation.NewWriterSink(os.Stdout),
		logger: logger.Get(),
	}
}

// WithSink sets where ApplyPresentation writes. Defaults to a WriterSink on
// standard output. A nil sink makes construction fail.
func WithSink(sink presentation.Sink) Option {
	return func(c *config) {
		c.sink = sink
	}
}

// WithLogger sets the logger used for lifecycle records. Defaults to
// logger.Get().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithCapacity preallocates room for n entities.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}
