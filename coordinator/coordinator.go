package coordinator

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/amp-labs/arrange/errors"
	"github.com/amp-labs/arrange/logger"
	"github.com/amp-labs/arrange/ordering"
	"github.com/amp-labs/arrange/presentation"
	"github.com/amp-labs/arrange/sortable"
	"github.com/google/uuid"
)

// Element is the bound on values a Coordinator can hold: they must be
// totally ordered and renderable as text.
type Element[T any] interface {
	sortable.Sortable[T]
	fmt.Stringer
}

// Family names used in logs, errors and metric labels.
const (
	familyOrdering     = "ordering"
	familyPresentation = "presentation"
)

// Coordinator owns one sequence and one binding from each strategy family.
type Coordinator[T Element[T]] struct {
	id    uuid.UUID
	label string

	sequence []T

	ordering     ordering.Strategy[T]
	presentation presentation.Strategy[T]
	sink         presentation.Sink

	logger  *slog.Logger
	metrics *Metrics
}

// New creates a coordinator with an empty sequence bound to the given
// strategies. Both strategies are required; if either is absent, or
// WithSink was given nil, New returns an error wrapping
// errors.ErrInvalidConfiguration and no coordinator.
func New[T Element[T]](
	label string,
	ord ordering.Strategy[T],
	pres presentation.Strategy[T],
	opts ...Option,
) (*Coordinator[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	problems := &errors.Collection{}
	problems.Add(requireStrategy(ord, familyOrdering))
	problems.Add(requireStrategy(pres, familyPresentation))

	if isAbsent(cfg.sink) {
		problems.Add(fmt.Errorf("%w: presentation sink is required", errors.ErrInvalidConfiguration))
	}

	if problems.HasError() {
		return nil, logger.AnnotateError(problems.GetError(), "coordinator", label)
	}

	coord := &Coordinator[T]{
		id:           uuid.New(),
		label:        label,
		sequence:     make([]T, 0, cfg.capacity),
		ordering:     ord,
		presentation: pres,
		sink:         cfg.sink,
		logger:       cfg.logger,
		metrics:      cfg.metrics,
	}

	coord.log().Debug("coordinator created",
		"ordering", ord.Name(),
		"presentation", pres.Name())

	coord.metrics.observeLength(coord.metricsKey(), 0)

	return coord, nil
}

func requireStrategy(strategy any, family string) error {
	if isAbsent(strategy) {
		return fmt.Errorf("%w: %s strategy is required", errors.ErrInvalidConfiguration, family)
	}

	return nil
}

// ID returns the identifier assigned at construction. It tells coordinators
// apart in logs and metrics, where labels may repeat or change.
func (c *Coordinator[T]) ID() uuid.UUID {
	return c.id
}

// Label returns the coordinator's label.
func (c *Coordinator[T]) Label() string {
	return c.label
}

// SetLabel renames the coordinator. Metric series are keyed by ID and are
// not affected.
func (c *Coordinator[T]) SetLabel(label string) {
	c.label = label
}

// AddEntity appends e to the sequence. The sequence never holds absent
// entries, so a nil e is ignored (and logged).
func (c *Coordinator[T]) AddEntity(e T) {
	if isAbsent(e) {
		c.log().Warn("ignoring absent entity")

		return
	}

	c.sequence = append(c.sequence, e)

	c.metrics.observeLength(c.metricsKey(), len(c.sequence))
}

// RebindOrdering replaces the ordering strategy. The previous binding is
// discarded. An absent strategy leaves the current one in place and returns
// an error wrapping errors.ErrInvalidConfiguration.
func (c *Coordinator[T]) RebindOrdering(strategy ordering.Strategy[T]) error {
	if err := requireStrategy(strategy, familyOrdering); err != nil {
		return logger.AnnotateError(err, "coordinator", c.label)
	}

	previous := c.ordering.Name()
	c.ordering = strategy

	c.log().Info("rebound strategy",
		"family", familyOrdering,
		"from", previous,
		"to", strategy.Name())

	c.metrics.rebound(c.metricsKey(), familyOrdering)

	return nil
}

// RebindPresentation replaces the presentation strategy. The previous
// binding is discarded. An absent strategy leaves the current one in place
// and returns an error wrapping errors.ErrInvalidConfiguration.
func (c *Coordinator[T]) RebindPresentation(strategy presentation.Strategy[T]) error {
	if err := requireStrategy(strategy, familyPresentation); err != nil {
		return logger.AnnotateError(err, "coordinator", c.label)
	}

	previous := c.presentation.Name()
	c.presentation = strategy

	c.log().Info("rebound strategy",
		"family", familyPresentation,
		"from", previous,
		"to", strategy.Name())

	c.metrics.rebound(c.metricsKey(), familyPresentation)

	return nil
}

// ApplyOrdering sorts the sequence in place with the currently bound
// ordering strategy.
func (c *Coordinator[T]) ApplyOrdering() {
	name := c.ordering.Name()

	c.log().Debug("applying ordering", "strategy", name, "length", len(c.sequence))

	c.ordering.Sort(c.sequence)

	c.metrics.ordered(c.metricsKey(), name)
}

// ApplyPresentation renders the sequence to the sink with the currently
// bound presentation strategy. The strategy receives a copy, so it cannot
// disturb the order.
func (c *Coordinator[T]) ApplyPresentation() {
	name := c.presentation.Name()

	c.log().Debug("applying presentation", "strategy", name, "length", len(c.sequence))

	c.presentation.Render(slices.Clone(c.sequence), c.sink)

	c.metrics.presented(c.metricsKey(), name)
}

// OrderingName returns the name of the bound ordering strategy.
func (c *Coordinator[T]) OrderingName() string {
	return c.ordering.Name()
}

// PresentationName returns the name of the bound presentation strategy.
func (c *Coordinator[T]) PresentationName() string {
	return c.presentation.Name()
}

// Len returns the number of entities in the sequence.
func (c *Coordinator[T]) Len() int {
	return len(c.sequence)
}

// Snapshot returns a copy of the sequence in its current order. Changing
// the returned slice does not affect the coordinator.
func (c *Coordinator[T]) Snapshot() []T {
	return slices.Clone(c.sequence)
}

// Sink returns the sink ApplyPresentation writes to, e.g. to check
// presentation.WriterSink.Err after rendering.
func (c *Coordinator[T]) Sink() presentation.Sink { //nolint:ireturn
	return c.sink
}

// String renders the label and the sequence as "label: [a, b, c]".
func (c *Coordinator[T]) String() string {
	parts := make([]string, len(c.sequence))
	for i, e := range c.sequence {
		parts[i] = e.String()
	}

	return c.label + ": [" + strings.Join(parts, ", ") + "]"
}

func (c *Coordinator[T]) log() *slog.Logger {
	return c.logger.With(
		"coordinator", c.label,
		"coordinator_id", c.id.String())
}

func (c *Coordinator[T]) metricsKey() string {
	return c.id.String()
}
