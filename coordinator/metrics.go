package coordinator

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records coordinator activity. Every series is keyed by the
// coordinator's ID, so coordinators sharing a label never share a series and
// renaming one leaves its series in place. A nil *Metrics records nothing.
type Metrics struct {
	orderings      *prometheus.CounterVec
	presentations  *prometheus.CounterVec
	rebinds        *prometheus.CounterVec
	sequenceLength *prometheus.GaugeVec
}

// NewMetrics creates the coordinator collectors and registers them with reg.
// Collectors already registered by an earlier call are reused, so several
// Metrics values may share one registry.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	orderings := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "arrange_orderings_total",
		Help: "The total number of ApplyOrdering calls",
	}, []string{"coordinator_id", "strategy"})

	presentations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "arrange_presentations_total",
		Help: "The total number of ApplyPresentation calls",
	}, []string{"coordinator_id", "strategy"})

	rebinds := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "arrange_rebinds_total",
		Help: "The total number of successful strategy rebinds",
	}, []string{"coordinator_id", "family"})

	sequenceLength := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "arrange_sequence_length",
		Help: "The number of entities held by a coordinator",
	}, []string{"coordinator_id"})

	var err error

	m := &Metrics{}

	if m.orderings, err = register(reg, orderings); err != nil {
		return nil, err
	}

	if m.presentations, err = register(reg, presentations); err != nil {
		return nil, err
	}

	if m.rebinds, err = register(reg, rebinds); err != nil {
		return nil, err
	}

	if m.sequenceLength, err = register(reg, sequenceLength); err != nil {
		return nil, err
	}

	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, collector C) (C, error) { //nolint:ireturn
	if err := reg.Register(collector); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}

		var zero C

		return zero, err
	}

	return collector, nil
}

func (m *Metrics) ordered(id, strategy string) {
	if m == nil {
		return
	}

	m.orderings.WithLabelValues(id, strategy).Inc()
}

func (m *Metrics) presented(id, strategy string) {
	if m == nil {
		return
	}

	m.presentations.WithLabelValues(id, strategy).Inc()
}

func (m *Metrics) rebound(id, family string) {
	if m == nil {
		return
	}

	m.rebinds.WithLabelValues(id, family).Inc()
}

func (m *Metrics) observeLength(id string, length int) {
	if m == nil {
		return
	}

	m.sequenceLength.WithLabelValues(id).Set(float64(length))
}
