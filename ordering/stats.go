package ordering

// Stats counts the primitive operations performed by a strategy. Counters
// accumulate across calls until Reset.
type Stats struct {
	// Comparisons is the number of LessThan calls made between elements.
	Comparisons int
	// Moves is the number of single-slot shifts (insertion).
	Moves int
	// Swaps is the number of two-element exchanges (selection).
	Swaps int
}

// Reset zeroes every counter.
func (s *Stats) Reset() {
	*s = Stats{}
}

func (s *Stats) compared() {
	if s != nil {
		s.Comparisons++
	}
}

func (s *Stats) moved() {
	if s != nil {
		s.Moves++
	}
}

func (s *Stats) swapped() {
	if s != nil {
		s.Swaps++
	}
}

// Option configures a strategy constructor.
type Option func(*options)

type options struct {
	stats *Stats
}

// WithStats makes the strategy record its work into stats.
func WithStats(stats *Stats) Option {
	return func(o *options) {
		o.stats = stats
	}
}

func buildOptions(opts []Option) options {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
