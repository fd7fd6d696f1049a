package ordering

import (
	"github.com/amp-labs/arrange/compare"
	"github.com/amp-labs/arrange/sortable"
)

// Selection sorts by repeatedly swapping the minimum of the unsorted suffix
// into place. The zero value is ready to use and records no stats.
type Selection[T sortable.Sortable[T]] struct {
	stats *Stats
}

var _ Strategy[sortable.Int] = (*Selection[sortable.Int])(nil)

// NewSelection returns a selection sorter configured by opts.
func NewSelection[T sortable.Sortable[T]](opts ...Option) *Selection[T] {
	o := buildOptions(opts)

	return &Selection[T]{stats: o.stats}
}

// Name returns SelectionName.
func (s *Selection[T]) Name() string {
	return SelectionName
}

// Sort performs exactly len(seq)-1 exchanges for any sequence of two or more
// elements, including self-exchanges when the minimum is already in place.
func (s *Selection[T]) Sort(seq []T) {
	for i := 0; i < len(seq)-1; i++ {
		smallest := i

		for j := i + 1; j < len(seq); j++ {
			s.stats.compared()

			if compare.Greater(seq[smallest], seq[j]) {
				smallest = j
			}
		}

		seq[i], seq[smallest] = seq[smallest], seq[i]
		s.stats.swapped()
	}
}
