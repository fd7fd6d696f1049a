package ordering

import (
	"github.com/amp-labs/arrange/compare"
	"github.com/amp-labs/arrange/sortable"
)

// Insertion sorts by growing a sorted prefix one element at a time. The
// zero value is ready to use and records no stats.
type Insertion[T sortable.Sortable[T]] struct {
	stats *Stats
}

var _ Strategy[sortable.Int] = (*Insertion[sortable.Int])(nil)

// NewInsertion returns an insertion sorter configured by opts.
func NewInsertion[T sortable.Sortable[T]](opts ...Option) *Insertion[T] {
	o := buildOptions(opts)

	return &Insertion[T]{stats: o.stats}
}

// Name returns InsertionName.
func (s *Insertion[T]) Name() string {
	return InsertionName
}

// Sort shifts each element at index i leftward past every immediately
// preceding element whose key is strictly greater, then drops it into the
// vacated slot.
func (s *Insertion[T]) Sort(seq []T) {
	for i := 1; i < len(seq); i++ {
		current := seq[i]

		j := i - 1
		for ; j >= 0; j-- {
			s.stats.compared()

			if !compare.Greater(seq[j], current) {
				break
			}

			seq[j+1] = seq[j]
			s.stats.moved()
		}

		seq[j+1] = current
	}
}
