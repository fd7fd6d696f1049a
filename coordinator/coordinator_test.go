package coordinator

import (
	"bytes"
	"testing"

	"github.com/amp-labs/arrange/entity"
	"github.com/amp-labs/arrange/errors"
	"github.com/amp-labs/arrange/ordering"
	"github.com/amp-labs/arrange/presentation"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type book = entity.Entity

func newCollecting(t *testing.T, ord ordering.Strategy[*book], pres presentation.Strategy[*book]) (*Coordinator[*book], *presentation.Collector) {
	t.Helper()

	sink := &presentation.Collector{}

	coord, err := New[*book](t.Name(), ord, pres, WithSink(sink), WithLogger(slogt.New(t)))
	require.NoError(t, err)
	require.NotNil(t, coord)

	return coord, sink
}

func rowlingBooks() []*book {
	return []*book{
		entity.New("Harry Potter", "1770893083"),
		entity.New("Quidditch Through The Ages", "0385659768"),
		entity.New("Fantastic Beasts", "1770891048"),
	}
}

func keys(seq []*book) []string {
	out := make([]string, len(seq))
	for i, b := range seq {
		out[i] = b.Key()
	}

	return out
}

func TestNew_InvalidConfiguration(t *testing.T) {
	t.Parallel()

	var typedNilOrdering *ordering.Insertion[*book]

	tests := []struct {
		name string
		ord  ordering.Strategy[*book]
		pres presentation.Strategy[*book]
		opts []Option
		msgs []string
	}{
		{
			name: "absent ordering",
			pres: presentation.Forward[*book]{},
			msgs: []string{"ordering strategy is required"},
		},
		{
			name: "absent presentation",
			ord:  ordering.NewInsertion[*book](),
			msgs: []string{"presentation strategy is required"},
		},
		{
			name: "both absent",
			msgs: []string{"ordering strategy is required", "presentation strategy is required"},
		},
		{
			name: "typed nil ordering",
			ord:  typedNilOrdering,
			pres: presentation.Forward[*book]{},
			msgs: []string{"ordering strategy is required"},
		},
		{
			name: "nil sink",
			ord:  ordering.NewInsertion[*book](),
			pres: presentation.Forward[*book]{},
			opts: []Option{WithSink(nil)},
			msgs: []string{"presentation sink is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			coord, err := New[*book]("J.K. Rowling", tt.ord, tt.pres, tt.opts...)

			require.ErrorIs(t, err, errors.ErrInvalidConfiguration)
			assert.Nil(t, coord, "no coordinator is created on failure")

			for _, msg := range tt.msgs {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	coord, err := New[*book]("J.K. Rowling",
		ordering.NewInsertion[*book](),
		presentation.Forward[*book]{},
		WithCapacity(8))
	require.NoError(t, err)

	assert.Equal(t, "J.K. Rowling", coord.Label())
	assert.Equal(t, ordering.InsertionName, coord.OrderingName())
	assert.Equal(t, presentation.ForwardName, coord.PresentationName())
	assert.Zero(t, coord.Len())
	assert.Empty(t, coord.Snapshot())
	assert.IsType(t, &presentation.WriterSink{}, coord.Sink())
}

func TestID_Unique(t *testing.T) {
	t.Parallel()

	a, _ := newCollecting(t, ordering.NewInsertion[*book](), presentation.Forward[*book]{})
	b, _ := newCollecting(t, ordering.NewInsertion[*book](), presentation.Forward[*book]{})

	assert.NotEqual(t, a.ID(), b.ID())
}

func TestScenario_InsertionForward(t *testing.T) {
	t.Parallel()

	coord, sink := newCollecting(t, ordering.NewInsertion[*book](), presentation.Forward[*book]{})

	for _, b := range rowlingBooks() {
		coord.AddEntity(b)
	}

	coord.ApplyOrdering()
	coord.ApplyPresentation()

	assert.Equal(t, []string{"0385659768", "1770891048", "1770893083"}, keys(coord.Snapshot()))
	assert.Equal(t, []string{
		"Quidditch Through The Ages: 0385659768",
		"Fantastic Beasts: 1770891048",
		"Harry Potter: 1770893083",
	}, sink.Elements())
	assert.Equal(t, 1, sink.Terminators())
}

func TestScenario_Empty(t *testing.T) {
	t.Parallel()

	for _, ord := range []ordering.Strategy[*book]{
		ordering.NewInsertion[*book](),
		ordering.NewSelection[*book](),
	} {
		t.Run(ord.Name(), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			coord, err := New[*book](t.Name(), ord, presentation.Reverse[*book]{},
				WithSink(presentation.NewWriterSink(&buf)),
				WithLogger(slogt.New(t)))
			require.NoError(t, err)

			coord.ApplyOrdering()
			coord.ApplyPresentation()

			assert.Zero(t, coord.Len())
			assert.Equal(t, "\n", buf.String(), "only the terminator is written")
		})
	}
}

func TestRebind_Isolation(t *testing.T) {
	t.Parallel()

	coord, sink := newCollecting(t, ordering.NewInsertion[*book](), presentation.Forward[*book]{})

	for _, b := range rowlingBooks() {
		coord.AddEntity(b)
	}

	before := coord.Snapshot()

	require.NoError(t, coord.RebindOrdering(ordering.NewSelection[*book]()))
	require.NoError(t, coord.RebindPresentation(presentation.Reverse[*book]{}))

	after := coord.Snapshot()
	require.Len(t, after, len(before))

	for i := range before {
		assert.Same(t, before[i], after[i], "rebinding must not touch the sequence")
	}

	assert.Equal(t, ordering.SelectionName, coord.OrderingName())
	assert.Equal(t, presentation.ReverseName, coord.PresentationName())

	// The next calls use the new bindings.
	coord.ApplyOrdering()
	coord.ApplyPresentation()

	assert.Equal(t, []string{
		"Harry Potter: 1770893083",
		"Fantastic Beasts: 1770891048",
		"Quidditch Through The Ages: 0385659768",
	}, sink.Elements())
}

func TestRebind_AbsentKeepsCurrent(t *testing.T) {
	t.Parallel()

	coord, _ := newCollecting(t, ordering.NewInsertion[*book](), presentation.Forward[*book]{})

	var typedNil *ordering.Selection[*book]

	require.ErrorIs(t, coord.RebindOrdering(nil), errors.ErrInvalidConfiguration)
	require.ErrorIs(t, coord.RebindOrdering(typedNil), errors.ErrInvalidConfiguration)
	require.ErrorIs(t, coord.RebindPresentation(nil), errors.ErrInvalidConfiguration)

	assert.Equal(t, ordering.InsertionName, coord.OrderingName())
	assert.Equal(t, presentation.ForwardName, coord.PresentationName())
}

func TestAddEntity_IgnoresAbsent(t *testing.T) {
	t.Parallel()

	coord, _ := newCollecting(t, ordering.NewInsertion[*book](), presentation.Forward[*book]{})

	coord.AddEntity(nil)
	coord.AddEntity(entity.New("Carrie", "0006485456"))

	assert.Equal(t, 1, coord.Len())
}

func TestSnapshot_IsACopy(t *testing.T) {
	t.Parallel()

	coord, _ := newCollecting(t, ordering.NewInsertion[*book](), presentation.Forward[*book]{})

	for _, b := range rowlingBooks() {
		coord.AddEntity(b)
	}

	snap := coord.Snapshot()
	snap[0], snap[2] = snap[2], snap[0]
	snap[1] = entity.New("Intruder", "0000000000")

	assert.Equal(t, []string{"1770893083", "0385659768", "1770891048"}, keys(coord.Snapshot()))
}

func TestApplyPresentation_CannotReorder(t *testing.T) {
	t.Parallel()

	scrambler := presentationFunc(func(seq []*book, sink presentation.Sink) {
		for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
			seq[i], seq[j] = seq[j], seq[i]
		}

		sink.WriteTerminator()
	})

	coord, _ := newCollecting(t, ordering.NewInsertion[*book](), scrambler)

	for _, b := range rowlingBooks() {
		coord.AddEntity(b)
	}

	coord.ApplyPresentation()

	assert.Equal(t, []string{"1770893083", "0385659768", "1770891048"}, keys(coord.Snapshot()))
}

type presentationFunc func([]*book, presentation.Sink)

func (f presentationFunc) Render(seq []*book, sink presentation.Sink) { f(seq, sink) }
func (f presentationFunc) Name() string                              { return "func" }

func TestString(t *testing.T) {
	t.Parallel()

	coord, _ := newCollecting(t, ordering.NewInsertion[*book](), presentation.Forward[*book]{})
	coord.SetLabel("Stephen King")

	assert.Equal(t, "Stephen King: []", coord.String())

	coord.AddEntity(entity.New("The Shining", "1443433659"))
	coord.AddEntity(entity.New("Carrie", "0006485456"))
	coord.ApplyOrdering()

	assert.Equal(t, "Stephen King: [Carrie: 0006485456, The Shining: 1443433659]", coord.String())
}

// TestDemo replays the classic two-author walkthrough end to end against a
// text sink.
func TestDemo(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	sink := presentation.NewWriterSink(&out)
	insertion := ordering.NewInsertion[*book]()
	selection := ordering.NewSelection[*book]()
	forward := presentation.Forward[*book]{}
	reverse := presentation.Reverse[*book]{}

	rowling, err := New[*book]("J.K. Rowling", insertion, forward, WithSink(sink), WithLogger(slogt.New(t)))
	require.NoError(t, err)

	king, err := New[*book]("Stephen King", selection, reverse, WithSink(sink), WithLogger(slogt.New(t)))
	require.NoError(t, err)

	for _, b := range rowlingBooks() {
		rowling.AddEntity(b)
	}

	king.AddEntity(entity.New("The Shining", "1443433659"))
	king.AddEntity(entity.New("Carrie", "0006485456"))

	rowling.ApplyOrdering()
	rowling.ApplyPresentation()

	require.NoError(t, rowling.RebindOrdering(selection))
	require.NoError(t, rowling.RebindPresentation(reverse))
	rowling.ApplyPresentation()

	king.ApplyOrdering()
	king.ApplyPresentation()

	require.NoError(t, sink.Err())
	assert.Equal(t,
		"(Quidditch Through The Ages: 0385659768)  (Fantastic Beasts: 1770891048)  (Harry Potter: 1770893083)  \n"+
			"(Harry Potter: 1770893083)  (Fantastic Beasts: 1770891048)  (Quidditch Through The Ages: 0385659768)  \n"+
			"(The Shining: 1443433659)  (Carrie: 0006485456)  \n",
		out.String())
}

func TestNaturalKeys(t *testing.T) {
	t.Parallel()

	sink := &presentation.Collector{}

	series, err := New[*entity.Natural]("series",
		ordering.NewSelection[*entity.Natural](),
		presentation.Forward[*entity.Natural]{},
		WithSink(sink), WithLogger(slogt.New(t)))
	require.NoError(t, err)

	series.AddEntity(entity.NewNatural("Volume ten", "vol-10"))
	series.AddEntity(entity.NewNatural("Volume two", "vol-2"))
	series.AddEntity(entity.NewNatural("Volume nine", "vol-9"))

	series.ApplyOrdering()
	series.ApplyPresentation()

	assert.Equal(t, []string{"Volume two: vol-2", "Volume nine: vol-9", "Volume ten: vol-10"}, sink.Elements())
}
