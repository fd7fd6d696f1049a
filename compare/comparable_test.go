package compare_test

import (
	"testing"

	"github.com/amp-labs/arrange/compare"
	"github.com/amp-labs/arrange/sortable"
	"github.com/stretchr/testify/assert"
)

func TestGreater(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        sortable.String
		b        sortable.String
		expected bool
	}{
		{name: "later key", a: "1770893083", b: "1770891048", expected: true},
		{name: "earlier key", a: "0385659768", b: "1770891048", expected: false},
		{name: "same key", a: "1770891048", b: "1770891048", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, compare.Greater(tt.a, tt.b))
		})
	}
}

func TestLessOrEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        sortable.Int
		b        sortable.Int
		expected bool
	}{
		{name: "less", a: 1, b: 2, expected: true},
		{name: "tie", a: 2, b: 2, expected: true},
		{name: "greater", a: 3, b: 2, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, compare.LessOrEqual(tt.a, tt.b))
		})
	}
}

// Greater and LessOrEqual must partition every pair: a key is either
// strictly after another or may precede it, never both.
func TestGreaterAndLessOrEqualPartition(t *testing.T) {
	t.Parallel()

	keys := []sortable.Natural{"vol-1", "vol-01", "vol-2", "vol-10", "vol-10"}

	for _, a := range keys {
		for _, b := range keys {
			assert.NotEqual(t, compare.Greater(a, b), compare.LessOrEqual(a, b), "%q vs %q", a, b)
		}
	}
}
