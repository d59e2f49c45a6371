package variation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bisect/testutil"
)

func TestExponentialSearch(t *testing.T) {
	tests := []struct {
		name   string
		s      []int
		target int
		index  int
		found  bool
	}{
		{"empty slice", nil, 5, 0, false},
		{"single element miss", []int{4}, 5, 0, false},
		{"single element hit", []int{5}, 5, 0, true},
		{"hit in range", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 5, 4, true},
		{"first element", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 1, 0, true},
		{"last element", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 10, 9, true},
		{"miss above range", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 12, 0, false},
		{"miss below range", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, ok := ExponentialSearch(tt.s, tt.target)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.index, i)
		})
	}
}

func TestExponentialSearch_PanicsOnUnsortedInput(t *testing.T) {
	assert.PanicsWithValue(t, "bisect: variation.ExponentialSearch: slice is not sorted", func() {
		ExponentialSearch([]int{1, 3, 2, 5}, 5)
	})
}

// The sub-range result must be translated back to an absolute index, also
// when the doubling overshoots the slice length.
func TestExponentialSearch_AbsoluteIndexTranslation(t *testing.T) {
	s := make([]int, 1000)
	for i := range s {
		s[i] = 2 * i
	}

	for _, i := range []int{0, 1, 2, 3, 500, 511, 512, 513, 998, 999} {
		j, ok := ExponentialSearch(s, s[i])
		require.True(t, ok, "element at %d not found", i)
		require.Equal(t, i, j)
	}
}

func TestExponentialSearch_FindsEveryElement(t *testing.T) {
	rng := testutil.NewRNG(4711)
	s := rng.SortedInts(777, 3)

	for i, v := range s {
		j, ok := ExponentialSearch(s, v)
		require.True(t, ok, "element %d at index %d not found", v, i)
		require.Equal(t, v, s[j])
	}

	_, ok := ExponentialSearch(s, s[0]-1)
	require.False(t, ok)

	_, ok = ExponentialSearch(s, s[len(s)-1]+1)
	require.False(t, ok)
}
