package bisect

import (
	"cmp"

	"github.com/hupe1980/bisect/internal/core"
	"github.com/hupe1980/bisect/internal/order"
)

// IsSorted reports whether s is sorted in non-descending order, the
// precondition every search operation in this module validates. Empty and
// single-element slices are trivially sorted.
func IsSorted[T cmp.Ordered](s []T) bool {
	return order.IsSorted(s)
}

// Search performs binary search on s and returns the index of an element
// equal to target. The second return value reports whether a match was
// found; an empty slice is a miss. With duplicate elements the returned
// index is the first match the floor-midpoint probe sequence lands on,
// which is not necessarily the leftmost occurrence (use rank.Leftmost for
// that).
//
// Search panics if s is not sorted in non-descending order.
func Search[T cmp.Ordered](s []T, target T) (int, bool) {
	order.MustBeSorted("Search", s)

	if len(s) == 0 {
		return 0, false
	}

	return core.Search(s, target)
}
