package variation

import (
	"cmp"

	"github.com/hupe1980/bisect/internal/core"
	"github.com/hupe1980/bisect/internal/order"
)

// ExponentialSearch performs exponential search on s and returns the index
// of an element equal to target. It doubles a bound until the element there
// is no longer less than target, then binary-searches the sub-range
// [bound/2, min(bound+1, len(s))). Fewer comparisons than plain binary
// search when the target is near the start.
//
// ExponentialSearch panics if s is not sorted in non-descending order.
func ExponentialSearch[T cmp.Ordered](s []T, target T) (int, bool) {
	order.MustBeSorted("variation.ExponentialSearch", s)

	if len(s) == 0 {
		return 0, false
	}

	bound := 1
	for bound < len(s) && s[bound] < target {
		bound *= 2
	}

	left := bound / 2
	right := min(bound+1, len(s))

	i, ok := core.Search(s[left:right], target)
	if !ok {
		return 0, false
	}

	return left + i, true
}
