package variation

import (
	"cmp"

	"github.com/hupe1980/bisect/internal/order"
)

// Signed is a constraint that permits any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// EstimateFunc estimates how far from the left bound of the current range
// the target should sit, given the values at both bounds. The returned
// offset is added to the left index to pick the next probe.
type EstimateFunc[T any] func(target, left, right T) int

// InterpolationSearch performs interpolation search on s and returns the
// index of an element equal to target, probing at the offsets produced by
// estimate instead of at midpoints. The loop only runs while the target
// lies strictly between the values at the current bounds, so boundary
// values never reach the estimator and an estimator like linear
// interpolation cannot divide by zero. A target equal to the first or last
// element of the range is reported as a miss, matching the strict guard.
//
// InterpolationSearch panics if s is not sorted in non-descending order.
func InterpolationSearch[T cmp.Ordered](s []T, target T, estimate EstimateFunc[T]) (int, bool) {
	order.MustBeSorted("variation.InterpolationSearch", s)

	if len(s) == 0 {
		return 0, false
	}

	left, right := 0, len(s)-1

	for left <= right && target > s[left] && target < s[right] {
		middle := left + estimate(target, s[left], s[right])

		switch {
		case s[middle] == target:
			return middle, true
		case s[middle] < target:
			left = middle + 1
		default:
			right = middle - 1
		}

		// The estimate tends to land just short of the target, so the
		// narrowed left bound frequently holds it already.
		if s[left] == target {
			return left, true
		}
	}

	return 0, false
}

// LinearInterpolationSearch performs interpolation search using the
// standard linear estimate (target - left) / (right - left). It assumes
// values are roughly uniformly distributed; on skewed data it still
// terminates but degrades toward linear probing.
//
// LinearInterpolationSearch panics if s is not sorted in non-descending
// order.
func LinearInterpolationSearch[T Integer](s []T, target T) (int, bool) {
	return InterpolationSearch(s, target, func(target, left, right T) int {
		return int((target - left) / (right - left))
	})
}
