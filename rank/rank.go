// Package rank provides boundary rank queries over runs of equal elements
// in sorted slices.
package rank

import (
	"cmp"

	"github.com/hupe1980/bisect/internal/order"
)

// Leftmost returns the first index at which target could be inserted into s
// while preserving order, i.e. the count of elements strictly less than
// target. An empty slice yields rank 0, a valid rank rather than a miss.
//
// Leftmost panics if s is not sorted in non-descending order.
func Leftmost[T cmp.Ordered](s []T, target T) int {
	order.MustBeSorted("rank.Leftmost", s)

	left, right := 0, len(s)

	for left < right {
		middle := (left + right) / 2

		if s[middle] < target {
			left = middle + 1
		} else {
			right = middle
		}
	}

	return left
}

// Rightmost returns the last index occupied by elements less than or equal
// to target, i.e. the count of such elements minus one. An empty slice
// yields rank 0; when every element exceeds target the result is -1.
//
// Rightmost panics if s is not sorted in non-descending order.
func Rightmost[T cmp.Ordered](s []T, target T) int {
	order.MustBeSorted("rank.Rightmost", s)

	if len(s) == 0 {
		return 0
	}

	left, right := 0, len(s)

	for left < right {
		middle := (left + right) / 2

		if s[middle] > target {
			right = middle
		} else {
			left = middle + 1
		}
	}

	return right - 1
}
