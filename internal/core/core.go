// Package core implements the unchecked binary search loop shared by the
// public entry points. Callers guarantee the slice is sorted and non-empty.
package core

import "cmp"

// Search performs binary search over s and returns the index of an element
// equal to target. With duplicates the returned index is whichever match the
// floor-midpoint probe sequence lands on first.
func Search[T cmp.Ordered](s []T, target T) (int, bool) {
	left, right := 0, len(s)-1

	for left <= right {
		middle := (left + right) / 2

		switch {
		case s[middle] == target:
			return middle, true
		case s[middle] < target:
			left = middle + 1
		default:
			right = middle - 1
		}
	}

	return 0, false
}
