// Package order implements the sortedness precondition shared by every
// public search entry point.
package order

import (
	"cmp"
	"fmt"
)

// IsSorted reports whether s is sorted in non-descending order.
// Empty and single-element slices are trivially sorted.
func IsSorted[T cmp.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}

	return true
}

// MustBeSorted panics if s is not sorted. The panic message names the
// operation that detected the violation. Callers are expected to guarantee
// sortedness; a violation is a programming error, not a recoverable result.
func MustBeSorted[T cmp.Ordered](op string, s []T) {
	if !IsSorted(s) {
		panic(fmt.Sprintf("bisect: %s: slice is not sorted", op))
	}
}
