// Package bisect provides binary search and its classic variations over
// sorted slices.
//
// All entry points operate on caller-owned slices sorted in non-descending
// order. Sortedness is a hard precondition: every operation validates it and
// panics if it does not hold, because an unsorted slice indicates a
// programming error upstream, not a runtime condition to branch on. A target
// that is simply absent is a normal result, reported through the usual
// (index, ok) form.
//
// # Quick Start
//
//	s := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
//
//	i, ok := bisect.Search(s, 5) // 4, true
//
// Boundary ranks over runs of equal elements live in the rank subpackage:
//
//	s := []int{1, 2, 4, 4, 4, 5, 6, 7}
//
//	lo := rank.Leftmost(s, 4)  // 2
//	hi := rank.Rightmost(s, 4) // 4
//
// # Variations
//
// The variation subpackage contains exponential search (fast when the target
// sits near the front), interpolation search with a pluggable midpoint
// estimator, and uniform binary search:
//
//	u := variation.NewUniform[int]()
//	i, ok := u.Search(s, 5)
//
// Uniform binary search precomputes a step table keyed by slice length and
// reuses it across searches, trading one table build for cheaper probes on
// repeated same-length lookups.
//
// # Concurrency
//
// Search, the rank queries, and the stateless variations are pure functions
// over read-only input and are safe for concurrent use. variation.Uniform
// owns mutable cache state and must be confined to a single goroutine or
// serialized externally.
package bisect
