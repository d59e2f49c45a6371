package variation

import (
	"cmp"

	"github.com/hupe1980/bisect/internal/order"
)

// maxTableLen caps the number of halving steps the table can hold. One
// entry is consumed per search depth, so 64 entries cover any slice an
// in-memory program can realistically hold (depth is about log2(len)+1).
// Lengths needing more depths than the capacity are not supported.
const maxTableLen = 64

// Uniform performs uniform binary search: binary search driven by a
// precomputed table of jump sizes instead of midpoint arithmetic. The
// table depends only on the slice length and is cached, so repeated
// searches over same-length slices skip the rebuild and pay only the
// cache check.
//
// Uniform is NOT thread-safe. It owns mutable cache state and is intended
// to be owned by a single goroutine; use one instance per goroutine or
// serialize access externally.
type Uniform[T cmp.Ordered] struct {
	// lastLen is the slice length the table was built for. Zero doubles as
	// "no table yet" since empty slices return before the cache check.
	lastLen int

	// table holds the jump size for each search depth. The first zero
	// entry terminates the table; entries past it are stale and unread.
	table [maxTableLen]int
}

// NewUniform creates a Uniform searcher with an empty cache. The zero
// value is ready to use as well.
func NewUniform[T cmp.Ordered]() *Uniform[T] {
	return &Uniform[T]{}
}

// Search performs uniform binary search on s and returns the index of an
// element equal to target. The first call for a given slice length builds
// the step table; later calls with the same length reuse it, whatever
// slice they are for. Results are identical to binary search with a cold
// or warm table.
//
// Search panics if s is not sorted in non-descending order.
func (u *Uniform[T]) Search(s []T, target T) (int, bool) {
	order.MustBeSorted("variation.Uniform.Search", s)

	if len(s) == 0 {
		return 0, false
	}

	if u.lastLen != len(s) {
		u.updateTable(len(s))
		u.lastLen = len(s)
	}

	return u.searchTable(s, target)
}

// searchTable runs binary search driven by the current table. The probe
// starts at table[0]-1, the floor-midpoint of the full range; each
// mismatch advances one depth and moves the probe by that depth's jump
// size. An exhausted table means every depth mismatched: a miss. The
// leftmost probe path is one depth shorter than the table, so a target
// below the whole range walks the probe off the front edge; that is a
// miss as well, caught before indexing.
func (u *Uniform[T]) searchTable(s []T, target T) (int, bool) {
	index := u.table[0] - 1
	depth := 0

	for u.table[depth] != 0 {
		if index < 0 || index >= len(s) {
			return 0, false
		}

		switch {
		case s[index] == target:
			return index, true
		case s[index] < target:
			depth++
			index += u.table[depth]
		default:
			depth++
			index -= u.table[depth]
		}
	}

	return 0, false
}

// updateTable rebuilds the step table for slices of length n. Entry i is
// (n + 2^i) / 2^(i+1), the number of positions a depth-i probe moves; the
// sequence halves until it reaches zero, which terminates the table.
func (u *Uniform[T]) updateTable(n int) {
	power := 1

	for i := 0; ; i++ {
		half := power
		power <<= 1

		u.table[i] = (n + half) / power

		if u.table[i] == 0 {
			break
		}
	}
}
