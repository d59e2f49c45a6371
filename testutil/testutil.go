package testutil

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

// SortedInts returns a sorted slice of n ints starting above zero with
// gaps of 1..maxGap between neighbors. With maxGap > 1 the slice has gaps,
// so targets strictly between elements exist.
func (r *RNG) SortedInts(n, maxGap int) []int {
	s := make([]int, n)

	v := 0
	for i := range s {
		v += 1 + r.rand.Intn(maxGap)
		s[i] = v
	}

	return s
}

// SortedIntsWithRuns returns a sorted slice of n ints where each value
// repeats in a run of 1..maxRun elements, for exercising rank queries over
// duplicates.
func (r *RNG) SortedIntsWithRuns(n, maxRun int) []int {
	s := make([]int, 0, n)

	v := 0
	for len(s) < n {
		v += 1 + r.rand.Intn(3)
		run := 1 + r.rand.Intn(maxRun)
		for j := 0; j < run && len(s) < n; j++ {
			s = append(s, v)
		}
	}

	return s
}

// UnsortedInts returns a slice of n ints guaranteed to contain at least
// one adjacent descending pair. n must be at least 2.
func (r *RNG) UnsortedInts(n int) []int {
	if n < 2 {
		panic("testutil: UnsortedInts needs n >= 2")
	}

	s := r.SortedInts(n, 3) // strictly increasing, so any swap breaks order

	i := r.rand.Intn(n - 1)
	s[i], s[i+1] = s[i+1], s[i]

	return s
}
