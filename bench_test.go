package bisect

import (
	"testing"

	"github.com/hupe1980/bisect/testutil"
	"github.com/hupe1980/bisect/variation"
)

func benchmarkFixture(b *testing.B, n int) ([]int, []int) {
	b.Helper()

	rng := testutil.NewRNG(4711)
	s := rng.SortedInts(n, 3)

	targets := make([]int, 256)
	for i := range targets {
		targets[i] = s[rng.Intn(len(s))]
	}

	return s, targets
}

func BenchmarkSearch(b *testing.B) {
	s, targets := benchmarkFixture(b, 1<<16)
	b.ReportAllocs()

	i := 0
	for n := 0; n < b.N; n++ {
		Search(s, targets[i%len(targets)])
		i++
	}
}

func BenchmarkExponentialSearch(b *testing.B) {
	s, targets := benchmarkFixture(b, 1<<16)
	b.ReportAllocs()

	i := 0
	for n := 0; n < b.N; n++ {
		variation.ExponentialSearch(s, targets[i%len(targets)])
		i++
	}
}

// Exponential search's sweet spot: targets clustered at the front.
func BenchmarkExponentialSearch_FrontTargets(b *testing.B) {
	s, _ := benchmarkFixture(b, 1<<16)
	b.ReportAllocs()

	i := 0
	for n := 0; n < b.N; n++ {
		variation.ExponentialSearch(s, s[i%64])
		i++
	}
}

func BenchmarkLinearInterpolationSearch(b *testing.B) {
	s, targets := benchmarkFixture(b, 1<<16)
	b.ReportAllocs()

	i := 0
	for n := 0; n < b.N; n++ {
		variation.LinearInterpolationSearch(s, targets[i%len(targets)])
		i++
	}
}

func BenchmarkUniformSearch(b *testing.B) {
	s, targets := benchmarkFixture(b, 1<<16)
	u := variation.NewUniform[int]()
	b.ReportAllocs()

	i := 0
	for n := 0; n < b.N; n++ {
		u.Search(s, targets[i%len(targets)])
		i++
	}
}
