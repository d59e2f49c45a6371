// Package variation implements variations of binary search.
//
// ExponentialSearch narrows the range by doubling a bound before
// delegating to binary search, which wins when the target sits near the
// front of the slice. InterpolationSearch probes where a caller-supplied
// estimator expects the target to be, with LinearInterpolationSearch as
// the standard linear specialization for integer elements. Uniform drives
// binary search from a precomputed step table that is cached per slice
// length and reused across calls.
package variation
