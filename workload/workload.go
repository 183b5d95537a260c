// Package workload builds the synthetic arrays the sort kernel is timed
// against.
package workload

import "sortbench/xrand"

// Generate returns a freshly allocated array of size signed 32-bit
// integers. Each element consumes two draws a, b from rng and is
// int32(a ^ (b << 1)); the generator advances by exactly 2*size draws.
// The result is owned by the caller and never reused.
func Generate(rng *xrand.Gen, size int) []int32 {
	data := make([]int32, size)
	for i := range data {
		a := rng.Next()
		b := rng.Next()
		data[i] = int32(a ^ (b << 1))
	}
	return data
}
