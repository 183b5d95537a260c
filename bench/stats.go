package bench

import "math"

// Summarize computes aggregate statistics over the concatenated
// duration samples. Sample order carries no meaning; any permutation
// of the same multiset yields the same result.
func Summarize(samples []float64) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	s := Stats{
		Count: len(samples),
		Min:   samples[0],
		Max:   samples[0],
	}
	var sum float64
	for _, v := range samples {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(len(samples))

	var sq float64
	for _, v := range samples {
		d := v - s.Mean
		sq += d * d
	}
	s.StdDev = math.Sqrt(sq / float64(len(samples)))
	return s
}
