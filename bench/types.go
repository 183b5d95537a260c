package bench

// Stats summarizes per-iteration sort latencies in milliseconds. The
// standard deviation is the population form: the samples are the
// complete set of measured iterations, not a sample of a larger one.
type Stats struct {
	Count  int
	Mean   float64
	Min    float64
	Max    float64
	StdDev float64
}

// Report is the aggregate outcome of one benchmark run.
type Report struct {
	Workers       int
	Iterations    int // total across all workers
	ArraySize     int
	WallTimeMs    float64
	Elements      int64 // total elements sorted
	ThroughputEPS float64
	Latency       Stats
	Seeds         []uint32 // effective per-worker PRNG seeds
}
