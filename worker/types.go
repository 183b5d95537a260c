package worker

import "time"

// Clock supplies the timestamps bracketing the timed sort window. It is
// injected so the loop can be tested against a fake.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real monotonic clock.
func SystemClock() Clock { return systemClock{} }

// Config describes one worker's share of the run.
type Config struct {
	ID         int
	Iterations int
	ArraySize  int
	Seed       uint32 // per-worker seed derived by the orchestrator
	Salt       uint32 // XORed into Seed, unique per worker
	PinCPU     bool
	Debug      bool
}

// Result is produced once per worker and immutable after return.
type Result struct {
	DurationsMs []float64 // one entry per iteration, sort call only
	Elements    int64
	Seed        uint32 // effective PRNG seed after salting
}
