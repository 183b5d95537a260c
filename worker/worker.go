// Package worker runs the per-worker iteration loop: generate one
// workload, time one sort, repeat for a fixed iteration count.
package worker

import (
	"context"
	"fmt"
	"time"

	"sortbench/heapsort"
	"sortbench/utils"
	"sortbench/workload"
	"sortbench/xrand"
)

// Run executes cfg.Iterations rounds of generate-then-sort and returns
// the collected durations. Only the sort call sits between the two
// clock reads; generation is outside the timed window. Invalid
// parameters or a cancelled context abort the loop with no partial
// result.
func Run(ctx context.Context, cfg Config, clock Clock) (Result, error) {
	if cfg.Iterations <= 0 {
		return Result{}, fmt.Errorf("iterations must be positive, got %d", cfg.Iterations)
	}
	if cfg.ArraySize <= 0 {
		return Result{}, fmt.Errorf("array size must be positive, got %d", cfg.ArraySize)
	}

	if cfg.PinCPU {
		cleanup, err := pin(cfg.ID)
		if err != nil {
			utils.LogMessage(fmt.Sprintf("Worker %d: failed to set CPU affinity: %v (may require elevated privileges)", cfg.ID, err), true)
		} else {
			defer cleanup()
			if cfg.Debug {
				utils.LogMessage(fmt.Sprintf("Worker %d: pinned to a CPU core", cfg.ID), true)
			}
		}
	}

	rng := xrand.New(cfg.Seed ^ cfg.Salt)
	result := Result{
		DurationsMs: make([]float64, 0, cfg.Iterations),
		Seed:        cfg.Seed ^ cfg.Salt,
	}

	for i := 0; i < cfg.Iterations; i++ {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		data := workload.Generate(rng, cfg.ArraySize)
		t1 := clock.Now()
		heapsort.Sort(data)
		t2 := clock.Now()

		result.DurationsMs = append(result.DurationsMs, float64(t2.Sub(t1))/float64(time.Millisecond))
		result.Elements += int64(cfg.ArraySize)
	}
	return result, nil
}
