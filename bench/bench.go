// Package bench orchestrates a benchmark run: it derives per-worker
// seeds, fans out one worker per configured thread, joins on all of
// them and aggregates the results.
package bench

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/sync/errgroup"

	"sortbench/config"
	"sortbench/worker"
)

// saltStride spaces per-worker salts by a golden-ratio increment.
// s ^ (s+1) is always a mask of low one-bits, never the stride, so a
// salted seed can never collide with a neighbouring worker's.
const saltStride = 0x9E3779B9

// Run spawns cfg.Workers workers, waits for every result and
// aggregates them into a Report. Wall time spans from just before the
// first spawn to just after the last join. Any worker error fails the
// whole run; no partial aggregate is ever reported.
func Run(ctx context.Context, cfg config.Config, clock worker.Clock) (Report, error) {
	seeds, err := workerSeeds(cfg)
	if err != nil {
		return Report{}, err
	}

	results := make([]worker.Result, cfg.Workers)
	start := clock.Now()

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Workers; i++ {
		i := i
		g.Go(func() error {
			wcfg := worker.Config{
				ID:         i,
				Iterations: cfg.Iterations,
				ArraySize:  cfg.ArraySize,
				Seed:       seeds[i],
				Salt:       uint32(i) * saltStride,
				PinCPU:     cfg.PinWorkers,
				Debug:      cfg.Debug,
			}
			res, err := worker.Run(gctx, wcfg, clock)
			if err != nil {
				return fmt.Errorf("worker %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	wallMs := clock.Now().Sub(start).Seconds() * 1e3

	report := Report{
		Workers:    cfg.Workers,
		Iterations: cfg.Iterations * cfg.Workers,
		ArraySize:  cfg.ArraySize,
		WallTimeMs: wallMs,
		Seeds:      make([]uint32, 0, cfg.Workers),
	}
	all := make([]float64, 0, report.Iterations)
	for _, res := range results {
		all = append(all, res.DurationsMs...)
		report.Elements += res.Elements
		report.Seeds = append(report.Seeds, res.Seed)
	}
	report.Latency = Summarize(all)
	if wallMs > 0 {
		report.ThroughputEPS = float64(report.Elements) / (wallMs / 1e3)
	}
	return report, nil
}

// workerSeeds derives one seed per worker: baseSeed+i when a base seed
// was supplied, otherwise an independent unpredictable draw per worker.
func workerSeeds(cfg config.Config) ([]uint32, error) {
	seeds := make([]uint32, cfg.Workers)
	if cfg.HasSeed {
		for i := range seeds {
			seeds[i] = uint32(cfg.Seed + int64(i))
		}
		return seeds, nil
	}

	var buf [4]byte
	for i := range seeds {
		if _, err := crand.Read(buf[:]); err != nil {
			return nil, fmt.Errorf("drawing worker seed: %w", err)
		}
		seeds[i] = binary.LittleEndian.Uint32(buf[:])
	}
	return seeds, nil
}
