package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"sortbench/config"
	"sortbench/worker"
)

func TestRunEndToEnd(t *testing.T) {
	cfg := config.Config{
		Iterations: 10,
		Workers:    2,
		ArraySize:  2048,
		Seed:       42,
		HasSeed:    true,
	}

	report, err := Run(context.Background(), cfg, worker.SystemClock())
	require.NoError(t, err)

	require.Equal(t, 2, report.Workers)
	require.Equal(t, 20, report.Iterations)
	require.Equal(t, 2048, report.ArraySize)
	require.Equal(t, int64(20*2048), report.Elements)
	require.Equal(t, 20, report.Latency.Count)
	require.Len(t, report.Seeds, 2)
	require.NotEqual(t, report.Seeds[0], report.Seeds[1])

	require.GreaterOrEqual(t, report.Latency.Max, report.Latency.Min)
	require.GreaterOrEqual(t, report.Latency.Mean, report.Latency.Min)
	require.LessOrEqual(t, report.Latency.Mean, report.Latency.Max)
}

func TestRunThroughputSanity(t *testing.T) {
	cfg := config.Config{
		Iterations: 5,
		Workers:    2,
		ArraySize:  4096,
		Seed:       1,
		HasSeed:    true,
	}

	report, err := Run(context.Background(), cfg, worker.SystemClock())
	require.NoError(t, err)
	require.Positive(t, report.WallTimeMs)
	require.Positive(t, report.ThroughputEPS)
	require.InEpsilon(t, float64(report.Elements),
		report.ThroughputEPS*report.WallTimeMs/1e3, 1e-6)
}

func TestRunDeterministicSeeds(t *testing.T) {
	cfg := config.Config{
		Iterations: 1,
		Workers:    3,
		ArraySize:  1024,
		Seed:       100,
		HasSeed:    true,
	}

	a, err := Run(context.Background(), cfg, worker.SystemClock())
	require.NoError(t, err)
	b, err := Run(context.Background(), cfg, worker.SystemClock())
	require.NoError(t, err)
	require.Equal(t, a.Seeds, b.Seeds)
}

func TestRunRandomSeedsWithoutBaseSeed(t *testing.T) {
	cfg := config.Config{
		Iterations: 1,
		Workers:    4,
		ArraySize:  1024,
	}

	report, err := Run(context.Background(), cfg, worker.SystemClock())
	require.NoError(t, err)
	require.Len(t, report.Seeds, 4)
}

func TestRunFailsWhenAnyWorkerFails(t *testing.T) {
	// A corrupted array size makes every worker reject its input; the
	// run must fail as a whole rather than aggregate partial data.
	cfg := config.Config{
		Iterations: 1,
		Workers:    2,
		ArraySize:  -1,
		Seed:       1,
		HasSeed:    true,
	}

	report, err := Run(context.Background(), cfg, worker.SystemClock())
	require.Error(t, err)
	require.Zero(t, report.Elements)
	require.Zero(t, report.Latency.Count)
}

func TestWorkerSeedsDerivation(t *testing.T) {
	cfg := config.Config{Workers: 4, Seed: 1000, HasSeed: true}
	seeds, err := workerSeeds(cfg)
	require.NoError(t, err)
	require.Equal(t, []uint32{1000, 1001, 1002, 1003}, seeds)
}
