package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"sortbench/bench"
	cfg "sortbench/config"
	"sortbench/sysinfo"
	"sortbench/utils"
	"sortbench/worker"
)

func main() {
	var (
		iters      = flag.Int("iters", 0, "Iterations per worker (required, > 0)")
		threads    = flag.Int("threads", 0, "Number of parallel workers (default: logical core count)")
		size       = flag.Int("size", 0, "Elements per iteration array (minimum 1024, default 131072)")
		seed       = flag.Int64("seed", 0, "Base seed for reproducible workloads (worker i uses seed+i)")
		pinWorkers = flag.Bool("pin", false, "Pin each worker to a CPU core (Linux, may require root)")
		debugFlag  = flag.Bool("d", false, "Enable debug logging")
		configPath = flag.String("config", "config.json", "Optional JSON config file")
	)
	flag.Parse()

	configuration, err := cfg.Load(*configPath)
	if err != nil {
		utils.LogMessage(fmt.Sprintf("Failed to load %s, using default settings: %v", *configPath, err), true)
	}

	// Flags override file settings, file settings override defaults.
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["iters"] {
		configuration.Iterations = *iters
	}
	if set["threads"] {
		configuration.Workers = *threads
	}
	if set["size"] {
		configuration.ArraySize = *size
	}
	if set["seed"] {
		configuration.Seed = *seed
		configuration.HasSeed = true
	}
	if set["pin"] {
		configuration.PinWorkers = *pinWorkers
	}
	configuration.Debug = configuration.Debug || *debugFlag

	if err := configuration.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "sortbench: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: sortbench --iters=<N> [--threads=<T>] [--size=<S>] [--seed=<int>]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	printBanner(configuration)

	utils.LogMessage(fmt.Sprintf("Starting benchmark: %d workers x %d iterations x %d elements",
		configuration.Workers, configuration.Iterations, configuration.ArraySize), configuration.Debug)

	report, err := bench.Run(context.Background(), configuration, worker.SystemClock())
	if err != nil {
		utils.LogMessage(fmt.Sprintf("Benchmark failed: %v", err), true)
		os.Exit(1)
	}

	printReport(report)
}

func printBanner(configuration cfg.Config) {
	info := sysinfo.Collect()

	fmt.Println("=== Parallel Heap Sort Benchmark ===")
	fmt.Printf("Platform: %s\n", info.Platform)
	fmt.Printf("Runtime: %s\n", info.GoRuntime)
	fmt.Printf("CPU: %s, Logical cores: %d\n", info.CPUModel, info.LogicalCores)
	if info.MemoryTotal > 0 {
		fmt.Printf("Memory: %s total\n", utils.FormatSize(int64(info.MemoryTotal)))
	}
	fmt.Printf("Workload: %d iterations x %d elements per worker\n", configuration.Iterations, configuration.ArraySize)
	fmt.Printf("Workers: %d\n", configuration.Workers)
	if configuration.HasSeed {
		fmt.Printf("Base seed: %d\n", configuration.Seed)
	} else {
		fmt.Println("Base seed: random (independent per worker)")
	}
	fmt.Printf("Started at: %s\n", time.Now().Format("2006-01-02 15:04:05"))
}

func printReport(report bench.Report) {
	fmt.Println("=== RESULTS ===")
	fmt.Printf("Workers: %d\n", report.Workers)
	fmt.Printf("Total iterations: %d\n", report.Iterations)
	fmt.Printf("Array size: %d\n", report.ArraySize)
	fmt.Printf("Wall time: %.2f ms\n", report.WallTimeMs)
	fmt.Printf("Throughput: %.0f elements/s (%s/s)\n",
		report.ThroughputEPS, utils.FormatCount(uint64(report.ThroughputEPS)))
	fmt.Printf("Per-iteration latency: mean=%.3f ms, stddev=%.3f ms, min=%.3f ms, max=%.3f ms\n",
		report.Latency.Mean, report.Latency.StdDev, report.Latency.Min, report.Latency.Max)
}
