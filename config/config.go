package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	gcpu "github.com/shirou/gopsutil/v4/cpu"
)

// Default returns the built-in configuration: one worker per logical
// core and the default array size. Iterations has no default and must
// be supplied.
func Default() Config {
	workers, err := gcpu.Counts(true)
	if err != nil || workers < 1 {
		workers = runtime.NumCPU()
	}
	return Config{
		Workers:   workers,
		ArraySize: DefaultArraySize,
	}
}

// fileConfig mirrors Config with pointer fields so that an absent key
// in the JSON file leaves the default untouched.
type fileConfig struct {
	Iterations *int   `json:"iterations"`
	Workers    *int   `json:"workers"`
	ArraySize  *int   `json:"arraySize"`
	Seed       *int64 `json:"seed"`
	PinWorkers *bool  `json:"pinWorkers"`
	Debug      *bool  `json:"debug"`
}

// Load returns the defaults overlaid with settings from the JSON file
// at path. The file is optional: if it does not exist the defaults are
// returned with no error.
func Load(path string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return config, fmt.Errorf("parsing %s: %w", path, err)
	}

	if fc.Iterations != nil {
		config.Iterations = *fc.Iterations
	}
	if fc.Workers != nil {
		config.Workers = *fc.Workers
	}
	if fc.ArraySize != nil {
		config.ArraySize = *fc.ArraySize
	}
	if fc.Seed != nil {
		config.Seed = *fc.Seed
		config.HasSeed = true
	}
	if fc.PinWorkers != nil {
		config.PinWorkers = *fc.PinWorkers
	}
	if fc.Debug != nil {
		config.Debug = *fc.Debug
	}
	return config, nil
}

// Validate checks the parameters before any worker is spawned.
func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations per worker must be a positive integer, got %d", c.Iterations)
	}
	if c.Workers < 1 {
		return fmt.Errorf("worker count must be at least 1, got %d", c.Workers)
	}
	if c.ArraySize < MinArraySize {
		return fmt.Errorf("array size must be at least %d, got %d", MinArraySize, c.ArraySize)
	}
	return nil
}
