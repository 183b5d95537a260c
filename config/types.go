package config

// Default workload parameters.
const (
	DefaultArraySize = 131072
	MinArraySize     = 1024
)

// Config holds the benchmark parameters. Treated as immutable once
// Validate has passed.
type Config struct {
	Iterations int   `json:"iterations"` // per worker, required
	Workers    int   `json:"workers"`
	ArraySize  int   `json:"arraySize"`
	Seed       int64 `json:"seed"`
	HasSeed    bool  `json:"-"`
	PinWorkers bool  `json:"pinWorkers"`
	Debug      bool  `json:"debug"`
}
