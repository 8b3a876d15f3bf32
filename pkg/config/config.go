// Package config holds the benchmark's run parameters.
//
// Matrix size and iteration count are fixed constants; the environment can
// only pin the random seed, turn on structured logging, or request a chart.
// Nothing is persisted.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/decompbench/pkg/errors"
	"github.com/YuminosukeSato/decompbench/pkg/log"
)

const (
	// DefaultMatrixSize is the N of the benchmarked N×N matrix.
	DefaultMatrixSize = 60

	// DefaultIterations is how many times each decomposition runs.
	DefaultIterations = 5
)

// Environment variables read by FromEnv.
const (
	EnvSeed     = "DECOMPBENCH_SEED"
	EnvLogLevel = "DECOMPBENCH_LOG_LEVEL"
	EnvPlot     = "DECOMPBENCH_PLOT"
)

// Config is one benchmark run.
type Config struct {
	MatrixSize int
	Iterations int
	Seed       *uint64 // nil draws an unseeded matrix
	LogLevel   string  // "" keeps logging disabled
	PlotPath   string  // "" skips the chart
}

// Default returns the fixed 60x60, 5-iteration configuration.
func Default() Config {
	return Config{
		MatrixSize: DefaultMatrixSize,
		Iterations: DefaultIterations,
	}
}

// FromEnv overlays the environment onto Default. Pass os.LookupEnv in production.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg := Default()

	if raw, ok := lookup(EnvSeed); ok && strings.TrimSpace(raw) != "" {
		seed, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return cfg, errors.NewValidationError(EnvSeed, "must be an unsigned integer", raw)
		}
		cfg.Seed = &seed
	}

	if raw, ok := lookup(EnvLogLevel); ok {
		if _, err := log.ParseLevel(raw); err != nil {
			return cfg, errors.Wrapf(err, "reading %s", EnvLogLevel)
		}
		cfg.LogLevel = strings.TrimSpace(raw)
	}

	if raw, ok := lookup(EnvPlot); ok {
		cfg.PlotPath = strings.TrimSpace(raw)
	}

	return cfg, cfg.Validate()
}

// Validate checks the invariants the harness relies on.
func (c Config) Validate() error {
	if c.MatrixSize <= 0 {
		return errors.NewValidationError("matrix_size", "must be positive", c.MatrixSize)
	}
	if c.Iterations < 1 {
		return errors.NewValidationError("iterations", "must be at least 1", c.Iterations)
	}
	return nil
}
