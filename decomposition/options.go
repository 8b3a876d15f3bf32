package decomposition

import (
	"io"
	"time"

	"github.com/YuminosukeSato/decompbench/pkg/log"
)

// Option is a function that configures a Harness.
type Option func(*Harness)

// WithDiagnostics sets where failure diagnostics are written. Defaults to os.Stderr.
func WithDiagnostics(w io.Writer) Option {
	return func(h *Harness) {
		h.diagnostics = w
	}
}

// WithLogger sets the structured logger. Defaults to the process-wide logger.
func WithLogger(logger log.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(h *Harness) {
		h.now = now
	}
}

// WithDecomposer replaces the factorization run for a method.
// A Decomposer returning false reports a failed factorization.
func WithDecomposer(m Method, d Decomposer) Option {
	return func(h *Harness) {
		h.decomposers[m] = d
	}
}
