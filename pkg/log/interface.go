// Package log provides a structured logging interface for decompbench.
//
// The interface is slog-shaped and backed by github.com/rs/zerolog. Loggers
// are obtained from a process-wide provider, which is disabled until the
// driver calls SetupLogger, so library code can log freely without writing
// to stderr by default.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("decomposition.harness")
//	logger.Debug("Decomposition timed",
//	    log.MethodKey, "QR",
//	    log.IterationsKey, 5,
//	    log.DurationMsKey, 1.25,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are alternating key-value pairs. The With method returns a child
// logger with fields pre-populated.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If the first field is an error, it is recorded under the "error" key
	// together with its stack trace.
	//
	// Example:
	//   logger.Error("Cholesky decomposition failed",
	//       err,
	//       log.MethodKey, "Cholesky",
	//   )
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given level.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug    Level = -4 // Detailed diagnostic information
	LevelInfo     Level = 0  // General operational information
	LevelWarn     Level = 4  // Warning conditions
	LevelError    Level = 8  // Error conditions
	LevelDisabled Level = 12 // Nothing is emitted
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelDisabled:
		return "DISABLED"
	default:
		return "UNKNOWN"
	}
}
