package log

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/YuminosukeSato/decompbench/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	providerMu sync.RWMutex
	global     Logger = NewNopLogger()
)

// SetupLogger installs a zerolog-backed JSON logger writing to w as the
// process-wide logger and routes errors.Warn through it.
// An empty level or "disabled" leaves logging off and silences warnings.
func SetupLogger(loglevel string, w io.Writer) error {
	level, err := ParseLevel(loglevel)
	if err != nil {
		return err
	}
	if level == LevelDisabled {
		SetLogger(NewNopLogger())
		errors.SetZerologWarnFunc(func(error) {})
		return nil
	}

	logger := NewZerologLogger(w, level)
	SetLogger(logger)
	errors.SetZerologWarnFunc(func(warning error) {
		logger.Warn("warning raised", WarningKey, warning)
	})
	return nil
}

// ParseLevel converts a textual level into a Level.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "", "disabled", "off":
		return LevelDisabled, nil
	default:
		return LevelDisabled, errors.NewValidationError("log_level", "unknown log level", level)
	}
}

// GetLogger returns the process-wide logger.
func GetLogger() Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return global
}

// GetLoggerWithName returns the process-wide logger tagged with a component name.
func GetLoggerWithName(name string) Logger {
	return GetLogger().With(ComponentKey, name)
}

// SetLogger replaces the process-wide logger and returns the previous one.
func SetLogger(logger Logger) Logger {
	providerMu.Lock()
	defer providerMu.Unlock()
	prev := global
	global = logger
	return prev
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
	WarningKey        = "warning"
)

type zerologLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger returns a Logger writing JSON lines to w at the given minimum level.
func NewZerologLogger(w io.Writer, level Level) Logger {
	zl := zerolog.New(w).With().Timestamp().Logger().Level(toZerologLevel(level))
	return &zerologLogger{zl: zl}
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger {
	return &zerologLogger{zl: zerolog.Nop()}
}

func (l *zerologLogger) Debug(msg string, fields ...any) {
	emit(l.zl.Debug(), msg, fields)
}

func (l *zerologLogger) Info(msg string, fields ...any) {
	emit(l.zl.Info(), msg, fields)
}

func (l *zerologLogger) Warn(msg string, fields ...any) {
	emit(l.zl.Warn(), msg, fields)
}

func (l *zerologLogger) Error(msg string, fields ...any) {
	emit(l.zl.Error(), msg, fields)
}

func (l *zerologLogger) With(fields ...any) Logger {
	return &zerologLogger{zl: l.zl.With().Fields(fields).Logger()}
}

func (l *zerologLogger) Enabled(ctx context.Context, level Level) bool {
	current := l.zl.GetLevel()
	if current == zerolog.Disabled || level == LevelDisabled {
		return false
	}
	return toZerologLevel(level) >= current
}

// emit writes one event. A leading error field is recorded with its stack trace.
func emit(e *zerolog.Event, msg string, fields []any) {
	if e == nil {
		return
	}
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			e = e.Err(err)
			if stack := errors.StackTrace(err); stack != "" {
				e = e.Str(StacktraceAttrKey, stack)
			}
			fields = fields[1:]
		}
	}
	if len(fields) > 0 {
		e = e.Fields(fields)
	}
	e.Msg(msg)
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level >= LevelDisabled:
		return zerolog.Disabled
	case level >= LevelError:
		return zerolog.ErrorLevel
	case level >= LevelWarn:
		return zerolog.WarnLevel
	case level >= LevelInfo:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}
