package profilecache

import (
	"context"
	"log/slog"
	"os"
	"strings"

	platformerrors "github.com/jmgilman/go/errors"
)

// LogLevel represents different logging levels.
type LogLevel int

// LogLevelDebug represents debug logging level
const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// LogConfig holds configuration for the cache logger.
type LogConfig struct {
	// Level sets the minimum log level.
	Level LogLevel
	// EnableCallerInfo includes file and line number in logs.
	EnableCallerInfo bool
}

// DefaultLogConfig returns a default logging configuration.
func DefaultLogConfig() LogConfig {
	return LogConfig{Level: LogLevelInfo}
}

// Logger provides structured logging for the cache. It is a thin wrapper
// over slog so callers can swap handlers without the cache caring.
type Logger struct {
	l *slog.Logger
}

// NewLogger creates a structured logger writing to stderr with the given
// configuration.
func NewLogger(config LogConfig) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     slogLevel(config.Level),
		AddSource: config.EnableCallerInfo,
	})
	return &Logger{l: slog.New(handler)}
}

// NewNopLogger creates a logger that discards all log messages.
func NewNopLogger() *Logger {
	return &Logger{l: slog.New(slog.DiscardHandler)}
}

// Debug logs debug-level messages.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.l.DebugContext(ctx, msg, args...)
}

// Info logs info-level messages.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.l.InfoContext(ctx, msg, args...)
}

// Warn logs warning-level messages.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.l.WarnContext(ctx, msg, args...)
}

// Error logs error-level messages.
func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	l.l.ErrorContext(ctx, msg, args...)
}

// With returns a logger with additional context fields.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{l: l.l.With(args...)}
}

// WithOperation returns a logger with operation context.
func (l *Logger) WithOperation(operation string) *Logger {
	return l.With("operation", operation)
}

// WithUser returns a logger with user context.
func (l *Logger) WithUser(userID string) *Logger {
	return l.With("user_id", userID)
}

// ParseLogLevel parses a string log level into a LogLevel.
func ParseLogLevel(level string) (LogLevel, error) {
	switch strings.ToLower(level) {
	case "debug":
		return LogLevelDebug, nil
	case "info":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	default:
		return LogLevelInfo, platformerrors.Newf(platformerrors.CodeInvalidInput,
			"invalid log level: %s", level)
	}
}

func slogLevel(level LogLevel) slog.Level {
	switch level {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
