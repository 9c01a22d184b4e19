// Package logger provides a standardized logging interface for the application
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// contextKey is a private type for context keys
type contextKey int

// loggerKey is the key for the logger in the context
const loggerKey contextKey = iota

// LogLevel represents log levels
type LogLevel string

// Log levels
const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Config holds logger configuration
type Config struct {
	// Level is the log level: debug, info, warn, error
	Level LogLevel
	// Format can be "json" or "console"
	Format string
	// ConsoleTimeFormat is the time format for console output
	ConsoleTimeFormat string
	// CallerInfo determines whether to include caller information
	CallerInfo bool
	// Out receives log lines. Stdout is reserved for command output and
	// the MCP stream, so this defaults to stderr.
	Out io.Writer
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:             LogInfo,
		Format:            "console",
		ConsoleTimeFormat: time.RFC3339,
		CallerInfo:        false,
		Out:               os.Stderr,
	}
}

// EnvConfig loads logger configuration from environment variables
func EnvConfig() Config {
	config := DefaultConfig()

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Level = LogLevel(level)
	}

	if format := os.Getenv("LOG_FORMAT"); format != "" {
		config.Format = format
	}

	return config
}

// ParseLevel maps a LogLevel to a zerolog level, defaulting to info
func ParseLevel(level LogLevel) zerolog.Level {
	switch level {
	case LogDebug:
		return zerolog.DebugLevel
	case LogInfo:
		return zerolog.InfoLevel
	case LogWarn:
		return zerolog.WarnLevel
	case LogError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Setup configures the global logger
func Setup(config Config) {
	zerolog.SetGlobalLevel(ParseLevel(config.Level))

	out := config.Out
	if out == nil {
		out = os.Stderr
	}

	if config.Format == "console" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: config.ConsoleTimeFormat,
		}).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	}

	if config.CallerInfo {
		log.Logger = log.With().Caller().Logger()
	}
}

// FromContext returns the logger from the context or the default logger if not found
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx == nil {
		return log.Logger
	}

	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return logger
	}

	return log.Logger
}

// WithContext adds a logger to the context
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithField adds a field to the logger in the context
func WithField(ctx context.Context, key string, value interface{}) (context.Context, zerolog.Logger) {
	logger := FromContext(ctx).With().Interface(key, value).Logger()
	return WithContext(ctx, logger), logger
}
