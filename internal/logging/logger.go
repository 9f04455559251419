package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logger configuration
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // json, text
	Output      string // stdout, stderr
	Component   string
	Environment string
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		Output:      "stdout",
		Environment: "development",
	}
}

// ParseLevel maps a level name to a slog level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// New creates a logger writing to the configured stream
func New(config Config) *slog.Logger {
	var output io.Writer = os.Stdout
	if config.Output == "stderr" {
		output = os.Stderr
	}
	return NewWithWriter(config, output)
}

// NewWithWriter creates a logger writing to w
func NewWithWriter(config Config, w io.Writer) *slog.Logger {
	level, err := ParseLevel(config.Level)
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch config.Format {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	if config.Component != "" {
		logger = logger.With("component", config.Component)
	}
	if config.Environment != "" {
		logger = logger.With("environment", config.Environment)
	}
	return logger
}
