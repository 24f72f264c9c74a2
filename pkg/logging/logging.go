// Package logging configures the process-wide slog logger for lparsum.
//
// Logs go to stderr so that reports written to stdout can be piped.
//
//	logging.Init(os.Stderr, slog.LevelDebug, false)
//	log := logging.Component("inventory")
//	log.Debug("parsed file", "path", path, "records", n)
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the global logger instance.
var Logger *slog.Logger

// Init installs a text or JSON handler writing to w at the given level.
func Init(w io.Writer, level slog.Level, jsonFormat bool) {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if jsonFormat {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

// Component returns a logger tagged with the component name.
func Component(name string) *slog.Logger {
	if Logger == nil {
		Init(os.Stderr, slog.LevelWarn, false)
	}
	return Logger.With("component", name)
}

// ParseLevel maps a config level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}
