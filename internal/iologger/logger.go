// Package iologger provides slog-based logging initialization and configuration.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gnames/taxseed/pkg/config"
	"github.com/lmittmann/tint"
)

// LogFile is the name of the log file in the log directory.
const LogFile = "taxseed.log"

// Init initializes the global slog logger with the given configuration.
// For the "file" destination the log file in logDir is recreated on every
// start.
func Init(logDir string, cfg config.LogConfig) error {
	var writer io.Writer

	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		file, err := os.Create(logPath)
		if err != nil {
			return CreateLogFileError(logPath, err)
		}
		writer = file
	default:
		writer = os.Stderr
	}

	slog.SetDefault(slog.New(newHandler(writer, cfg)))
	return nil
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	level := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}

	switch cfg.Format {
	case "text":
		return slog.NewTextHandler(w, opts)
	case "tint":
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
