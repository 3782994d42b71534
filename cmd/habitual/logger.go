package main

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/evanhagen/habitual/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// setupLogger creates a logger that writes JSON lines to a rotating file
// instead of stderr, so log output never corrupts the TUI display. The
// caller must close the returned writer.
func setupLogger(cfg *config.Config) (*slog.Logger, io.WriteCloser) {
	w := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogDir(), "habitual.log"),
		MaxSize:    cfg.LogRotation.MaxSizeMB,
		MaxBackups: cfg.LogRotation.MaxBackups,
		MaxAge:     cfg.LogRotation.MaxAgeDays,
		Compress:   cfg.LogRotation.Compress,
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))

	return logger, w
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
