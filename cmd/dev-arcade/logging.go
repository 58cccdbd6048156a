package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/dev-arcade/config"
)

const (
	logFileName = "dev-arcade.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging opens the log file and builds the root logger
// tcell owns stdout, so logs go to a file or nowhere; the returned file is nil when logging is off
func setupLogging(cfg config.LoggingConfig) (*slog.Logger, *os.File, error) {
	if cfg.Level == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}

	level, ok := config.ParseLogLevel(cfg.Level)
	if !ok {
		return nil, nil, fmt.Errorf("%w: unknown log level %q", config.ErrInvalid, cfg.Level)
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(cfg.Dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(cfg.Dir, fmt.Sprintf("dev-arcade-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			return nil, nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	logger.Debug("logger initialized", "component", "logger", "level", cfg.Level, "path", path)
	return logger, f, nil
}
