// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package logging builds the slog logger used by the command line front
// end and handed to the connection manager.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mdhender/sqlitemgr/internal/config"
)

// Logger wraps slog.Logger with the resources behind its outputs.
type Logger struct {
	*slog.Logger
	file *lumberjack.Logger
}

// New creates a Logger from cfg.
//
// The console format renders slog's JSON records through zerolog's
// ConsoleWriter; text and json write slog's own formats. When a log file is
// configured every record is also appended to a rotating file.
func New(cfg config.LoggingConfig, version string) (*Logger, error) {
	var output io.Writer
	switch strings.ToLower(cfg.Output) {
	case "stdout":
		output = os.Stdout
	default:
		output = os.Stderr
	}
	return newLogger(cfg, version, output)
}

func newLogger(cfg config.LoggingConfig, version string, output io.Writer) (*Logger, error) {
	l := &Logger{}

	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	format := strings.ToLower(cfg.Format)
	if format == "console" {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: "2006-01-02 15:04:05"}
		opts.ReplaceAttr = zerologKeys
	}

	if cfg.File.Path != "" {
		if err := ensureLogDir(cfg.File.Path); err != nil {
			return nil, err
		}
		l.file = &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAgeDays,
			Compress:   cfg.File.Compress,
		}
		output = zerolog.MultiLevelWriter(output, l.file)
	}

	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(output, opts)
	default:
		handler = slog.NewJSONHandler(output, opts)
	}

	handler = handler.WithAttrs([]slog.Attr{
		slog.String("version", version),
	})

	l.Logger = slog.New(handler)
	return l, nil
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel converts a string log level to slog.Level.
// Defaults to warn if unrecognised.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// zerologKeys renames slog's message and level fields to the names
// zerolog's ConsoleWriter reads.
func zerologKeys(groups []string, a slog.Attr) slog.Attr {
	if len(groups) != 0 {
		return a
	}
	switch a.Key {
	case slog.MessageKey:
		a.Key = zerolog.MessageFieldName
	case slog.LevelKey:
		if level, ok := a.Value.Any().(slog.Level); ok {
			return slog.String(zerolog.LevelFieldName, strings.ToLower(level.String()))
		}
	case slog.TimeKey:
		a.Key = zerolog.TimestampFieldName
	}
	return a
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
