// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mdhender/sqlitemgr/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelWarn,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger(config.LoggingConfig{Level: "info", Format: "json"}, "1.0.0", &buf)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	defer l.Close()

	l.Info("connected", "path", "test.db")
	l.Debug("filtered")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "connected" || entry["path"] != "test.db" || entry["version"] != "1.0.0" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger(config.LoggingConfig{Level: "info", Format: "console"}, "1.0.0", &buf)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	defer l.Close()

	l.Error("operation failed", "op", "insert")

	out := buf.String()
	if !strings.Contains(out, "operation failed") || !strings.Contains(out, "insert") {
		t.Errorf("unexpected console output %q", out)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("console output should not be raw JSON: %q", out)
	}
}

func TestNew_File(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "sqlitemgr.log")
	l, err := newLogger(config.LoggingConfig{
		Level:  "info",
		Format: "text",
		File:   config.LogFileConfig{Path: path, MaxSizeMB: 1},
	}, "1.0.0", &buf)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}

	l.Info("closed")
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "msg=closed") {
		t.Errorf("log file missing record: %q", data)
	}
	if !strings.Contains(buf.String(), "msg=closed") {
		t.Errorf("console missing record: %q", buf.String())
	}
}
