package logging

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"":      slog.LevelInfo,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for raw, want := range cases {
		got, err := ParseLevel(raw)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", raw, got, err, want)
		}
	}
	if _, err := ParseLevel("chatty"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewWritesTextRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)
	logger.Debug("hidden")
	logger.Info("tasks_saved", "count", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record should be filtered: %q", out)
	}
	if !strings.Contains(out, "msg=tasks_saved") || !strings.Contains(out, "count=3") {
		t.Fatalf("unexpected log output: %q", out)
	}
}

func TestOpenAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "levelup.log")
	logger, closeFn, err := Open(path, slog.LevelInfo, io.Discard)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	logger.Info("level_up", "level", 2)
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(raw), "msg=level_up") {
		t.Fatalf("expected level_up record, got %q", raw)
	}
}

func TestOpenWithoutPathUsesFallback(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := Open("", slog.LevelInfo, &buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	logger.Info("tasks_loaded")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !strings.Contains(buf.String(), "msg=tasks_loaded") {
		t.Fatalf("expected fallback writer to receive record, got %q", buf.String())
	}
}
