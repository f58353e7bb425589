package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "warn"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	logger.Info("dropped")
	logger.Warn("kept", "endpoint", "listings")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %q", len(lines), buf.String())
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("expected JSON record, got %v", err)
	}
	if record["msg"] != "kept" || record["endpoint"] != "listings" {
		t.Fatalf("unexpected record: %v", record)
	}
}

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "debug", Format: "text"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	logger.Debug("upstream request", "status", 200)
	if !strings.Contains(buf.String(), "msg=\"upstream request\"") || !strings.Contains(buf.String(), "status=200") {
		t.Fatalf("unexpected text output: %q", buf.String())
	}
}

func TestNewRejectsUnknownOptions(t *testing.T) {
	if _, err := New(nil, Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if _, err := New(nil, Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{raw: "", want: slog.LevelInfo},
		{raw: "DEBUG", want: slog.LevelDebug},
		{raw: "warning", want: slog.LevelWarn},
		{raw: "error", want: slog.LevelError},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.raw)
		if err != nil || got != tc.want {
			t.Fatalf("%q: expected %v, got %v (%v)", tc.raw, tc.want, got, err)
		}
	}
}

func TestOpenFile(t *testing.T) {
	w, closeFn, err := OpenFile("")
	if err != nil || w == nil {
		t.Fatalf("expected discard writer, got %v %v", w, err)
	}
	if err := closeFn(); err != nil {
		t.Fatalf("expected no-op close, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "showmarket.log")
	w, closeFn, err = OpenFile(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	logger, _ := New(w, Options{})
	logger.Info("hello")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || !strings.Contains(string(data), "hello") {
		t.Fatalf("expected log line in file, got %q (%v)", data, err)
	}
}
