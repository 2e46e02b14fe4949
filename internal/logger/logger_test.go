package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, test := range tests {
		if got := ParseLevel(test.in); got != test.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", test.in, got, test.expected)
		}
	}
}

func TestPrettyHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewPrettyHandler(&buf, slog.LevelInfo, ""))

	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("Debug should be filtered at info level, got %q", buf.String())
	}

	l.With("batch", "b1").Info("item done", "index", 3)
	out := buf.String()
	for _, want := range []string{"[TTDL]", "INFO", "item done", "batch", "b1", "index", "3"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output %q should contain %q", out, want)
		}
	}
}

func TestSetup(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, "error")
	defer Setup(&bytes.Buffer{}, "info")

	Warn("not shown")
	Error("shown")
	if strings.Contains(buf.String(), "not shown") {
		t.Error("Warn should be filtered at error level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("Error should be written")
	}
}
