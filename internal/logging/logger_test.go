package logging

import (
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewConsoleAndJSON(t *testing.T) {
	for _, format := range []string{"console", "json", ""} {
		logger, err := New(Options{Format: format, LogDir: t.TempDir()})
		if err != nil {
			t.Fatalf("New(%q) returned error: %v", format, err)
		}
		logger.Info("hello", String("component", "test"))
	}
}

func TestConsoleHandlerFormatsAttrs(t *testing.T) {
	var sb strings.Builder
	level := new(slog.LevelVar)
	handler := &consoleHandler{out: writerFunc(sb.WriteString), level: level}
	logger := slog.New(handler).With(String(FieldComponent, "batch"))
	logger.Info("devotional generated", String(FieldDate, "2025-01-01"))

	line := sb.String()
	for _, want := range []string{"INF", "devotional generated", "component=batch", "date=2025-01-01"} {
		if !strings.Contains(line, want) {
			t.Fatalf("console line %q missing %q", line, want)
		}
	}
}

type writerFunc func(string) (int, error)

func (w writerFunc) Write(p []byte) (int, error) { return w(string(p)) }
