package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range tests {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMultiHandlerFanOut(t *testing.T) {
	var a, b bytes.Buffer
	m := newMultiHandler(
		slog.NewTextHandler(&a, nil),
		slog.NewTextHandler(&b, nil),
	)

	logger := slog.New(m)
	logger.Info("fan out", "light", "battery")

	for name, buf := range map[string]*bytes.Buffer{"a": &a, "b": &b} {
		if !strings.Contains(buf.String(), "fan out") {
			t.Errorf("handler %s missing message: %q", name, buf.String())
		}
		if !strings.Contains(buf.String(), "light=battery") {
			t.Errorf("handler %s missing attr: %q", name, buf.String())
		}
	}
}

func TestMultiHandlerLevelFiltering(t *testing.T) {
	var quiet, chatty bytes.Buffer
	m := newMultiHandler(
		slog.NewTextHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(&chatty, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)

	if !m.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("multiHandler should be enabled when any child is")
	}

	slog.New(m).Info("just info")
	if quiet.Len() != 0 {
		t.Errorf("error-level handler received info record: %q", quiet.String())
	}
	if chatty.Len() == 0 {
		t.Error("debug-level handler missed info record")
	}
}

func TestSanitizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"light", "LIGHT"},
		{"flash_mode", "FLASH_MODE"},
		{"some-key", "SOME_KEY"},
		{"path.to.file", "PATH_TO_FILE"},
		{"already_OK_9", "ALREADY_OK_9"},
	}
	for _, tc := range tests {
		if got := sanitizeKey(tc.in); got != tc.want {
			t.Errorf("sanitizeKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestJournalHandlerGrouping(t *testing.T) {
	h := newJournalHandler(slog.LevelInfo)
	grouped, ok := h.WithGroup("hw").(*journalHandler)
	if !ok {
		t.Fatal("WithGroup did not return a journalHandler")
	}

	fields := map[string]string{}
	grouped.addField(fields, slog.String("path", "/sys/class/leds/red/brightness"))
	if _, ok := fields["HW_PATH"]; !ok {
		t.Errorf("grouped field missing, got %v", fields)
	}
}
