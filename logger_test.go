package ink

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	// The default handler reports disabled at every level.
	if l.Enabled(nil, slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	// A draw outside an active stroke logs its fallback.
	e := NewLiveEngine(&fixedRand{})
	b := DefaultBrush()
	_ = e.Draw(0, 0, 0, newRecordSurface(), &b, 1)

	if !strings.Contains(buf.String(), "active stroke") {
		t.Errorf("expected fallback log, got %q", buf.String())
	}

	// nil restores the silent default.
	SetLogger(nil)
	buf.Reset()
	_ = e.Draw(0, 0, 0, newRecordSurface(), &b, 1)
	if buf.Len() != 0 {
		t.Errorf("silent logger wrote %q", buf.String())
	}
}
