// ABOUTME: Tests for leveled logging output and level gating
// ABOUTME: Captures output via SetOutput; not parallel because level is global

package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func capture(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	fn()
	return buf.String()
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	SetLevel(LevelInfo)
	got := capture(t, func() { Debug("hidden %d", 1) })
	if got != "" {
		t.Errorf("expected no output, got %q", got)
	}
}

func TestDebugEmittedAtDebug(t *testing.T) {
	SetLevel(LevelDebug)
	defer SetLevel(LevelInfo)
	got := capture(t, func() { Debug("visible %s", "x") })
	if !strings.Contains(got, "[DEBUG] visible x") {
		t.Errorf("got %q; want debug line", got)
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	SetLevel(LevelError)
	defer SetLevel(LevelInfo)
	got := capture(t, func() { Error("boom: %v", "nope") })
	if !strings.Contains(got, "[ERROR] boom: nope") {
		t.Errorf("got %q; want error line", got)
	}
}

func TestWarnGating(t *testing.T) {
	SetLevel(LevelError)
	defer SetLevel(LevelInfo)
	got := capture(t, func() { Warn("careful") })
	if got != "" {
		t.Errorf("expected warn suppressed at error level, got %q", got)
	}
}
