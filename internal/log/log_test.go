// ABOUTME: Tests for the leveled stderr logger: threshold moves and
// ABOUTME: suppression below the active level

package log

import (
	"io"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected to a pipe.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stderr = w
	defer func() { os.Stderr = old }()

	fn()
	w.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading captured stderr: %v", err)
	}
	return string(data)
}

func TestSetLevelRoundTrip(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("GetLevel() = %v, want LevelDebug", GetLevel())
	}
	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("GetLevel() = %v, want LevelError", GetLevel())
	}
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)
	SetLevel(LevelInfo)

	out := captureStderr(t, func() {
		Debug("dispatch intent=%s", "build")
	})
	if out != "" {
		t.Errorf("debug emitted at info level: %q", out)
	}
}

func TestDebugEmittedInVerboseMode(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)
	SetLevel(LevelDebug)

	out := captureStderr(t, func() {
		Debug("dispatch intent=%s", "build")
	})
	if !strings.Contains(out, "[DEBUG] dispatch intent=build") {
		t.Errorf("debug output = %q, want tagged dispatch line", out)
	}
}

func TestWarnSuppressedInQuietMode(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)
	SetLevel(LevelError)

	out := captureStderr(t, func() {
		Warn("language %q is not available", "fr")
		Error("transcript write failed")
	})
	if strings.Contains(out, "[WARN]") {
		t.Errorf("warn emitted in quiet mode: %q", out)
	}
	if !strings.Contains(out, "[ERROR] transcript write failed") {
		t.Errorf("error missing in quiet mode: %q", out)
	}
}
