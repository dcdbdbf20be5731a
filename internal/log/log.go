// ABOUTME: Leveled printf logging to stderr, kept off stdout so command
// ABOUTME: output and the REPL stay clean; --verbose and --quiet move the level

package log

import (
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
)

// Severity thresholds, aliased from slog so callers can pass either.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var level atomic.Int64

func init() {
	level.Store(int64(LevelInfo))
}

// SetLevel sets the process-wide log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current process-wide log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// Debug logs parse and dispatch tracing, emitted only in verbose mode.
func Debug(format string, args ...any) {
	if slog.Level(level.Load()) > LevelDebug {
		return
	}
	fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
}

// Info logs a routine message if the level allows it.
func Info(format string, args ...any) {
	if slog.Level(level.Load()) > LevelInfo {
		return
	}
	fmt.Fprintf(os.Stderr, "[INFO] "+format+"\n", args...)
}

// Warn logs a recoverable condition, e.g. a language fallback.
func Warn(format string, args ...any) {
	if slog.Level(level.Load()) > LevelWarn {
		return
	}
	fmt.Fprintf(os.Stderr, "[WARN] "+format+"\n", args...)
}

// Error logs a failure. Always emitted, even in quiet mode.
func Error(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[ERROR] "+format+"\n", args...)
}
