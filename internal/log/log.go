// ABOUTME: Levelled printf-style logger using slog level constants
// ABOUTME: Global level via SetLevel; output redirectable via SetOutput so the TUI can log to a file

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level atomic.Int64

	mu  sync.Mutex
	out io.Writer = os.Stderr
)

func init() {
	level.Store(int64(LevelInfo))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// SetOutput redirects log output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

// OpenFile appends log output to path and returns a function that restores
// the previous writer and closes the file.
func OpenFile(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	prev := SetOutput(f)
	return func() error {
		SetOutput(prev)
		return f.Close()
	}, nil
}

func write(l slog.Level, format string, args ...any) {
	if slog.Level(level.Load()) > l {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s [%s] "+format+"\n",
		append([]any{time.Now().Format(time.TimeOnly), l.String()}, args...)...)
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	write(LevelDebug, format, args...)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	write(LevelInfo, format, args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	write(LevelWarn, format, args...)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s [ERROR] "+format+"\n",
		append([]any{time.Now().Format(time.TimeOnly)}, args...)...)
}
