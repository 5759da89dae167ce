// ABOUTME: Tests for the levelled logger
// ABOUTME: Validates level filtering, output redirection, and file logging

package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// capture redirects output for the duration of the test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	savedLevel := GetLevel()
	t.Cleanup(func() {
		SetOutput(prev)
		SetLevel(savedLevel)
	})
	return &buf
}

func TestSetLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelInfo)

	Debug("this should be suppressed: %s", "test")
	if buf.Len() != 0 {
		t.Errorf("debug output at info level: %q", buf.String())
	}
}

func TestAllLevels(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelDebug)

	Debug("debug: %d", 1)
	Info("info: %d", 2)
	Warn("warn: %d", 3)
	Error("error: %d", 4)

	got := buf.String()
	for _, want := range []string{"[DEBUG] debug: 1", "[INFO] info: 2", "[WARN] warn: 3", "[ERROR] error: 4"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q; got %q", want, got)
		}
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelError + 4)

	Warn("dropped")
	Error("kept")
	if got := buf.String(); strings.Contains(got, "dropped") || !strings.Contains(got, "kept") {
		t.Errorf("output = %q", got)
	}
}

func TestOpenFile(t *testing.T) {
	_ = capture(t)
	path := filepath.Join(t.TempDir(), "calc.log")

	closeLog, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error: %v", err)
	}
	Error("persist failed: %s", "disk full")
	if err := closeLog(); err != nil {
		t.Fatalf("close error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "persist failed: disk full") {
		t.Errorf("log file = %q", data)
	}
}
