// ABOUTME: Tests for settings loading, merging, validation, and env expansion
// ABOUTME: Uses temp directories and PI_CALC_HOME for isolated file-based tests

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	global := &Settings{Theme: "dark", Locale: "de", UndoDepth: 20}
	project := &Settings{Theme: "light", NoPersist: true}

	result := merge(global, project)

	if result.Theme != "light" {
		t.Errorf("Theme = %q, want %q", result.Theme, "light")
	}
	if result.Locale != "de" {
		t.Errorf("Locale = %q, want %q", result.Locale, "de")
	}
	if result.UndoDepth != 20 {
		t.Errorf("UndoDepth = %d, want 20", result.UndoDepth)
	}
	if !result.NoPersist {
		t.Error("NoPersist should be set from project")
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	result := merge(nil, nil)
	if result == nil {
		t.Fatal("merge(nil, nil) should return non-nil")
	}
}

func TestLoadFile_NotExist(t *testing.T) {
	t.Parallel()

	s, err := loadFile("/nonexistent/path/config.json")
	if !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if s == nil {
		t.Fatal("loadFile should return empty settings on missing file")
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoad_GlobalAndProject(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	t.Setenv(HomeEnv, home)
	t.Setenv("CALC_TEST_DIR", "/tmp/calc-data")

	writeJSON(t, filepath.Join(home, "config.json"), `{"theme":"dark","locale":"fr","data_dir":"${CALC_TEST_DIR}"}`)
	writeJSON(t, filepath.Join(project, ".pi-calc", "config.json"), `{"locale":"de","undo_depth":5}`)

	s, err := Load(project)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Theme != "dark" || s.Locale != "de" || s.UndoDepth != 5 {
		t.Errorf("Load() = %+v", s)
	}
	if s.DataDir != "/tmp/calc-data" {
		t.Errorf("DataDir = %q, want env-expanded /tmp/calc-data", s.DataDir)
	}
}

func TestLoad_InvalidTheme(t *testing.T) {
	home := t.TempDir()
	t.Setenv(HomeEnv, home)
	writeJSON(t, filepath.Join(home, "config.json"), `{"theme":"neon"}`)

	_, err := Load(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "neon") {
		t.Errorf("Load() error = %v, want invalid theme error", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	if err := (&Settings{UndoDepth: -1}).Validate(); err == nil {
		t.Error("negative undo depth should be rejected")
	}
	if err := (&Settings{Theme: "light"}).Validate(); err != nil {
		t.Errorf("light theme rejected: %v", err)
	}
}

func TestWithDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv(HomeEnv, home)

	s := Settings{Locale: "ja"}.WithDefaults()
	if s.Locale != "ja" {
		t.Errorf("Locale = %q, want ja kept", s.Locale)
	}
	if s.DataDir != filepath.Join(home, "data") {
		t.Errorf("DataDir = %q", s.DataDir)
	}
	if s.Keymap != filepath.Join(home, "keymap.yaml") {
		t.Errorf("Keymap = %q", s.Keymap)
	}
	if s.LogFile != filepath.Join(home, "pi-calc.log") {
		t.Errorf("LogFile = %q", s.LogFile)
	}
}

func TestExpandEnv_Unset(t *testing.T) {
	t.Parallel()

	if got := expandEnv("${PI_CALC_SURELY_UNSET_VAR}/x"); got != "/x" {
		t.Errorf("expandEnv() = %q, want /x", got)
	}
}

func writeJSON(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}
