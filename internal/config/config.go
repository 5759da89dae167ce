// ABOUTME: Settings loading with global + project config merge
// ABOUTME: JSON-based configuration; CLI flags are applied on top by the caller

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings holds the merged configuration.
type Settings struct {
	Theme     string `json:"theme,omitempty"`
	Locale    string `json:"locale,omitempty"`
	DataDir   string `json:"data_dir,omitempty"`
	UndoDepth int    `json:"undo_depth,omitempty"`
	Keymap    string `json:"keymap,omitempty"`
	LogFile   string `json:"log_file,omitempty"`
	NoPersist bool   `json:"no_persist,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings. Missing files are ignored.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadFile reads a Settings from a JSON file. Returns zero Settings if file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Theme != "" {
		result.Theme = project.Theme
	}
	if project.Locale != "" {
		result.Locale = project.Locale
	}
	if project.DataDir != "" {
		result.DataDir = project.DataDir
	}
	if project.UndoDepth != 0 {
		result.UndoDepth = project.UndoDepth
	}
	if project.Keymap != "" {
		result.Keymap = project.Keymap
	}
	if project.LogFile != "" {
		result.LogFile = project.LogFile
	}
	if project.NoPersist {
		result.NoPersist = true
	}

	return &result
}

// Validate rejects settings the program cannot run with.
func (s *Settings) Validate() error {
	switch s.Theme {
	case "", "dark", "light":
	default:
		return fmt.Errorf("invalid theme %q: want dark or light", s.Theme)
	}
	if s.UndoDepth < 0 {
		return fmt.Errorf("invalid undo_depth %d: must not be negative", s.UndoDepth)
	}
	return nil
}

// WithDefaults returns a copy with empty fields filled from the standard paths.
func (s Settings) WithDefaults() Settings {
	if s.Locale == "" {
		s.Locale = "en"
	}
	if s.DataDir == "" {
		s.DataDir = DataDir()
	}
	if s.Keymap == "" {
		s.Keymap = KeymapFile()
	}
	if s.LogFile == "" {
		s.LogFile = LogFile()
	}
	return s
}
