// ABOUTME: Standard filesystem paths for pi-calc configuration and data
// ABOUTME: Resolves ~/.pi-calc/ (or $PI_CALC_HOME) for global and .pi-calc/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".pi-calc"
	projectDirName = ".pi-calc"

	// HomeEnv overrides the global config directory.
	HomeEnv = "PI_CALC_HOME"
)

// GlobalDir returns the user-global config directory (~/.pi-calc/).
func GlobalDir() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.pi-calc/ in cwd).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.json")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "config.json")
}

// DataDir returns the persistence store directory.
func DataDir() string {
	return filepath.Join(GlobalDir(), "data")
}

// KeymapFile returns the path to the keymap overrides file.
func KeymapFile() string {
	return filepath.Join(GlobalDir(), "keymap.yaml")
}

// LogFile returns the path the interactive mode logs to.
func LogFile() string {
	return filepath.Join(GlobalDir(), "pi-calc.log")
}
