// Package config resolves where InternCare keeps its data and settings.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// AppDirName is the per-user directory name used under $HOME and $XDG_DATA_HOME.
const AppDirName = "interncare"

// GetGlobalConfigDir returns the path to the global configuration directory (~/.interncare).
// This is the source of truth for where global config lives.
// It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "."+AppDirName), nil
}

// DataDir returns the directory holding the record store.
// Resolution order (first match wins):
// 1. Explicit config via "data.dir" (Viper/env/flag)
// 2. XDG_DATA_HOME/interncare (if XDG_DATA_HOME is set)
// 3. Global fallback: ~/.interncare/data
func DataDir() string {
	if dir := viper.GetString("data.dir"); dir != "" {
		return dir
	}

	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, AppDirName)
	}

	dir, err := GetGlobalConfigDir()
	if err != nil {
		return "./data"
	}
	return filepath.Join(dir, "data")
}

// CrashLogDir returns where crash reports are written.
func CrashLogDir() (string, error) {
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "crash_logs"), nil
}

// PromptsDir returns where user overrides for LLM prompts are looked up.
func PromptsDir() (string, error) {
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "prompts"), nil
}
