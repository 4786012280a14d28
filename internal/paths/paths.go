// Package paths resolves configuration and data directory locations.
package paths

import (
	"os"
	"path/filepath"
)

// Directory and file names under the user home directory.
const (
	DefaultDirName = ".capmind"
	DBFileName     = "capmind.db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "CAPMIND_CONFIG_DIR"
	EnvDataDir   = "CAPMIND_DATA_DIR"
)

// homeDir is overridable in tests.
var homeDir = os.UserHomeDir

// DefaultDir returns the default capmind directory, ~/.capmind. When the
// home directory cannot be determined it falls back to the current
// directory.
func DefaultDir() string {
	home, err := homeDir()
	if err != nil {
		return DefaultDirName
	}
	return filepath.Join(home, DefaultDirName)
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > CAPMIND_CONFIG_DIR env > ~/.capmind.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultDir(), nil
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > config.yaml value > CAPMIND_DATA_DIR env > ~/.capmind.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultDir(), nil
}

// DBPath returns the database file path inside the given data directory.
func DBPath(dataDir string) string {
	return filepath.Join(dataDir, DBFileName)
}
