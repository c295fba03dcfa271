// Package paths resolves the configuration and data directories used by the
// extents CLI.
package paths

import (
	"os"
	"path/filepath"
)

// CWD-relative default directory names.
const (
	DefaultConfigDirName = ".extents"
	DefaultDataDirName   = ".extents-db"
)

// ConfigFileName is the file read from and written to the config directory.
const ConfigFileName = "config.yaml"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "EXTENTS_CONFIG_DIR"
	EnvDataDir   = "EXTENTS_DATA_DIR"
)

// getwd is replaced in tests.
var getwd = os.Getwd

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > EXTENTS_CONFIG_DIR > $(CWD)/.extents. The result
// is always absolute.
func ResolveConfigDir(flag string) (string, error) {
	return resolve(DefaultConfigDirName, flag, os.Getenv(EnvConfigDir))
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > data_dir from config.yaml > EXTENTS_DATA_DIR > $(CWD)/.extents-db.
// The result is always absolute.
func ResolveDataDir(flag, configValue string) (string, error) {
	return resolve(DefaultDataDirName, flag, configValue, os.Getenv(EnvDataDir))
}

// ConfigFile returns the path of config.yaml inside configDir.
func ConfigFile(configDir string) string {
	return filepath.Join(configDir, ConfigFileName)
}

// resolve returns the first non-empty candidate made absolute, or the
// default name under the working directory.
func resolve(defaultName string, candidates ...string) (string, error) {
	for _, c := range candidates {
		if c != "" {
			return filepath.Abs(c)
		}
	}
	cwd, err := getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, defaultName), nil
}
