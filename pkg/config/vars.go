package config

import (
	"path/filepath"
)

// AppName is used in generating file system paths.
var AppName = "taxseed"

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/taxseed by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/taxseed/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/taxseed/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
