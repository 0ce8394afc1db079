package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gegraptai"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gegraptai by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gegraptai by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// SourcesCacheDir keeps decoded source files between imports.
// Returns ~/.cache/gegraptai/sources by default.
func SourcesCacheDir(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "sources")
}

// DataDir returns the directory path for the default corpus store.
// Returns ~/.local/share/gegraptai by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gegraptai/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gegraptai/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SourcesFilePath returns the full path to the sources.yaml file.
// Returns ~/.config/gegraptai/sources.yaml by default.
func SourcesFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "sources.yaml")
}

// DefaultStorePath returns the SQLite corpus file.
// Returns ~/.local/share/gegraptai/corpus.db by default.
func DefaultStorePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "corpus.db")
}
