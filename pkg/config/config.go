// Package config provides configuration management for gegraptai.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Store: driver, path, host, port, user, password, database, ssl_mode,
//     batch_size
//   - Log: level, format, destination
//   - Output: format
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Import.SourceIDs, Import.Force (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GEGRAPTAI_ prefix with underscores for nesting:
//
//	GEGRAPTAI_STORE_DRIVER=postgres
//	GEGRAPTAI_STORE_HOST=localhost
//	GEGRAPTAI_LOG_LEVEL=info
//	GEGRAPTAI_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete gegraptai configuration.
type Config struct {
	// Store contains settings of the corpus store.
	Store StoreConfig `mapstructure:"store" yaml:"store"`

	// Import contains settings specific to the import command.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// StoreConfig describes where verses and words are kept.
type StoreConfig struct {
	// Driver is either "sqlite" or "postgres".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Path is the SQLite database file. Empty means the default file
	// in the data directory (see DefaultStorePath).
	Path string `mapstructure:"path" yaml:"path"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of words inserted per statement during
	// import.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// ImportConfig contains settings specific to the import command.
type ImportConfig struct {
	// SourceIDs is the list of corpus source IDs to import.
	// Empty slice means import all sources from sources.yaml.
	SourceIDs []int `mapstructure:"source_ids" yaml:"source_ids"`

	// Force re-imports files even when their fingerprint did not change
	// since the last run.
	Force bool `mapstructure:"force" yaml:"force"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// OutputConfig controls how commands print results.
type OutputConfig struct {
	// Format can be 'compact' or 'pretty' JSON, 'csv', 'tsv' or 'text'.
	Format string `mapstructure:"format" yaml:"format"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Store: StoreConfig{
			Driver:    "sqlite",
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "gegraptai",
			SSLMode:   "disable",
			BatchSize: 5_000,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		Output: OutputConfig{
			Format: "text",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}

// StorePath returns the SQLite file to use, falling back to the default
// location under HomeDir.
func (c *Config) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	return DefaultStorePath(c.HomeDir)
}
