// Package iotesting provides shared test utilities for store and import
// tests. This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/jimiaki7/gegraptai/internal/iodb"
	"github.com/jimiaki7/gegraptai/internal/iofs"
	"github.com/jimiaki7/gegraptai/internal/ioschema"
	"github.com/jimiaki7/gegraptai/pkg/config"
	"github.com/jimiaki7/gegraptai/pkg/db"
)

const (
	// PostgresEnv enables PostgreSQL tests when set to a non-empty value.
	PostgresEnv = "GEGRAPTAI_TEST_PG"

	// TestDatabaseName is the PostgreSQL database used for tests.
	// Tests never run against the configured production database.
	TestDatabaseName = "gegraptai_test"
)

// GetTestConfig returns a configuration rooted in a temporary home with
// a SQLite store inside it. Directories are created.
func GetTestConfig(t *testing.T) *config.Config {
	t.Helper()

	home := t.TempDir()
	if err := iofs.EnsureDirs(home); err != nil {
		t.Fatalf("Failed to create test dirs: %v", err)
	}

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(home),
		config.OptStoreDriver("sqlite"),
		config.OptStorePath(filepath.Join(home, "corpus.db")),
		config.OptJobsNumber(2),
		config.OptLogDestination("stderr"),
	})
	return cfg
}

// GetPostgresConfig returns a PostgreSQL store configuration or skips
// the test unless GEGRAPTAI_TEST_PG is set. Connection values come from
// GEGRAPTAI_STORE_* variables, the database name is always
// TestDatabaseName.
func GetPostgresConfig(t *testing.T) *config.StoreConfig {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping PostgreSQL test in short mode")
	}
	if os.Getenv(PostgresEnv) == "" {
		t.Skipf("Skipping PostgreSQL test, %s is not set", PostgresEnv)
	}

	cfg := config.New()
	opts := []config.Option{
		config.OptStoreDriver("postgres"),
		config.OptStoreDatabase(TestDatabaseName),
	}
	if v := os.Getenv("GEGRAPTAI_STORE_HOST"); v != "" {
		opts = append(opts, config.OptStoreHost(v))
	}
	if v := os.Getenv("GEGRAPTAI_STORE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			opts = append(opts, config.OptStorePort(port))
		}
	}
	if v := os.Getenv("GEGRAPTAI_STORE_USER"); v != "" {
		opts = append(opts, config.OptStoreUser(v))
	}
	if v := os.Getenv("GEGRAPTAI_STORE_PASSWORD"); v != "" {
		opts = append(opts, config.OptStorePassword(v))
	}
	cfg.Update(opts)
	return &cfg.Store
}

// Connect opens the store described by cfg and closes it when the test
// ends.
func Connect(t *testing.T, cfg *config.StoreConfig) db.Operator {
	t.Helper()

	op := iodb.NewOperator()
	if err := op.Connect(context.Background(), cfg); err != nil {
		t.Fatalf("Failed to connect to test store: %v", err)
	}
	t.Cleanup(func() { op.Close() })
	return op
}

// CreateSchema connects to the store described by cfg and creates a
// fresh corpus schema in it.
func CreateSchema(t *testing.T, cfg *config.StoreConfig) db.Operator {
	t.Helper()

	op := Connect(t, cfg)
	ctx := context.Background()
	if err := op.DropAllTables(ctx); err != nil {
		t.Fatalf("Failed to drop test tables: %v", err)
	}
	if err := ioschema.NewManager(op).Create(ctx); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}
	return op
}

// WriteFile writes a fixture file into dir and returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create fixture dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", name, err)
	}
	return path
}
