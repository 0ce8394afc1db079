// Package lifecycle defines the stages a corpus store goes through:
// schema creation, migration and import.
package lifecycle

import (
	"context"

	"github.com/jimiaki7/gegraptai/pkg/config"
)

// SchemaManager defines the interface for store schema management.
// PostgreSQL stores use GORM AutoMigrate, SQLite stores use the model DDL.
// Schema management is idempotent - safe to run multiple times.
type SchemaManager interface {
	// Create creates the corpus tables and their indexes.
	// Existing tables are kept, callers drop them first when needed.
	Create(ctx context.Context) error

	// Migrate updates the schema to the latest version of the models.
	Migrate(ctx context.Context) error
}

// Importer loads corpus sources into the store.
type Importer interface {
	// Import reads the sources selected by cfg.Import and writes their
	// verses and words to the store.
	Import(ctx context.Context, cfg *config.Config) error
}
