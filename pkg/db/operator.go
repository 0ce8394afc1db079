// Package db defines the store operator contract shared by the schema
// manager, the importer and the corpus store.
package db

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/jimiaki7/gegraptai/pkg/config"
)

// Dialect names the SQL flavour of the connected store.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// Rebind rewrites '?' placeholders into the dialect's form. Queries must
// not contain literal question marks.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}
	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] != '?' {
			sb.WriteByte(query[i])
			continue
		}
		n++
		sb.WriteByte('$')
		sb.WriteString(strconv.Itoa(n))
	}
	return sb.String()
}

// Operator defines connection lifecycle and basic table management.
// It exposes the *sql.DB so higher-level components (schema manager,
// importer, corpus store) can run their own statements.
type Operator interface {
	// Connect opens the store described by the configuration.
	Connect(context.Context, *config.StoreConfig) error

	// Close closes the store.
	Close() error

	// DB returns the underlying connection pool.
	DB() *sql.DB

	// Dialect returns the SQL flavour of the connected store.
	Dialect() Dialect

	// TableExists checks if a table exists in the store.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the store has any corpus tables.
	// Used to determine if schema creation should prompt for confirmation.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all corpus tables.
	DropAllTables(ctx context.Context) error
}
