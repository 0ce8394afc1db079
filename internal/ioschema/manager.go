// Package ioschema implements SchemaManager interface for corpus store
// schema management. This is an impure I/O package that wraps GORM
// AutoMigrate for PostgreSQL and runs model DDL for SQLite.
package ioschema

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jimiaki7/gegraptai/pkg/db"
	"github.com/jimiaki7/gegraptai/pkg/lifecycle"
	"github.com/jimiaki7/gegraptai/pkg/schema"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the lifecycle.SchemaManager interface.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates the corpus tables and indexes.
func (m *manager) Create(ctx context.Context) error {
	sqlDB := m.operator.DB()
	if sqlDB == nil {
		return NotConnectedError()
	}

	if m.operator.Dialect() == db.Postgres {
		gormDB, err := m.gorm(ctx, sqlDB)
		if err != nil {
			return err
		}
		if err := schema.Migrate(gormDB); err != nil {
			return CreateSchemaError(err)
		}
		slog.Info("Created schema with GORM", "tables", schema.TableNames())
		return nil
	}

	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return CreateSchemaError(err)
	}
	defer tx.Rollback()

	for _, g := range schema.Generators() {
		stmts := append([]string{g.TableDDL()}, g.IndexDDL()...)
		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return CreateSchemaError(
					fmt.Errorf("table %s: %w", g.TableName(), err),
				)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return CreateSchemaError(err)
	}
	slog.Info("Created schema", "tables", schema.TableNames())
	return nil
}

// Migrate brings existing tables up to date with the models. Missing
// tables are created, missing SQLite columns are added.
func (m *manager) Migrate(ctx context.Context) error {
	sqlDB := m.operator.DB()
	if sqlDB == nil {
		return NotConnectedError()
	}

	if m.operator.Dialect() == db.Postgres {
		gormDB, err := m.gorm(ctx, sqlDB)
		if err != nil {
			return err
		}
		if err := schema.Migrate(gormDB); err != nil {
			return MigrateSchemaError(err)
		}
		return nil
	}

	for _, g := range schema.Generators() {
		exists, err := m.operator.TableExists(ctx, g.TableName())
		if err != nil {
			return MigrateSchemaError(err)
		}
		if !exists {
			continue
		}
		if err = m.addColumns(ctx, sqlDB, g); err != nil {
			return MigrateSchemaError(err)
		}
	}

	// creates tables and indexes that are still missing
	if err := m.Create(ctx); err != nil {
		return MigrateSchemaError(err)
	}
	return nil
}

func (m *manager) gorm(ctx context.Context, sqlDB *sql.DB) (*gorm.DB, error) {
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}
	return gormDB.WithContext(ctx), nil
}

// addColumns adds model columns that a SQLite table lacks.
func (m *manager) addColumns(
	ctx context.Context,
	sqlDB *sql.DB,
	g schema.DDLGenerator,
) error {
	have, err := sqliteColumns(ctx, sqlDB, g.TableName())
	if err != nil {
		return err
	}

	for _, col := range schema.ColumnDefs(g) {
		if have[col.Name] {
			continue
		}
		q := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s",
			g.TableName(), col.Name, addColumnDDL(col.DDL))
		if _, err := sqlDB.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("add column %s.%s: %w", g.TableName(), col.Name, err)
		}
		slog.Info("Added column", "table", g.TableName(), "column", col.Name)
	}
	return nil
}

func sqliteColumns(
	ctx context.Context,
	sqlDB *sql.DB,
	table string,
) (map[string]bool, error) {
	rows, err := sqlDB.QueryContext(ctx,
		"SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		res[name] = true
	}
	return res, rows.Err()
}

// addColumnDDL adapts a column definition to what SQLite accepts in
// ALTER TABLE ADD COLUMN: no primary key, and NOT NULL only with a
// default value.
func addColumnDDL(ddl string) string {
	ddl = strings.Replace(ddl, "PRIMARY KEY", "", 1)
	if !strings.Contains(ddl, "DEFAULT") {
		ddl = strings.Replace(ddl, "NOT NULL", "", 1)
	}
	return strings.Join(strings.Fields(ddl), " ")
}
