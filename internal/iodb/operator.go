// Package iodb implements store operations for SQLite (modernc.org/sqlite)
// and PostgreSQL (pgxpool). This is an impure I/O package that implements
// contracts defined in pkg/.
package iodb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jimiaki7/gegraptai/pkg/config"
	"github.com/jimiaki7/gegraptai/pkg/db"
	"github.com/jimiaki7/gegraptai/pkg/schema"
	_ "modernc.org/sqlite"
)

// operator implements db.Operator for both supported drivers.
type operator struct {
	sqlDB   *sql.DB
	pool    *pgxpool.Pool
	dialect db.Dialect
}

// NewOperator creates a new store operator (without connecting).
func NewOperator() db.Operator {
	return &operator{}
}

// Connect opens the store selected by cfg.Driver.
func (o *operator) Connect(
	ctx context.Context,
	cfg *config.StoreConfig,
) error {
	switch cfg.Driver {
	case "sqlite", "":
		return o.connectSQLite(ctx, cfg)
	case "postgres":
		return o.connectPostgres(ctx, cfg)
	default:
		return UnknownDriverError(cfg.Driver)
	}
}

func (o *operator) connectSQLite(
	ctx context.Context,
	cfg *config.StoreConfig,
) error {
	if cfg.Path == "" {
		return ConnectionError(cfg.Driver, "<empty path>",
			fmt.Errorf("sqlite store path is not set"))
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return ConnectionError(cfg.Driver, cfg.Path, err)
	}

	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		cfg.Path,
	)
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return ConnectionError(cfg.Driver, cfg.Path, err)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return ConnectionError(cfg.Driver, cfg.Path, err)
	}

	slog.Debug("Connected to SQLite store", "path", cfg.Path)
	o.sqlDB = sqlDB
	o.dialect = db.SQLite
	return nil
}

func (o *operator) connectPostgres(
	ctx context.Context,
	cfg *config.StoreConfig,
) error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)
	target := fmt.Sprintf("%s:%d/%s", cfg.Host, cfg.Port, cfg.Database)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return ConnectionError(cfg.Driver, target, err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = 0
	poolConfig.MaxConnIdleTime = 0

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(cfg.Driver, target, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(cfg.Driver, target, err)
	}

	slog.Debug("Connected to PostgreSQL store", "target", target)
	o.pool = pool
	o.sqlDB = stdlib.OpenDBFromPool(pool)
	o.dialect = db.Postgres
	return nil
}

// Close releases all store connections.
func (o *operator) Close() error {
	var err error
	if o.sqlDB != nil {
		err = o.sqlDB.Close()
		o.sqlDB = nil
	}
	if o.pool != nil {
		o.pool.Close()
		o.pool = nil
	}
	return err
}

// DB returns the connection pool, nil before Connect.
func (o *operator) DB() *sql.DB {
	return o.sqlDB
}

// Dialect returns the SQL flavour of the connected store.
func (o *operator) Dialect() db.Dialect {
	return o.dialect
}

// TableExists checks if a table exists in the store.
func (o *operator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	tables, err := o.tables(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(tables, tableName), nil
}

// HasTables checks if any corpus table exists.
func (o *operator) HasTables(ctx context.Context) (bool, error) {
	tables, err := o.tables(ctx)
	if err != nil {
		return false, TableCheckError(err)
	}
	for _, t := range schema.TableNames() {
		if slices.Contains(tables, t) {
			return true, nil
		}
	}
	return false, nil
}

// DropAllTables drops the corpus tables that exist.
func (o *operator) DropAllTables(ctx context.Context) error {
	tables, err := o.tables(ctx)
	if err != nil {
		return err
	}

	cascade := ""
	if o.dialect == db.Postgres {
		cascade = " CASCADE"
	}

	for _, table := range schema.TableNames() {
		if !slices.Contains(tables, table) {
			continue
		}
		dropSQL := fmt.Sprintf("DROP TABLE IF EXISTS %s%s", table, cascade)
		if _, err := o.sqlDB.ExecContext(ctx, dropSQL); err != nil {
			return DropTableError(table, err)
		}
		slog.Info("Dropped table", "table", table)
	}

	return nil
}

// tables lists user tables of the store.
func (o *operator) tables(ctx context.Context) ([]string, error) {
	if o.sqlDB == nil {
		return nil, NotConnectedError()
	}

	query := `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
	`
	if o.dialect == db.Postgres {
		query = `
		SELECT tablename
		FROM pg_tables
		WHERE schemaname = 'public'
	`
	}

	rows, err := o.sqlDB.QueryContext(ctx, query)
	if err != nil {
		return nil, QueryTablesError(err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, QueryTablesError(err)
		}
		res = append(res, name)
	}
	if err := rows.Err(); err != nil {
		return nil, QueryTablesError(err)
	}
	return res, nil
}
