package iodb_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jimiaki7/gegraptai/internal/iodb"
	"github.com/jimiaki7/gegraptai/internal/iotesting"
	"github.com/jimiaki7/gegraptai/pkg/config"
	"github.com/jimiaki7/gegraptai/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// PostgreSQL tests run only when GEGRAPTAI_TEST_PG is set, for example:
//
//	docker run -d -e POSTGRES_PASSWORD=postgres -p 5432:5432 postgres:16
//	createdb -h localhost -U postgres gegraptai_test
//	GEGRAPTAI_TEST_PG=1 go test ./...

func TestOperator_NotConnected(t *testing.T) {
	op := iodb.NewOperator()
	ctx := context.Background()

	assert.Nil(t, op.DB())
	_, err := op.HasTables(ctx)
	assert.Error(t, err)
	_, err = op.TableExists(ctx, "verses")
	assert.Error(t, err)
	assert.Error(t, op.DropAllTables(ctx))
	assert.NoError(t, op.Close())
}

func TestOperator_UnknownDriver(t *testing.T) {
	op := iodb.NewOperator()
	err := op.Connect(context.Background(), &config.StoreConfig{Driver: "mysql"})
	assert.Error(t, err)
}

func TestOperator_SQLiteEmptyPath(t *testing.T) {
	op := iodb.NewOperator()
	err := op.Connect(context.Background(), &config.StoreConfig{Driver: "sqlite"})
	assert.Error(t, err)
}

func TestOperator_SQLite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	ctx := context.Background()
	cfg := iotesting.GetTestConfig(t)
	// parent directories are created on connect
	cfg.Store.Path = filepath.Join(cfg.HomeDir, "nested", "dir", "corpus.db")

	op := iotesting.Connect(t, &cfg.Store)
	assert.Equal(t, db.SQLite, op.Dialect())
	require.NotNil(t, op.DB())

	has, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = op.DB().ExecContext(ctx, "CREATE TABLE verses (id TEXT)")
	require.NoError(t, err)
	_, err = op.DB().ExecContext(ctx, "CREATE TABLE unrelated (id TEXT)")
	require.NoError(t, err)

	exists, err := op.TableExists(ctx, "verses")
	require.NoError(t, err)
	assert.True(t, exists)

	has, err = op.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, op.DropAllTables(ctx))

	exists, err = op.TableExists(ctx, "verses")
	require.NoError(t, err)
	assert.False(t, exists)

	// tables that do not belong to the corpus are left alone
	exists, err = op.TableExists(ctx, "unrelated")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestOperator_Postgres(t *testing.T) {
	storeCfg := iotesting.GetPostgresConfig(t)
	ctx := context.Background()

	op := iotesting.CreateSchema(t, storeCfg)
	assert.Equal(t, db.Postgres, op.Dialect())

	has, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, op.DropAllTables(ctx))
	has, err = op.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestOperator_PostgresInvalidHost(t *testing.T) {
	storeCfg := iotesting.GetPostgresConfig(t)
	storeCfg.Host = "invalid-host-that-does-not-exist"

	op := iodb.NewOperator()
	assert.Error(t, op.Connect(context.Background(), storeCfg))
}
