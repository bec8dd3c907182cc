package iodb_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/taxseed/internal/iodb"
	"github.com/gnames/taxseed/internal/iotesting"
	"github.com/gnames/taxseed/pkg/config"
	"github.com/gnames/taxseed/pkg/db"
	"github.com/gnames/taxseed/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOperatorUnknownEngine(t *testing.T) {
	_, err := iodb.NewOperator("oracle")
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.DBUnknownEngineError, gnErr.Code)
}

func TestNotConnected(t *testing.T) {
	op, err := iodb.NewOperator(db.SQLite)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = op.TableExists(ctx, "taxa")
	assert.Error(t, err)
	_, err = op.Count(ctx, "taxa")
	assert.Error(t, err)
	assert.NoError(t, op.Close())
}

func TestSQLiteOperator(t *testing.T) {
	ctx := context.Background()
	op, err := iodb.NewOperator(db.SQLite)
	require.NoError(t, err)

	cfg := config.New().Database
	cfg.Path = filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, op.Connect(ctx, &cfg))
	defer op.Close()

	exists, err := op.TableExists(ctx, "birds")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = op.DB().ExecContext(ctx, `CREATE TABLE birds (name TEXT)`)
	require.NoError(t, err)
	_, err = op.DB().ExecContext(ctx, `INSERT INTO birds VALUES ('Osprey')`)
	require.NoError(t, err)

	exists, err = op.TableExists(ctx, "birds")
	require.NoError(t, err)
	assert.True(t, exists)

	n, err := op.Count(ctx, "birds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = op.Count(ctx, "missing")
	assert.Error(t, err)
}

func TestSQLiteOperatorBadPath(t *testing.T) {
	op, err := iodb.NewOperator(db.SQLite)
	require.NoError(t, err)
	cfg := config.New().Database
	cfg.Path = filepath.Join(t.TempDir(), "no", "such", "dir", "x.db")
	err = op.Connect(context.Background(), &cfg)
	assert.Error(t, err)
}

func TestPgxOperator(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()
	cfg := iotesting.PostgresConfig(t)

	op, err := iodb.NewOperator(db.Postgres)
	require.NoError(t, err)
	require.NoError(t, op.Connect(ctx, cfg))
	defer op.Close()

	exists, err := op.TableExists(ctx, "nonexistent_table")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = op.DB().ExecContext(ctx, "CREATE TABLE IF NOT EXISTS pgx_check (id int)")
	require.NoError(t, err)
	n, err := op.Count(ctx, "pgx_check")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPgxOperatorInvalidHost(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	op, err := iodb.NewOperator(db.Postgres)
	require.NoError(t, err)

	cfg := config.New().Database
	cfg.Host = "invalid-host-that-does-not-exist"
	err = op.Connect(context.Background(), &cfg)
	assert.Error(t, err, "Connect should fail with invalid host")
}
