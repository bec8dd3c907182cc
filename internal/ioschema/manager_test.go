package ioschema_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/taxseed/internal/iodb"
	"github.com/gnames/taxseed/internal/ioschema"
	"github.com/gnames/taxseed/internal/iotesting"
	"github.com/gnames/taxseed/pkg/config"
	"github.com/gnames/taxseed/pkg/db"
	"github.com/gnames/taxseed/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteOperator(t *testing.T) db.Operator {
	t.Helper()
	op, err := iodb.NewOperator(db.SQLite)
	require.NoError(t, err)
	cfg := config.New().Database
	cfg.Path = filepath.Join(t.TempDir(), "schema.db")
	require.NoError(t, op.Connect(context.Background(), &cfg))
	t.Cleanup(func() { op.Close() })
	return op
}

func TestCreateNotConnected(t *testing.T) {
	op, err := iodb.NewOperator(db.SQLite)
	require.NoError(t, err)
	err = ioschema.NewManager(op).Create(context.Background())

	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}

func TestCreateSQLite(t *testing.T) {
	ctx := context.Background()
	op := sqliteOperator(t)
	mgr := ioschema.NewManager(op)

	require.NoError(t, mgr.Create(ctx))
	require.NoError(t, mgr.Create(ctx), "Create is idempotent")

	for _, table := range []string{"taxa", "sightings"} {
		exists, err := op.TableExists(ctx, table)
		require.NoError(t, err)
		assert.True(t, exists, table)
	}
}

// NULL columns must not defeat the natural key index.
func TestNaturalKeyWithNulls(t *testing.T) {
	ctx := context.Background()
	op := sqliteOperator(t)
	require.NoError(t, ioschema.NewManager(op).Create(ctx))

	q := `INSERT OR IGNORE INTO taxa (rank, kingdom, phylum, class, "order",
		family, subfamily, genus, species_epithet, common_name)
		VALUES ('order', 'Animalia', 'Chordata', 'Aves', 'Strigiformes',
		NULL, NULL, NULL, NULL, 'Strigiformes')`
	for range 3 {
		_, err := op.DB().ExecContext(ctx, q)
		require.NoError(t, err)
	}
	n, err := op.Count(ctx, "taxa")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCreatePostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()
	cfg := iotesting.PostgresConfig(t)
	op, err := iodb.NewOperator(db.Postgres)
	require.NoError(t, err)
	require.NoError(t, op.Connect(ctx, cfg))
	defer op.Close()

	mgr := ioschema.NewManager(op)
	require.NoError(t, mgr.Create(ctx))
	require.NoError(t, mgr.Create(ctx), "Create is idempotent")

	exists, err := op.TableExists(ctx, "taxa")
	require.NoError(t, err)
	assert.True(t, exists)

	q := `INSERT INTO taxa (rank, kingdom, phylum, class, "order",
		family, subfamily, genus, species_epithet, common_name)
		VALUES ('order', 'Animalia', 'Chordata', 'Aves', 'Strigiformes',
		NULL, NULL, NULL, NULL, 'Strigiformes') ON CONFLICT DO NOTHING`
	for range 2 {
		_, err := op.DB().ExecContext(ctx, q)
		require.NoError(t, err)
	}
	var n int
	err = op.DB().QueryRowContext(ctx,
		`SELECT count(*) FROM taxa WHERE "order" = 'Strigiformes'`).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
