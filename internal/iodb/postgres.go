package iodb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gnames/taxseed/pkg/config"
	"github.com/gnames/taxseed/pkg/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// pgxOperator implements db.Operator interface using
// pgxpool for connection pooling.
type pgxOperator struct {
	pool *pgxpool.Pool
	db   *sql.DB
}

// Connect establishes a connection pool to PostgreSQL.
func (p *pgxOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
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

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return ConnectionError(cfg, err)
	}

	// loading is sequential, a small pool is enough
	poolConfig.MaxConns = 4
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(cfg, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(cfg, err)
	}

	p.pool = pool
	p.db = stdlib.OpenDBFromPool(pool)
	return nil
}

// Close releases all database connections.
func (p *pgxOperator) Close() error {
	if p.db != nil {
		p.db.Close()
	}
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *pgxOperator) Engine() string {
	return db.Postgres
}

// DB returns a database/sql handle backed by the pgx pool.
func (p *pgxOperator) DB() *sql.DB {
	return p.db
}

// TableExists checks if a table exists in the current
// database.
func (p *pgxOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if p.pool == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = $1
		)
	`

	var exists bool
	err := p.pool.QueryRow(ctx, query, tableName).Scan(&exists)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}

	return exists, nil
}

func (p *pgxOperator) Count(
	ctx context.Context,
	tableName string,
) (int, error) {
	return count(ctx, p.db, tableName)
}
