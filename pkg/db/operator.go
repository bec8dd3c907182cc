// Package db defines the contract for database connections used to load
// generated artifacts.
package db

import (
	"context"
	"database/sql"

	"github.com/gnames/taxseed/pkg/config"
)

// Engine names supported by operators.
const (
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// Operator manages a database connection. Statements from artifacts are
// executed through the *sql.DB it exposes, so the same loader works for
// every engine.
type Operator interface {
	// Connect opens the database described by cfg.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close releases the connection.
	Close() error

	// Engine returns the engine name, SQLite or Postgres.
	Engine() string

	// DB returns the database handle, nil before Connect.
	DB() *sql.DB

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// Count returns the number of rows in a table.
	Count(ctx context.Context, tableName string) (int, error)
}
