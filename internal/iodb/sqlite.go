package iodb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gnames/taxseed/pkg/config"
	"github.com/gnames/taxseed/pkg/db"
	_ "modernc.org/sqlite"
)

// sqliteOperator implements db.Operator with the pure Go modernc
// SQLite driver.
type sqliteOperator struct {
	db *sql.DB
}

// Connect opens (or creates) the SQLite file from cfg.Path.
func (s *sqliteOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		cfg.Path,
	)
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return SQLiteConnectionError(cfg.Path, err)
	}
	// a single writer avoids SQLITE_BUSY inside transactions
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return SQLiteConnectionError(cfg.Path, err)
	}

	s.db = sqlDB
	return nil
}

// Close closes the database file.
func (s *sqliteOperator) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *sqliteOperator) Engine() string {
	return db.SQLite
}

func (s *sqliteOperator) DB() *sql.DB {
	return s.db
}

// TableExists checks sqlite_master for the table.
func (s *sqliteOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if s.db == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT 1 FROM sqlite_master
			WHERE type = 'table' AND name = ?
		)
	`
	var exists bool
	err := s.db.QueryRowContext(ctx, query, tableName).Scan(&exists)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}
	return exists, nil
}

func (s *sqliteOperator) Count(
	ctx context.Context,
	tableName string,
) (int, error) {
	return count(ctx, s.db, tableName)
}
