// Package iodb implements database operators for SQLite (modernc) and
// PostgreSQL (pgxpool). This is an impure I/O package that implements
// contracts defined in pkg/.
package iodb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gnames/taxseed/pkg/db"
)

// NewOperator creates a database operator for the engine
// (without connecting).
func NewOperator(engine string) (db.Operator, error) {
	switch engine {
	case db.SQLite:
		return &sqliteOperator{}, nil
	case db.Postgres:
		return &pgxOperator{}, nil
	default:
		return nil, UnknownEngineError(engine)
	}
}

// count is shared by operators. The table name is quoted as an identifier.
func count(ctx context.Context, sqlDB *sql.DB, tableName string) (int, error) {
	if sqlDB == nil {
		return 0, NotConnectedError()
	}
	q := fmt.Sprintf(`SELECT count(*) FROM "%s"`, tableName)
	var res int
	if err := sqlDB.QueryRowContext(ctx, q).Scan(&res); err != nil {
		return 0, CountError(tableName, err)
	}
	return res, nil
}
