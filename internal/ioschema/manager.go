// Package ioschema implements SchemaManager interface for
// destination tables. This is an impure I/O package that wraps GORM
// AutoMigrate for PostgreSQL and plain DDL for SQLite.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/taxseed/pkg/db"
	"github.com/gnames/taxseed/pkg/lifecycle"
	"github.com/gnames/taxseed/pkg/schema"
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

// Create creates taxa and sightings tables with natural key indexes.
func (m *manager) Create(ctx context.Context) error {
	sqlDB := m.operator.DB()
	if sqlDB == nil {
		return NotConnectedError()
	}

	switch m.operator.Engine() {
	case db.Postgres:
		return m.createPostgres(ctx)
	default:
		return m.createSQLite(ctx)
	}
}

func (m *manager) createPostgres(ctx context.Context) error {
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: m.operator.DB()}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}
	slog.Info("Created PostgreSQL schema")
	return nil
}

func (m *manager) createSQLite(ctx context.Context) error {
	sqlDB := m.operator.DB()
	for _, stmt := range schema.Statements() {
		if _, err := sqlDB.ExecContext(ctx, stmt); err != nil {
			return CreateSchemaError(err)
		}
	}
	slog.Info("Created SQLite schema")
	return nil
}
