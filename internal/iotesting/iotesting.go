// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gnames/taxseed/pkg/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	TestDatabaseName = "taxseed_test"

	postgresImage = "postgres:17-alpine"
)

var (
	pgOnce sync.Once
	pgCfg  config.DatabaseConfig
	pgErr  error
)

// PostgresConfig returns connection settings of a PostgreSQL container
// shared by all tests of a package. The container starts on the first
// call. Tests are skipped when the container cannot be started (for
// example, without Docker).
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.PostgresConfig(t)
//	    // ... connect with cfg
//	}
func PostgresConfig(t *testing.T) *config.DatabaseConfig {
	t.Helper()
	pgOnce.Do(func() {
		pgCfg, pgErr = startPostgres()
	})
	if pgErr != nil {
		t.Skipf("PostgreSQL is not available: %v", pgErr)
	}
	res := pgCfg
	return &res
}

func startPostgres() (config.DatabaseConfig, error) {
	var res config.DatabaseConfig
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		postgresImage,
		postgres.WithDatabase(TestDatabaseName),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return res, fmt.Errorf("start PostgreSQL container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return res, fmt.Errorf("get container host: %w", err)
	}
	mapped, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = container.Terminate(ctx)
		return res, fmt.Errorf("get container port: %w", err)
	}
	port, err := strconv.Atoi(mapped.Port())
	if err != nil {
		_ = container.Terminate(ctx)
		return res, fmt.Errorf("parse container port: %w", err)
	}

	res = config.New().Database
	res.Engine = "postgres"
	res.Host = host
	res.Port = port
	res.User = "test"
	res.Password = "test"
	res.Database = TestDatabaseName
	res.SSLMode = "disable"
	// the container is removed by the testcontainers reaper
	return res, nil
}
