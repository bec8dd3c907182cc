package iodb

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/taxseed/pkg/config"
	"github.com/gnames/taxseed/pkg/errcode"
)

// ConnectionError is returned when PostgreSQL connection fails.
func ConnectionError(cfg *config.DatabaseConfig, err error) error {
	msg := "Cannot connect to PostgreSQL <em>%s@%s:%d/%s</em>"
	vars := []any{cfg.User, cfg.Host, cfg.Port, cfg.Database}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot connect to %s:%d: %w",
			fn.Name(), cfg.Host, cfg.Port, err),
	}
}

// SQLiteConnectionError is returned when a SQLite file cannot be opened.
func SQLiteConnectionError(path string, err error) error {
	msg := "Cannot open SQLite database <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open %s: %w",
			fn.Name(), path, err),
	}
}

func NotConnectedError() error {
	msg := "Database is not connected"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: operator is not connected", fn.Name()),
	}
}

func UnknownEngineError(engine string) error {
	msg := "Unknown database engine <em>%s</em>"
	vars := []any{engine}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBUnknownEngineError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown engine %q", fn.Name(), engine),
	}
}

func TableExistsCheckError(table string, err error) error {
	msg := "Cannot check if table <em>%s</em> exists"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBCountError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: table %s check: %w", fn.Name(), table, err),
	}
}

func CountError(table string, err error) error {
	msg := "Cannot count rows of <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBCountError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: count %s: %w", fn.Name(), table, err),
	}
}
