package ioload

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/taxseed/pkg/errcode"
)

const stmtPreview = 80

func NotConnectedError() error {
	msg := "Load attempted without database connection"
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

func ArtifactNotFoundError(path string, err error) error {
	msg := "Artifact <em>%s</em> not found, run <em>taxseed generate</em> first"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LoadArtifactNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}

func ArtifactReadError(path string, err error) error {
	msg := "Cannot read artifact <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn.Name(), path, err),
	}
}

func DialectError(path, engine string) error {
	msg := "Artifact <em>%s</em> was generated for SQLite, " +
		"regenerate it with <em>--dialect %s</em>"
	vars := []any{path, engine}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LoadDialectError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %s has INSERT OR IGNORE statements",
			fn.Name(), path),
	}
}

func StatementError(path string, n int, stmt string, err error) error {
	if len(stmt) > stmtPreview {
		stmt = stmt[:stmtPreview] + "..."
	}
	msg := "Statement <em>%d</em> of <em>%s</em> failed"
	vars := []any{n, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LoadStatementError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: statement %d (%s): %w",
			fn.Name(), n, stmt, err),
	}
}

func TransactionError(path string, err error) error {
	msg := "Transaction for <em>%s</em> failed"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LoadTransactionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}

func CountError(table string, err error) error {
	msg := "Cannot count rows of <em>%s</em>"
	vars := []any{table}
	return &gn.Error{
		Code: errcode.DBCountError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("count %s: %w", table, err),
	}
}
