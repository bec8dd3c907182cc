package iochecklist

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/taxseed/pkg/errcode"
)

// InputNotFoundError is returned when the checklist file does not exist.
func InputNotFoundError(path string, err error) error {
	msg := "Checklist file <em>%s</em> not found"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ChecklistNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot find checklist %s: %w",
			fn.Name(), path, err),
	}
}

func ChecklistReadError(path string, err error) error {
	msg := "Cannot read checklist <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ChecklistReadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read checklist %s: %w",
			fn.Name(), path, err),
	}
}

func ChecklistHeaderError(path string, missing []string) error {
	cols := strings.Join(missing, ", ")
	msg := "Checklist <em>%s</em> misses columns: <em>%s</em>"
	vars := []any{path, cols}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ChecklistHeaderError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: missing columns %s in %s",
			fn.Name(), cols, path),
	}
}

func ChecklistEmptyError(path string) error {
	msg := "Checklist <em>%s</em> has no species"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ChecklistEmptyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: no species in %s", fn.Name(), path),
	}
}
