package iogenerate

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/taxseed/pkg/errcode"
)

func GenerateArtifactError(kind, path string, err error) error {
	msg := "Cannot generate %s artifact <em>%s</em>"
	vars := []any{kind, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.GenerateArtifactError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write %s: %w",
			fn.Name(), path, err),
	}
}
