package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/jimiaki7/gegraptai/pkg/errcode"
)

// CreateDirError is returned when one of the gegraptai directories
// cannot be created.
func CreateDirError(dir string, err error) error {
	msg := "Cannot create directory <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: mkdir %s: %w", fn, dir, err),
	}
}

// WriteTemplateError is returned when an embedded template cannot be
// written to the config directory.
func WriteTemplateError(path string, err error) error {
	msg := `Cannot write default settings to <em>%s</em>

<em>How to fix:</em>
  Check permissions of the config directory`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteTemplateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: write template %s: %w", fn, path, err),
	}
}

// ReadFileError is returned when a settings file exists but cannot be
// read.
func ReadFileError(path string, err error) error {
	msg := "Cannot read settings from <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: read %s: %w", fn, path, err),
	}
}
