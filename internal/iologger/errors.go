package iologger

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/jimiaki7/gegraptai/pkg/errcode"
)

// CreateLogFileError is returned when the log file cannot be opened for
// writing.
func CreateLogFileError(path string, err error) error {
	msg := `Cannot open log file <em>%s</em>

<em>How to fix:</em>
  Set log.destination to stderr or check permissions of the log directory`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: open log %s: %w", fn, path, err),
	}
}
