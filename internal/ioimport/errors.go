package ioimport

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/jimiaki7/gegraptai/pkg/errcode"
)

// NotConnectedError creates an error for when import is attempted
// without a store connection.
func NotConnectedError() error {
	msg := "Import attempted without a store connection"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: not connected to store", fn),
	}
}

// NoSourcesError creates an error for when no sources match the
// requested IDs.
func NoSourcesError(requestedIDs []int) error {
	msg := `No sources found matching requested IDs

<em>Requested IDs:</em> %v

<em>How to fix:</em>
  1. Check available sources: review sources.yaml
  2. Verify source IDs are correct`

	vars := []any{requestedIDs}
	return &gn.Error{
		Code: errcode.ImportNoSourcesError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no sources found matching IDs: %v", requestedIDs),
	}
}

// ReadError creates an error for a source file that cannot be read.
func ReadError(path string, err error) error {
	msg := "Cannot read source file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: read %s: %w", fn, path, err),
	}
}

// FormatError creates an error for malformed content of a source file.
// Line is zero when the position is unknown.
func FormatError(path string, line int, reason string) error {
	msg := "Malformed source file <em>%s</em>: %s"
	vars := []any{path, reason}
	if line > 0 {
		msg = "Malformed source file <em>%s</em>, line %d: %s"
		vars = []any{path, line, reason}
	}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %s:%d: %s", fn, path, line, reason),
	}
}

// UnknownBookError creates an error for a book name that is not in the
// registry.
func UnknownBookError(path, token string) error {
	msg := `Unknown book <em>%s</em> in <em>%s</em>

<em>How to fix:</em>
  Add the name as an alias of the book in the registry`
	vars := []any{token, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportUnknownBookError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown book %q in %s", fn, token, path),
	}
}

// InsertError creates an error for a failed write of a source file.
func InsertError(path string, err error) error {
	msg := "Cannot write verses of <em>%s</em> to the store"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportInsertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: insert %s: %w", fn, path, err),
	}
}

// CacheError creates an error for a failed write to the sources cache.
func CacheError(dir string, err error) error {
	msg := "Cannot write to sources cache <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportCacheError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cache %s: %w", fn, dir, err),
	}
}

// CancelledError creates an error for an import interrupted by context
// cancellation.
func CancelledError(err error) error {
	msg := "Import was cancelled"
	return &gn.Error{
		Code: errcode.ImportCancelledError,
		Msg:  msg,
		Err:  fmt.Errorf("import cancelled: %w", err),
	}
}

// AllSourcesFailedError creates an error for when every selected source
// failed to import.
func AllSourcesFailedError(count int) error {
	msg := `All %d sources failed to import

<em>How to fix:</em>
  1. Check the log file for details
  2. Verify the source paths in sources.yaml`

	vars := []any{count}
	return &gn.Error{
		Code: errcode.ImportAllSourcesFailedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("all %d sources failed", count),
	}
}
