package iosources

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/jimiaki7/gegraptai/pkg/errcode"
)

// SourcesConfigError creates an error for when sources.yaml
// cannot be loaded.
func SourcesConfigError(path string, err error) error {
	msg := `Cannot load sources configuration

<em>Configuration file:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Invalid YAML format
  - Permission denied

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Validate YAML syntax
  3. Remove the file to get a fresh template on the next run`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.SourcesConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load sources config: %w", err),
	}
}

// SourcesValidationError creates an error for a sources.yaml that
// loads but describes invalid sources.
func SourcesValidationError(path string, err error) error {
	msg := `Invalid sources configuration in %s

<em>Reason:</em> %s

Each source needs a unique positive <em>id</em>, a <em>format</em>
(morphgnt or oshb) and a <em>path</em> glob.`

	vars := []any{path, err.Error()}

	return &gn.Error{
		Code: errcode.SourcesValidationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid sources config: %w", err),
	}
}

// SourcesNoFilesError creates an error for a source whose path glob
// matches nothing at import time.
func SourcesNoFilesError(id int, pattern string) error {
	msg := "Source <em>%d</em> has no files matching <em>%s</em>"
	vars := []any{id, pattern}

	return &gn.Error{
		Code: errcode.SourcesNoFilesError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("source %d: no files match %s", id, pattern),
	}
}
