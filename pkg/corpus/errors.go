package corpus

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/jimiaki7/gegraptai/pkg/errcode"
)

var (
	// ErrInvalidPassage is wrapped by InvalidPassageError.
	ErrInvalidPassage = errors.New("invalid passage format")

	// ErrPassageNotFound is wrapped by PassageNotFoundError.
	ErrPassageNotFound = errors.New("passage not found")
)

func InvalidPassageError(input string) error {
	msg := "Cannot find a passage reference in <em>%s</em>"
	vars := []any{input}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InvalidPassageError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %q: %w", fn, input, ErrInvalidPassage),
	}
}

func PassageNotFoundError(input string) error {
	msg := "No verses for <em>%s</em> in the corpus"
	vars := []any{input}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.PassageNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %q: %w", fn, input, ErrPassageNotFound),
	}
}

// UnknownBookError is returned for a book name that the registry does
// not know.
func UnknownBookError(token string) error {
	msg := "Unknown book <em>%s</em>"
	vars := []any{token}
	return &gn.Error{
		Code: errcode.UnknownBookError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown book %q", token),
	}
}
