package iocorpus

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/jimiaki7/gegraptai/pkg/errcode"
)

func NotConnectedError() error {
	msg := "Corpus store is not connected"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: not connected", fn),
	}
}

func QueryError(what string, err error) error {
	msg := "Cannot read <em>%s</em> from the corpus store"
	vars := []any{what}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: query %s: %w", fn, what, err),
	}
}
