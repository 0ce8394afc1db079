package iodb

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/jimiaki7/gegraptai/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name  string
		err   error
		code  gn.ErrorCode
		vars  []any
		wraps bool
	}{
		{
			name:  "connection",
			err:   ConnectionError("postgres", "localhost:5432/gegraptai", cause),
			code:  errcode.DBConnectionError,
			vars:  []any{"postgres", "localhost:5432/gegraptai"},
			wraps: true,
		},
		{
			name: "unknown driver",
			err:  UnknownDriverError("mysql"),
			code: errcode.DBUnknownDriverError,
			vars: []any{"mysql"},
		},
		{
			name: "not connected",
			err:  NotConnectedError(),
			code: errcode.DBNotConnectedError,
		},
		{
			name:  "table check",
			err:   TableCheckError(cause),
			code:  errcode.DBTableCheckError,
			wraps: true,
		},
		{
			name:  "query tables",
			err:   QueryTablesError(cause),
			code:  errcode.DBQueryTablesError,
			wraps: true,
		},
		{
			name:  "drop table",
			err:   DropTableError("verses", cause),
			code:  errcode.DBDropTableError,
			vars:  []any{"verses"},
			wraps: true,
		},
		{
			name: "empty store",
			err:  EmptyStoreError("/tmp/corpus.db"),
			code: errcode.DBEmptyDatabaseError,
			vars: []any{"/tmp/corpus.db"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gnErr *gn.Error
			require.ErrorAs(t, tt.err, &gnErr)
			assert.Equal(t, tt.code, gnErr.Code)
			assert.NotEmpty(t, gnErr.Msg)
			assert.Equal(t, tt.vars, gnErr.Vars)
			if tt.wraps {
				assert.ErrorIs(t, gnErr.Err, cause)
			}
		})
	}
}
