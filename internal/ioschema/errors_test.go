package ioschema

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/jimiaki7/gegraptai/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("disk is read-only")
	tests := []struct {
		name string
		err  error
		code gn.ErrorCode
	}{
		{"not connected", NotConnectedError(), errcode.DBNotConnectedError},
		{"gorm", GORMConnectionError(cause), errcode.SchemaGORMConnectionError},
		{"create", CreateSchemaError(cause), errcode.SchemaCreateError},
		{"migrate", MigrateSchemaError(cause), errcode.SchemaMigrateError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gnErr *gn.Error
			require.ErrorAs(t, tt.err, &gnErr)
			assert.Equal(t, tt.code, gnErr.Code)
			assert.NotEmpty(t, gnErr.Msg)
			if tt.code != errcode.DBNotConnectedError {
				assert.ErrorIs(t, gnErr.Err, cause)
			}
		})
	}
}

func TestAddColumnDDL(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"VARCHAR(32) PRIMARY KEY", "VARCHAR(32)"},
		{"INTEGER NOT NULL", "INTEGER"},
		{"INTEGER NOT NULL DEFAULT 0", "INTEGER NOT NULL DEFAULT 0"},
		{"TEXT", "TEXT"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, addColumnDDL(tt.in), tt.in)
	}
}
