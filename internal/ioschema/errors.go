package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/jimiaki7/gegraptai/pkg/errcode"
)

// NotConnectedError creates an error for when schema
// operation is attempted without store connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without store connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to store"),
	}
}

// GORMConnectionError creates an error for GORM
// connection failures.
func GORMConnectionError(err error) error {
	msg := `Cannot open the PostgreSQL store with GORM

<em>How to fix:</em>
  1. Ensure the store is reachable: <em>pg_isready</em>
  2. Check the store section of config.yaml`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// CreateSchemaError creates an error for schema
// creation failures.
func CreateSchemaError(err error) error {
	msg := `Cannot create corpus schema

<em>How to fix:</em>
  1. Check that the store user can create tables
  2. Run <em>gegraptai create --force</em> to start from scratch`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to create schema: %w", err),
	}
}

// MigrateSchemaError creates an error for schema
// migration failures.
func MigrateSchemaError(err error) error {
	msg := `Cannot migrate corpus schema

<em>How to fix:</em>
  1. Check that the store user can alter tables
  2. Recreate the store with <em>gegraptai create --force</em>
     and import the sources again`

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to migrate schema: %w", err),
	}
}
