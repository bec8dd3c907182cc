package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/taxseed/pkg/errcode"
)

// NotConnectedError creates an error for when schema
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for GORM
// connection failures.
func GORMConnectionError(err error) error {
	msg := `Cannot connect to database with GORM

<em>How to fix:</em>
  1. Ensure database operator is connected
  2. Check database configuration`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// CreateSchemaError creates an error for schema
// creation failures.
func CreateSchemaError(err error) error {
	msg := `Cannot create taxa and sightings tables

<em>Possible causes:</em>
  - Insufficient database permissions
  - Tables exist with an incompatible layout

<em>How to fix:</em>
  1. Check database user has CREATE permissions
  2. Drop old taxa and sightings tables`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to create schema: %w", err),
	}
}
