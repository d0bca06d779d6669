// Package db ships the SQL schema with the binary.
package db

import _ "embed"

// Schema is idempotent and safe to apply on every start.
//
//go:embed init.sql
var Schema string
