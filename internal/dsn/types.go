// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package dsn recognises the connection strings accepted for the session store
// and reports actionable parse errors for the ones it cannot use.
package dsn

import "fmt"

// Driver identifies the store implementation a DSN selects.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
	DriverRedis    Driver = "redis"
	DriverUnknown  Driver = "unknown"
)

// Info contains parsed information from a DSN string
type Info struct {
	Driver Driver
	// Target is what gets handed to the driver: a file path for SQLite,
	// the original URL otherwise.
	Target   string
	Original string
}

// ParseError represents an error that occurred during DSN parsing
type ParseError struct {
	DSN    string
	Reason string
	Hint   string
}

func (e *ParseError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("invalid DSN format: %s\nHint: %s", e.Reason, e.Hint)
	}
	return fmt.Sprintf("invalid DSN format: %s", e.Reason)
}

// NewParseError creates a new ParseError
func NewParseError(dsn, reason, hint string) *ParseError {
	return &ParseError{
		DSN:    dsn,
		Reason: reason,
		Hint:   hint,
	}
}
