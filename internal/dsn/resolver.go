// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import (
	"net/url"
	"path/filepath"
	"strings"
)

// DetectDriver detects the store driver from a DSN string
func DetectDriver(dsn string) Driver {
	lower := strings.ToLower(strings.TrimSpace(dsn))

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(lower, "redis://"), strings.HasPrefix(lower, "rediss://"):
		return DriverRedis
	case strings.HasPrefix(lower, "sqlite://"), strings.HasPrefix(lower, "file:"), lower == ":memory:":
		return DriverSQLite
	case strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"), strings.HasSuffix(lower, ".sqlite3"):
		return DriverSQLite
	}
	return DriverUnknown
}

// Parse parses a DSN string and returns the driver and driver target.
// This is the main entry point for DSN parsing
func Parse(dsn string) (*Info, error) {
	trimmed := strings.TrimSpace(dsn)
	if trimmed == "" {
		return nil, NewParseError(dsn, "empty DSN", "provide a valid session store connection string")
	}

	info := &Info{Driver: DetectDriver(trimmed), Original: trimmed, Target: trimmed}
	switch info.Driver {
	case DriverPostgres, DriverRedis:
		u, err := url.Parse(trimmed)
		if err != nil {
			return nil, NewParseError(dsn, err.Error(), "check the URL for unescaped special characters")
		}
		if u.Host == "" {
			return nil, NewParseError(dsn, "missing host", "use "+string(info.Driver)+"://host:port/...")
		}
	case DriverSQLite:
		path := trimmed
		switch {
		case strings.HasPrefix(strings.ToLower(path), "sqlite://"):
			path = path[len("sqlite://"):]
		case strings.HasPrefix(strings.ToLower(path), "file:"):
			path = path[len("file:"):]
		}
		if i := strings.IndexByte(path, '?'); i >= 0 {
			path = path[:i]
		}
		if path == "" {
			return nil, NewParseError(dsn, "missing database path", "use sqlite:///path/to/session.db or :memory:")
		}
		if path != ":memory:" {
			path = filepath.Clean(path)
		}
		info.Target = path
	default:
		return nil, NewParseError(dsn, "unknown store type", "use postgres://, redis://, sqlite:// or a .db file path")
	}
	return info, nil
}
