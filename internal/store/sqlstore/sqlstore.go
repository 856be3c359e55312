// Package sqlstore implements store.Store on a single SQL table. It runs on
// SQLite (modernc.org/sqlite, pure Go) for single-device installs and on
// PostgreSQL through pgx's database/sql driver for shared deployments.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"washclub/cli/internal/dsn"
	"washclub/cli/internal/store"
)

// Store persists session keys in the session_kv table.
type Store struct {
	sqlDB   *sql.DB
	dialect dsn.Driver
	now     func() time.Time
}

var _ store.Store = (*Store)(nil)

const schema = `CREATE TABLE IF NOT EXISTS session_kv (
	name       TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at BIGINT NOT NULL
)`

// Open opens the database a DSN points at and ensures the schema exists.
func Open(ctx context.Context, connString string) (*Store, error) {
	info, err := dsn.Parse(connString)
	if err != nil {
		return nil, err
	}

	var sqlDB *sql.DB
	switch info.Driver {
	case dsn.DriverSQLite:
		target := info.Target
		if target != ":memory:" {
			target += "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
		}
		sqlDB, err = sql.Open("sqlite", target)
		if err != nil {
			return nil, fmt.Errorf("open sqlite db: %w", err)
		}
		// One writer at a time; for :memory: this also keeps a single database.
		sqlDB.SetMaxOpenConns(1)
	case dsn.DriverPostgres:
		sqlDB, err = sql.Open("pgx", info.Target)
		if err != nil {
			return nil, fmt.Errorf("open postgres db: %w", err)
		}
	default:
		return nil, fmt.Errorf("sql store does not support %s", info.Driver)
	}

	s, err := New(ctx, sqlDB, info.Driver)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an open handle and applies the schema.
func New(ctx context.Context, sqlDB *sql.DB, dialect dsn.Driver) (*Store, error) {
	if sqlDB == nil {
		return nil, errors.New("sql handle is required")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping %s db: %w", dialect, err)
	}
	if _, err := sqlDB.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB, dialect: dialect, now: time.Now}, nil
}

// Close closes the SQL handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ph returns the n-th (1-based) bind placeholder for the dialect.
func (s *Store) ph(n int) string {
	if s.dialect == dsn.DriverPostgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// Get implements store.Store.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.sqlDB.QueryRowContext(ctx,
		"SELECT value FROM session_kv WHERE name = "+s.ph(1), key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select %s: %w", key, err)
	}
	return v, true, nil
}

// Set implements store.Store.
func (s *Store) Set(ctx context.Context, key, value string) error {
	q := "INSERT INTO session_kv (name, value, updated_at) VALUES (" +
		s.ph(1) + ", " + s.ph(2) + ", " + s.ph(3) + ") " +
		"ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
	if _, err := s.sqlDB.ExecContext(ctx, q, key, value, s.now().UTC().UnixMilli()); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// Remove implements store.Store.
func (s *Store) Remove(ctx context.Context, key string) error {
	if _, err := s.sqlDB.ExecContext(ctx, "DELETE FROM session_kv WHERE name = "+s.ph(1), key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
