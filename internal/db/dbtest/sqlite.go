// Package dbtest provides throwaway databases for tests.
package dbtest

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/unclebandit/crm-viewer/internal/db"
)

// Schema mirrors the Postgres tables the services read.
const Schema = `
CREATE TABLE customers (
    id         INTEGER PRIMARY KEY,
    name       TEXT NOT NULL,
    email      TEXT,
    phone      TEXT,
    address    TEXT,
    company    TEXT,
    notes      TEXT,
    created_at TIMESTAMP
);

CREATE TABLE interactions (
    id               INTEGER PRIMARY KEY,
    customer_id      INTEGER NOT NULL,
    interaction_type TEXT NOT NULL,
    subject          TEXT NOT NULL,
    description      TEXT,
    created_by       TEXT,
    created_at       TIMESTAMP
);
`

// NewSQLite creates a file-backed SQLite database under t.TempDir, applies
// Schema followed by fixture, and returns an Opener for it. Every Open gets
// its own connection with case-sensitive LIKE, matching Postgres.
func NewSQLite(t testing.TB, fixture string) db.Opener {
	t.Helper()

	path := filepath.Join(t.TempDir(), "crm.db")
	opener := db.OpenerFunc(func(ctx context.Context) (*sql.DB, error) {
		conn, err := sql.Open("sqlite", path)
		if err != nil {
			return nil, err
		}
		conn.SetMaxOpenConns(1)
		if _, err := conn.ExecContext(ctx, "PRAGMA case_sensitive_like = ON"); err != nil {
			conn.Close()
			return nil, err
		}
		return conn, nil
	})

	conn, err := opener.Open(context.Background())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer conn.Close()

	for _, stmt := range []string{Schema, fixture} {
		if stmt == "" {
			continue
		}
		if _, err := conn.Exec(stmt); err != nil {
			t.Fatalf("apply fixture: %v", err)
		}
	}
	return opener
}

// Unreachable returns an Opener that always fails with msg.
func Unreachable(msg string) db.Opener {
	return db.OpenerFunc(func(context.Context) (*sql.DB, error) {
		return nil, errors.New(msg)
	})
}
