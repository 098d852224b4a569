// internal/db/db.go
package db

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/unclebandit/crm-viewer/internal/config"
	appErrors "github.com/unclebandit/crm-viewer/internal/errors"
)

// Opener hands out a database handle backed by one fresh connection.
// Callers own the handle and must Close it.
type Opener interface {
	Open(ctx context.Context) (*sql.DB, error)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(ctx context.Context) (*sql.DB, error)

func (f OpenerFunc) Open(ctx context.Context) (*sql.DB, error) {
	return f(ctx)
}

// Postgres opens lib/pq connections. Nothing is pooled between calls.
type Postgres struct {
	Config config.Database
}

func NewPostgres(cfg config.Database) *Postgres {
	return &Postgres{Config: cfg}
}

func (p *Postgres) Open(ctx context.Context) (*sql.DB, error) {
	conn, err := sql.Open("postgres", p.Config.DSN())
	if err != nil {
		return nil, appErrors.NewDatabaseError("open connection", err)
	}
	conn.SetMaxOpenConns(1)

	// sql.Open is lazy; ping so a dead server fails here and not mid-query.
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, appErrors.NewDatabaseError("open connection", err)
	}
	return conn, nil
}

// Ping opens a connection, runs SELECT 1 and closes it again.
func Ping(ctx context.Context, opener Opener) error {
	conn, err := opener.Open(ctx)
	if err != nil {
		return appErrors.NewDatabaseError("ping", err)
	}
	defer conn.Close()

	var one int
	if err := conn.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return appErrors.NewDatabaseError("ping", err)
	}
	return nil
}
