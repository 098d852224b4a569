package main

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/unclebandit/crm-viewer/internal/db"
	"github.com/unclebandit/crm-viewer/internal/repository"
)

func TestSeedIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.db")
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer conn.Close()

	for run := 0; run < 2; run++ {
		if err := seed(conn, "../../seed"); err != nil {
			t.Fatalf("seed run %d: %v", run+1, err)
		}
	}

	opener := db.OpenerFunc(func(ctx context.Context) (*sql.DB, error) {
		c, err := sql.Open("sqlite", path)
		if err != nil {
			return nil, err
		}
		if _, err := c.ExecContext(ctx, "PRAGMA case_sensitive_like = ON"); err != nil {
			c.Close()
			return nil, err
		}
		return c, nil
	})

	stats, err := (&repository.StatsRepository{Opener: opener}).GetStats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalCustomers != 6 || stats.TotalInteractions != 8 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	// carla@mendes.PT is excluded by the case-sensitive match.
	if stats.PTEmails != 3 {
		t.Errorf("expected 3 .pt emails, got %d", stats.PTEmails)
	}

	interactions, err := (&repository.InteractionRepository{Opener: opener}).ListInteractions(context.Background())
	if err != nil {
		t.Fatalf("interactions: %v", err)
	}
	if len(interactions) != 7 {
		t.Errorf("expected the orphan interaction to be excluded, got %d rows", len(interactions))
	}
}

func TestSeedMissingDir(t *testing.T) {
	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "seed.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer conn.Close()

	if err := seed(conn, t.TempDir()); err == nil {
		t.Fatal("expected error for missing seed files")
	}
}
