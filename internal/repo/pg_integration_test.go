//go:build integration

package repo

import (
	"context"
	"os"
	"testing"

	"Taskboard/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Run with: TASKBOARD_TEST_POSTGRES_DSN=postgres://... go test -tags integration ./internal/repo
func openPGTestStore(t *testing.T) Store {
	t.Helper()
	dsn := os.Getenv("TASKBOARD_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TASKBOARD_TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()

	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		t.Fatalf("open migration db: %v", err)
	}
	defer db.Close()
	if err := migrations.Up(ctx, db, goose.DialectPostgres); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("pgxpool: %v", err)
	}
	t.Cleanup(pool.Close)
	return NewPGStore(pool)
}

func TestPGStore(t *testing.T) {
	for _, tt := range storeTests {
		t.Run(tt.name, func(t *testing.T) {
			tt.run(t, openPGTestStore(t))
		})
	}
}
