package db_test

import (
	"context"
	"testing"
	"time"

	migrations "github.com/rmoreira/quizcraft/db"
	dbpkg "github.com/rmoreira/quizcraft/internal/db"
)

func TestMigrate_AppliesSchemaIdempotently(t *testing.T) {
	ctx := context.Background()
	d, err := dbpkg.New(ctx, "file:migratetest?mode=memory&cache=shared", 5*time.Second)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer d.Close()

	if err := dbpkg.Migrate(ctx, d, migrations.Migrations); err != nil {
		t.Fatalf("Migrate error: %v", err)
	}

	// all domain tables must exist
	for _, table := range []string{"users", "activities", "questions", "responses", "answers"} {
		var name string
		row := d.QueryRow(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
		if err := row.Scan(&name); err != nil {
			t.Fatalf("expected table %s to exist: %v", table, err)
		}
	}

	// second run is a no-op
	if err := dbpkg.Migrate(ctx, d, migrations.Migrations); err != nil {
		t.Fatalf("second Migrate error: %v", err)
	}

	var applied int
	if err := d.QueryRow(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&applied); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if applied != 1 {
		t.Fatalf("expected 1 recorded migration, got %d", applied)
	}
}
