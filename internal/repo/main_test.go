package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pressly/goose/v3"

	"github.com/topraga-donus/backend/migrations"
	"github.com/topraga-donus/backend/testutil"
)

// TestMain runs before any test in the repo_test package.
// When TEST_DATABASE_URL is set it applies all pending migrations so the
// integration tests never need to think about schema state; without it, only
// the pgxmock-backed tests run.
func TestMain(m *testing.M) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		os.Exit(m.Run())
	}

	// goose needs database/sql, not a pgx pool; construct the handle manually
	// because TestMain has no *testing.T to pass to the testutil helpers.
	db := testutil.MustOpenSQLDB(os.Getenv("TEST_DATABASE_URL"))
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatalf("TestMain: create goose provider: %v", err)
	}

	if _, err := provider.Up(context.Background()); err != nil {
		log.Fatalf("TestMain: run migrations: %v", err)
	}

	os.Exit(m.Run())
}
