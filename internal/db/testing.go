package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func applyMigrations(t *testing.T, connString string) {
	t.Helper()
	migrationsPath := os.Getenv("TEST_MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "../../migrations"
	}
	m, err := migrate.New("file://"+migrationsPath, connString)
	if err != nil {
		t.Fatalf("Could not connect to DB for applying migrations: %v.", err)
	}
	err = m.Up()
	if !errors.Is(err, migrate.ErrNoChange) && err != nil {
		t.Fatalf("Could not apply DB migrations: %v.", err)
	}
}

// CreateTestPool connects to the database pointed to by
// TEST_POSTGRESQL_URL and applies migrations. Tests are skipped when the
// variable is not set.
func CreateTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	connString := os.Getenv("TEST_POSTGRESQL_URL")
	if connString == "" {
		t.Skip("TEST_POSTGRESQL_URL is not set.")
	}
	applyMigrations(t, connString)

	ctx := context.Background()
	pool, err := pgxpool.Connect(ctx, connString)
	if err != nil {
		t.Fatalf("Could not connect to the database: %v.", err)
	}

	return pool
}

func TruncateTables(pool *pgxpool.Pool) {
	for _, table := range []string{`"user"`, "password_reset_token"} {
		_, err := pool.Exec(context.Background(), fmt.Sprintf("TRUNCATE %s", table))
		if err != nil {
			panic("Could not truncate DB tables.")
		}
	}
}
