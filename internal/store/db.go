// Package store implements the two state owners of the marketplace: the
// account store (users + session) and the catalog store (products, cart,
// purchase ledger). Each store keeps its working state in memory, mirrors
// every mutation to SQLite synchronously, and rehydrates from SQLite at
// construction time, falling back to seed data when storage is empty or
// unreadable.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ecofinds/ecofinds-go/internal/migrations"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the local SQLite database at dsn and brings the schema
// up to date.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
