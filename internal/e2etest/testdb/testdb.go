// Package testdb gives e2e tests a migrated Postgres database.
package testdb

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
)

const envDSN = "TEST_DATABASE_URI"

var ErrNoDatabase = errors.New(envDSN + " is not set")

type TestDBInstance struct {
	DSN string
}

func NewTestDBInstance() (*TestDBInstance, error) {
	dsn := os.Getenv(envDSN)
	if dsn == "" {
		return nil, ErrNoDatabase
	}
	return &TestDBInstance{DSN: dsn}, nil
}

// Truncate empties every application table. Row triggers do not fire on TRUNCATE,
// so the append-only ledger can be reset too.
func (db *TestDBInstance) Truncate(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, db.DSN)
	if err != nil {
		return fmt.Errorf("connect test db: %w", err)
	}
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx,
		"TRUNCATE idempotency_records, vendor_ledger_entries, orders, vendors RESTART IDENTITY CASCADE")
	if err != nil {
		return fmt.Errorf("truncate test db: %w", err)
	}
	return nil
}

func (db *TestDBInstance) Down() {
	_ = db.Truncate(context.Background())
}
