package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the session table and its expiry index if missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %[1]s (
			id          UUID PRIMARY KEY,
			token       TEXT NOT NULL,
			user_id     TEXT NOT NULL,
			username    TEXT NOT NULL DEFAULT '',
			email       TEXT NOT NULL DEFAULT '',
			expires_at  TIMESTAMPTZ NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS %[1]s_expires_at_idx ON %[1]s (expires_at);
	`, tables.Sessions)

	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("create %s: %w", tables.Sessions, err)
	}
	return nil
}
