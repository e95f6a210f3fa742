// internal/repository/postgres/schema.go
package postgres

import (
	"context"
	"fmt"
)

// EnsureSchema creates the posts table on startup when it does not exist.
// The UNIQUE constraint on slug backs the collision handling in the post
// service.
func EnsureSchema(ctx context.Context, db DBTX) error {
	query := `
		CREATE TABLE IF NOT EXISTS posts (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			slug        TEXT NOT NULL UNIQUE,
			content     TEXT NOT NULL,
			cover_image TEXT,
			published   BOOLEAN NOT NULL DEFAULT FALSE,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`

	if _, err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure posts table: %w", err)
	}
	return nil
}
