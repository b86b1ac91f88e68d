package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateProcessedPosts, downCreateProcessedPosts)
}

func upCreateProcessedPosts(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS processed_posts (
		target_id  VARCHAR PRIMARY KEY,
		posts      TEXT[] NOT NULL DEFAULT '{}',
		updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);
	`)
	return err
}

func downCreateProcessedPosts(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE IF EXISTS processed_posts;
	`)
	return err
}
