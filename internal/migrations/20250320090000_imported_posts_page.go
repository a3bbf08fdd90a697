package migrations

import (
	"context"
	"database/sql"
)

func upImportedPostsPageIndex(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	ALTER TABLE imported_posts ADD COLUMN page_id VARCHAR(64) NOT NULL DEFAULT '';
	CREATE INDEX imported_posts_page_imported_idx ON imported_posts (page_id, imported_at DESC);
	`)
	return err
}

func downImportedPostsPageIndex(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP INDEX IF EXISTS imported_posts_page_imported_idx;
	ALTER TABLE imported_posts DROP COLUMN page_id;
	`)
	return err
}
