package migrations

import (
	"context"
	"database/sql"
)

func upImportedPosts(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE imported_posts (
		id          SERIAL PRIMARY KEY,
		post_id     VARCHAR(64)  NOT NULL,
		file_name   VARCHAR(255) NOT NULL,
		permalink   TEXT         NOT NULL DEFAULT '',
		image_count INTEGER      NOT NULL DEFAULT 0,
		cover_image TEXT         NOT NULL DEFAULT '',
		imported_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	);
	CREATE INDEX imported_posts_post_id_idx ON imported_posts (post_id);
	`)
	return err
}

func downImportedPosts(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE imported_posts;`)
	return err
}
