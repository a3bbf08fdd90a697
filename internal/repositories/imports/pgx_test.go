package imports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/orgball2608/fb-post-importer/internal/domain"
	"github.com/orgball2608/fb-post-importer/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct {
	sql  string
	args []any
	tag  pgconn.CommandTag
	err  error
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql = sql
	f.args = args
	return f.tag, f.err
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.sql = sql
	f.args = args
	return nil, f.err
}

func TestRecordDefaultsImportedAt(t *testing.T) {
	db := &fakeDB{tag: pgconn.NewCommandTag("INSERT 0 1")}
	repo := NewPgx(db, logger.Nop())
	fixed := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	err := repo.Record(context.Background(), domain.ImportedPost{
		PostID:     "1_1",
		PageID:     "1",
		FileName:   "2025-03-14-10-22-prispevok.md",
		ImageCount: 2,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO imported_posts (post_id,page_id,file_name,permalink,image_count,cover_image,imported_at) VALUES ($1,$2,$3,$4,$5,$6,$7)",
		db.sql)
	require.Len(t, db.args, 7)
	assert.Equal(t, "1_1", db.args[0])
	assert.Equal(t, 2, db.args[4])
	assert.Equal(t, fixed, db.args[6])
}

func TestRecordPropagatesError(t *testing.T) {
	db := &fakeDB{err: errors.New("connection refused")}
	repo := NewPgx(db, logger.Nop())

	err := repo.Record(context.Background(), domain.ImportedPost{PostID: "1_1"})
	assert.EqualError(t, err, "connection refused")
}

func TestCleanupOldRecords(t *testing.T) {
	db := &fakeDB{tag: pgconn.NewCommandTag("DELETE 4")}
	repo := NewPgx(db, logger.Nop())
	fixed := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	n, err := repo.CleanupOldRecords(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.Equal(t, "DELETE FROM imported_posts WHERE imported_at < $1", db.sql)
	assert.Equal(t, []any{fixed.Add(-24 * time.Hour)}, db.args)
}

func TestListRecentQueryError(t *testing.T) {
	db := &fakeDB{err: errors.New("boom")}
	repo := NewPgx(db, logger.Nop())

	_, err := repo.ListRecent(context.Background(), "1", 10)
	require.Error(t, err)
	assert.Equal(t,
		"SELECT id, post_id, page_id, file_name, permalink, image_count, cover_image, imported_at FROM imported_posts WHERE page_id = $1 ORDER BY imported_at DESC LIMIT 10",
		db.sql)
}

func TestListByPostQuery(t *testing.T) {
	db := &fakeDB{err: errors.New("boom")}
	repo := NewPgx(db, logger.Nop())

	_, err := repo.ListByPost(context.Background(), "1_1")
	require.Error(t, err)
	assert.Equal(t,
		"SELECT id, post_id, page_id, file_name, permalink, image_count, cover_image, imported_at FROM imported_posts WHERE post_id = $1 ORDER BY imported_at DESC",
		db.sql)
	assert.Equal(t, []any{"1_1"}, db.args)
}
