package imports

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/orgball2608/fb-post-importer/internal/domain"
	"github.com/orgball2608/fb-post-importer/internal/repositories"
	"github.com/orgball2608/fb-post-importer/pkg/logger"
)

const table = "imported_posts"

var columns = []string{"id", "post_id", "page_id", "file_name", "permalink", "image_count", "cover_image", "imported_at"}

// DB is the subset of pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Pgx struct {
	pg     DB
	logger logger.Logger
	now    func() time.Time
}

func NewPgx(pg DB, log logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: log.WithComponent("ImportLedger"),
		now:    time.Now,
	}
}

var _ Repository = (*Pgx)(nil)

func (p *Pgx) Record(ctx context.Context, entry domain.ImportedPost) error {
	importedAt := entry.ImportedAt
	if importedAt.IsZero() {
		importedAt = p.now()
	}

	query, args, err := repositories.SqBuilder.
		Insert(table).
		Columns("post_id", "page_id", "file_name", "permalink", "image_count", "cover_image", "imported_at").
		Values(entry.PostID, entry.PageID, entry.FileName, entry.Permalink, entry.ImageCount, entry.CoverImage, importedAt).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	if _, err = p.pg.Exec(ctx, query, args...); err != nil {
		return err
	}

	p.logger.Debug("Recorded import", "post_id", entry.PostID, "file", entry.FileName)
	return nil
}

func (p *Pgx) ListByPost(ctx context.Context, postID string) ([]*domain.ImportedPost, error) {
	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"post_id": postID}).
		OrderBy("imported_at DESC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}
	return p.list(ctx, query, args)
}

func (p *Pgx) ListRecent(ctx context.Context, pageID string, count int) ([]*domain.ImportedPost, error) {
	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"page_id": pageID}).
		OrderBy("imported_at DESC").
		Limit(uint64(count)).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}
	return p.list(ctx, query, args)
}

func (p *Pgx) CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error) {
	query, args, err := repositories.SqBuilder.
		Delete(table).
		Where(sq.Lt{"imported_at": p.now().Add(-olderThan)}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func (p *Pgx) list(ctx context.Context, query string, args []any) ([]*domain.ImportedPost, error) {
	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.ImportedPost
	for rows.Next() {
		var e domain.ImportedPost
		if err := rows.Scan(&e.ID, &e.PostID, &e.PageID, &e.FileName, &e.Permalink, &e.ImageCount, &e.CoverImage, &e.ImportedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
