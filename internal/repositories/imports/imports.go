package imports

import (
	"context"
	"time"

	"github.com/orgball2608/fb-post-importer/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=imports.go -destination=mocks/mock.go

// Repository is the import ledger: an audit trail of written documents. It is
// never consulted to skip posts.
type Repository interface {
	// Record stores one written document. Re-importing a post adds a new row.
	Record(ctx context.Context, entry domain.ImportedPost) error

	// ListByPost returns the import history of a post, newest first.
	ListByPost(ctx context.Context, postID string) ([]*domain.ImportedPost, error)

	// ListRecent returns the latest entries for a page, limited by count.
	ListRecent(ctx context.Context, pageID string, count int) ([]*domain.ImportedPost, error)

	// CleanupOldRecords deletes entries older than the given duration.
	CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error)
}
