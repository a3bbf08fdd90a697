package imports

import (
	"context"
	"time"

	"github.com/orgball2608/fb-post-importer/internal/domain"
)

// Noop is used when no database is configured.
type Noop struct{}

var _ Repository = Noop{}

func (Noop) Record(context.Context, domain.ImportedPost) error { return nil }

func (Noop) ListByPost(context.Context, string) ([]*domain.ImportedPost, error) { return nil, nil }

func (Noop) ListRecent(context.Context, string, int) ([]*domain.ImportedPost, error) {
	return nil, nil
}

func (Noop) CleanupOldRecords(context.Context, time.Duration) (int64, error) { return 0, nil }
