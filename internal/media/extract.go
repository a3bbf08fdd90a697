package media

import (
	"context"

	"github.com/orgball2608/fb-post-importer/internal/domain"
	"github.com/orgball2608/fb-post-importer/pkg/logger"
)

// AttachmentFetcher loads the attachment edge of a single post.
type AttachmentFetcher interface {
	GetPostAttachments(ctx context.Context, postID string) ([]domain.Attachment, error)
}

// Extractor collects candidate image URLs from a post.
type Extractor struct {
	fetcher AttachmentFetcher
	logger  logger.Logger
}

// NewExtractor returns an Extractor. A nil fetcher disables the per-post
// attachment lookup.
func NewExtractor(fetcher AttachmentFetcher, log logger.Logger) *Extractor {
	return &Extractor{
		fetcher: fetcher,
		logger:  log.WithComponent("MediaExtractor"),
	}
}

// Candidates returns every URL that might be an image, in discovery order:
// the full picture, the feed attachments, then the attachments returned by a
// separate lookup of the post. The result may hold duplicates and non-images.
func (e *Extractor) Candidates(ctx context.Context, post domain.Post) []string {
	var candidates []string

	if post.FullPicture != "" {
		candidates = append(candidates, post.FullPicture)
	}

	candidates = appendAttachments(candidates, post.AttachmentItems())

	if post.ID != "" && e.fetcher != nil {
		extra, err := e.fetcher.GetPostAttachments(ctx, post.ID)
		if err != nil {
			e.logger.Debug("Additional attachment lookup failed", "post_id", post.ID, "error", err)
		} else {
			candidates = appendAttachments(candidates, extra)
		}
	}

	return candidates
}

// Images runs Candidates through Dedupe.
func (e *Extractor) Images(ctx context.Context, post domain.Post) []string {
	candidates := e.Candidates(ctx, post)
	images := Dedupe(candidates)

	e.logger.Debug("Collected images", "post_id", post.ID, "candidates", len(candidates), "images", len(images))
	return images
}

func appendAttachments(dst []string, attachments []domain.Attachment) []string {
	for _, a := range attachments {
		switch {
		case a.IsPhoto():
			dst = appendPhoto(dst, a)
		case a.IsAlbum():
			// album contents are only reachable through their subattachments
			dst = appendNonEmpty(dst, a.URL)
		}

		for _, sub := range a.SubattachmentItems() {
			if sub.IsPhoto() {
				dst = appendPhoto(dst, sub)
			}
		}
	}
	return dst
}

func appendPhoto(dst []string, a domain.Attachment) []string {
	dst = appendNonEmpty(dst, a.URL)
	return appendNonEmpty(dst, a.ImageSrc())
}

func appendNonEmpty(dst []string, s string) []string {
	if s == "" {
		return dst
	}
	return append(dst, s)
}
