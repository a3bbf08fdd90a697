package importerimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/orgball2608/fb-post-importer/internal/domain"
	"github.com/orgball2608/fb-post-importer/internal/facebook"
	"github.com/orgball2608/fb-post-importer/internal/importer"
	"github.com/orgball2608/fb-post-importer/internal/jekyll"
	errs "github.com/orgball2608/fb-post-importer/pkg/errors"
	"github.com/orgball2608/fb-post-importer/pkg/formatter"
)

const tokenVisibleChars = 15

const permissionHint = "the token is probably not a Page Access Token, or it lacks permission to read the page"

// Run verifies the token, fetches the configured number of posts and writes
// one document per post. Existing files of the same name are overwritten.
func (im *ImporterImpl) Run(ctx context.Context) (importer.Summary, error) {
	summary := importer.Summary{OutDir: im.cfg.PostDirPath()}

	if im.cfg.Importer.Debug {
		im.logger.Debug("Import settings",
			"token", formatter.MaskToken(im.cfg.Facebook.Token, tokenVisibleChars),
			"page_id", im.cfg.Facebook.PageID,
			"output_dir", summary.OutDir,
			"count", im.cfg.Importer.Count,
		)
	}

	page, err := im.fb.VerifyPage(ctx)
	if err != nil {
		im.logger.Warn("Token check failed", "page_id", im.cfg.Facebook.PageID, "error", err)
		if errors.Is(err, facebook.ErrPermission) {
			im.logger.Warn("Check the token type and page permissions", "hint", permissionHint)
			err = fmt.Errorf("%w; %s", err, permissionHint)
		}
		if !im.policy.Continue(err) {
			return summary, errs.Wrap(errs.ErrAborted, "token check")
		}
	} else {
		summary.PageName = page.Name
		im.logger.Info("Token is valid", "page", page.Name)
	}

	posts, err := im.fb.GetPagePosts(ctx, im.cfg.Importer.Count)
	if err != nil {
		im.logger.Error("Error fetching posts", "error", err)
		return summary, fmt.Errorf("%w: %w", importer.ErrNothingToImport, err)
	}
	if len(posts) == 0 {
		im.logger.Warn("No posts to import", "page_id", im.cfg.Facebook.PageID)
		return summary, importer.ErrNothingToImport
	}

	im.logger.Info("Processing posts", "count", len(posts))

	for _, post := range posts {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result, err := im.importPost(ctx, post)
		if err != nil {
			return summary, err
		}
		summary.Results = append(summary.Results, result)
	}

	im.logger.Info("Import finished",
		"written", summary.Written(),
		"failed", summary.Failed(),
		"dir", summary.OutDir,
	)

	if err := im.notifier.SendMessageToUser(ctx, summaryMessage(summary)); err != nil {
		im.logger.Warn("Run summary not delivered", "error", err)
	}

	return summary, nil
}

// importPost returns an error only for failures that must stop the run.
// A post that cannot be composed is reported in the result instead.
func (im *ImporterImpl) importPost(ctx context.Context, post domain.Post) (importer.Result, error) {
	result := importer.Result{PostID: post.ID}

	images := im.extractor.Images(ctx, post)
	result.ImageCount = len(images)

	doc, err := im.composer.Compose(post, images)
	if err != nil {
		im.logger.Error("Skipping post",
			"post_id", post.ID,
			"created_time", post.CreatedTime,
			"code", errs.GetCode(err),
			"error", err,
		)
		result.Err = err
		return result, nil
	}
	result.FileName = doc.FileName
	result.Cover = doc.FrontMatter.Image

	path, err := jekyll.Write(im.cfg.PostDirPath(), doc)
	if err != nil {
		im.logger.Error("Error writing post", "post_id", post.ID, "file", doc.FileName, "error", err)
		return result, err
	}
	result.Path = path

	im.logger.Info("Created", "file", path, "images", len(images))

	history, err := im.ledger.ListByPost(ctx, post.ID)
	if err != nil {
		im.logger.Warn("Import history unavailable",
			"post_id", post.ID,
			"error", errs.WrapWithCode(err, errs.CodeLedger, "list imports"),
		)
	} else if len(history) > 0 {
		result.PreviousImports = len(history)
		im.logger.Info("Post imported before",
			"post_id", post.ID,
			"times", len(history),
			"last_file", history[0].FileName,
			"last_imported_at", history[0].ImportedAt,
		)
	}

	err = im.ledger.Record(ctx, domain.ImportedPost{
		PostID:     post.ID,
		PageID:     im.cfg.Facebook.PageID,
		FileName:   doc.FileName,
		Permalink:  post.PermalinkURL,
		ImageCount: len(images),
		CoverImage: doc.FrontMatter.Image,
	})
	if err != nil {
		im.logger.Warn("Import not recorded",
			"post_id", post.ID,
			"error", errs.WrapWithCode(err, errs.CodeLedger, "record import"),
		)
	}

	return result, nil
}

func summaryMessage(s importer.Summary) string {
	var sb strings.Builder

	title := "Facebook import finished"
	if s.PageName != "" {
		title += ": " + s.PageName
	}
	sb.WriteString("*" + formatter.EscapeMarkdownV2(title) + "*\n")
	sb.WriteString(formatter.EscapeMarkdownV2(fmt.Sprintf("Written: %s, failed: %s, re-imported: %s",
		formatter.FormatNumber(s.Written()),
		formatter.FormatNumber(s.Failed()),
		formatter.FormatNumber(s.Reimported()),
	)))

	for _, r := range s.Results {
		sb.WriteString("\n")
		if r.Err != nil {
			sb.WriteString(formatter.EscapeMarkdownV2(fmt.Sprintf("✗ %s: %v", r.PostID, r.Err)))
			continue
		}
		sb.WriteString(formatter.EscapeMarkdownV2(fmt.Sprintf("✓ %s (%d images)", r.FileName, r.ImageCount)))
	}
	return sb.String()
}
