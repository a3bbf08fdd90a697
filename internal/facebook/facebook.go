package facebook

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/orgball2608/fb-post-importer/internal/domain"
)

var (
	// ErrPermission means the token cannot read the page, usually because a
	// user token was passed where a page access token is needed.
	ErrPermission = errors.New("token lacks permission for the page")
	// ErrMalformedResponse means the response lacked the expected top-level field.
	ErrMalformedResponse = errors.New("malformed graph api response")
)

var permissionHints = []string{"missing permissions", "does not exist"}

// APIError is the `error` object of a failed Graph API call.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Type       string `json:"type"`
	Code       int    `json:"code"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("graph api error (status %d, code %d): %s", e.StatusCode, e.Code, e.Message)
}

// IsPermission reports whether the message points at a token/page mismatch.
func (e *APIError) IsPermission() bool {
	for _, hint := range permissionHints {
		if strings.Contains(e.Message, hint) {
			return true
		}
	}
	return false
}

func (e *APIError) Unwrap() error {
	if e.IsPermission() {
		return ErrPermission
	}
	return nil
}

//go:generate go run go.uber.org/mock/mockgen -source=facebook.go -destination=mocks/mock.go

type Client interface {
	// VerifyPage checks that the configured token can read the page.
	VerifyPage(ctx context.Context) (domain.Page, error)
	// GetPagePosts returns up to limit of the most recent page posts.
	GetPagePosts(ctx context.Context, limit int) ([]domain.Post, error)
	// GetPostAttachments fetches the attachment edge of a single post.
	GetPostAttachments(ctx context.Context, postID string) ([]domain.Attachment, error)
	// ListAccounts lists the pages a user token manages, with their page tokens.
	ListAccounts(ctx context.Context, userToken string) ([]domain.Page, error)
}
