package graphimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/orgball2608/fb-post-importer/internal/domain"
	"github.com/orgball2608/fb-post-importer/internal/facebook"
	"github.com/orgball2608/fb-post-importer/internal/ratelimit"
	"github.com/orgball2608/fb-post-importer/pkg/config"
	errs "github.com/orgball2608/fb-post-importer/pkg/errors"
	"github.com/orgball2608/fb-post-importer/pkg/logger"
	"go.uber.org/fx"
)

const (
	postFields       = "id,message,created_time,full_picture,images,attachments{media_type,url,media,title,type,subattachments{media_type,url,description,title,type,media}},permalink_url"
	attachmentFields = "media_type,url,media,subattachments{media_type,url,media}"
)

type Opts struct {
	fx.In

	Config  *config.Config
	Logger  logger.Logger
	Limiter ratelimit.Limiter `optional:"true"`
}

type GraphImpl struct {
	http    *resty.Client
	token   string
	pageID  string
	version string
	limiter ratelimit.Limiter
	logger  logger.Logger
}

func New(opts Opts) *GraphImpl {
	fb := opts.Config.Facebook

	client := resty.New()
	client.SetBaseURL(fb.BaseURL)
	client.SetHeader("Accept", "application/json")
	client.SetTimeout(fb.Timeout)
	if fb.Timeout <= 0 {
		client.SetTimeout(30 * time.Second)
	}

	limiter := opts.Limiter
	if limiter == nil {
		limiter = ratelimit.PerSecond(fb.RequestsPerSecond)
	}

	return &GraphImpl{
		http:    client,
		token:   fb.Token,
		pageID:  fb.PageID,
		version: fb.APIVersion,
		limiter: limiter,
		logger:  opts.Logger.WithComponent("GraphAPI"),
	}
}

var _ facebook.Client = (*GraphImpl)(nil)

func (g *GraphImpl) VerifyPage(ctx context.Context) (domain.Page, error) {
	var page domain.Page
	err := g.get(ctx, "page", g.pageID, map[string]string{"fields": "name"}, g.token, &page)
	if err != nil {
		return domain.Page{}, err
	}
	if page.Name == "" {
		return domain.Page{}, errs.WrapWithCode(facebook.ErrMalformedResponse, errs.CodeGraphResponse, "page response has no name")
	}
	if page.ID == "" {
		page.ID = g.pageID
	}
	return page, nil
}

func (g *GraphImpl) GetPagePosts(ctx context.Context, limit int) ([]domain.Post, error) {
	var res struct {
		Data *[]domain.Post `json:"data"`
	}
	params := map[string]string{
		"fields": postFields,
		"limit":  fmt.Sprint(limit),
	}
	if err := g.get(ctx, "posts", g.pageID+"/posts", params, g.token, &res); err != nil {
		return nil, err
	}
	if res.Data == nil {
		return nil, errs.WrapWithCode(facebook.ErrMalformedResponse, errs.CodeGraphResponse, "posts response has no data")
	}

	g.logger.Info("Fetched page posts", "count", len(*res.Data), "limit", limit)
	return *res.Data, nil
}

func (g *GraphImpl) GetPostAttachments(ctx context.Context, postID string) ([]domain.Attachment, error) {
	var res struct {
		Data *[]domain.Attachment `json:"data"`
	}
	params := map[string]string{"fields": attachmentFields}
	if err := g.get(ctx, "attachments", postID+"/attachments", params, g.token, &res); err != nil {
		return nil, err
	}
	if res.Data == nil {
		return nil, errs.WrapWithCode(facebook.ErrMalformedResponse, errs.CodeGraphResponse, "attachments response has no data")
	}
	return *res.Data, nil
}

func (g *GraphImpl) ListAccounts(ctx context.Context, userToken string) ([]domain.Page, error) {
	var res struct {
		Data *[]domain.Page `json:"data"`
	}
	if err := g.get(ctx, "accounts", "me/accounts", nil, userToken, &res); err != nil {
		return nil, err
	}
	if res.Data == nil {
		return nil, errs.WrapWithCode(facebook.ErrMalformedResponse, errs.CodeGraphResponse, "accounts response has no data")
	}
	return *res.Data, nil
}

// get issues GET /{version}/{path} and decodes the JSON body into out.
// endpoint names the call in logs and selects the rate limit bucket.
func (g *GraphImpl) get(ctx context.Context, endpoint, path string, params map[string]string, token string, out any) error {
	if err := g.limiter.Wait(ctx, endpoint); err != nil {
		return errs.WrapWithCode(err, errs.CodeGraphRequest, "rate limiter wait for "+endpoint)
	}

	reqPath := "/" + g.version + "/" + path
	g.logger.Debug("Graph API request", "endpoint", endpoint, "path", reqPath)

	res, err := g.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("access_token", token).
		Get(reqPath)
	if err != nil {
		return errs.WrapWithCode(redactURL(err, reqPath), errs.CodeGraphRequest, "graph request "+endpoint)
	}

	g.logger.Debug("Graph API response", "endpoint", endpoint, "status", res.StatusCode())

	if res.IsError() {
		return errs.WrapWithCode(decodeAPIError(res), errs.CodeGraphResponse, "graph request "+endpoint)
	}

	if err := json.Unmarshal(res.Body(), out); err != nil {
		return errs.WrapWithCode(err, errs.CodeGraphResponse, "decode "+endpoint+" response")
	}
	return nil
}

// redactURL replaces the request URL in transport errors, which carries the
// access token in its query, with the bare path.
func redactURL(err error, path string) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}
	return &url.Error{Op: uerr.Op, URL: path, Err: uerr.Err}
}

func decodeAPIError(res *resty.Response) *facebook.APIError {
	var body struct {
		Error *facebook.APIError `json:"error"`
	}
	apiErr := &facebook.APIError{Message: http.StatusText(res.StatusCode())}
	if err := json.Unmarshal(res.Body(), &body); err == nil && body.Error != nil {
		apiErr = body.Error
	}
	apiErr.StatusCode = res.StatusCode()
	return apiErr
}
