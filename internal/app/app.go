package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/orgball2608/fb-post-importer/internal/confirm"
	"github.com/orgball2608/fb-post-importer/internal/facebook"
	"github.com/orgball2608/fb-post-importer/internal/facebook/graphimpl"
	"github.com/orgball2608/fb-post-importer/internal/importer"
	"github.com/orgball2608/fb-post-importer/internal/importer/importerimpl"
	"github.com/orgball2608/fb-post-importer/internal/jekyll"
	"github.com/orgball2608/fb-post-importer/internal/locales"
	"github.com/orgball2608/fb-post-importer/internal/media"
	"github.com/orgball2608/fb-post-importer/internal/ratelimit"
	repositories "github.com/orgball2608/fb-post-importer/internal/repositories/fx"
	"github.com/orgball2608/fb-post-importer/internal/repositories/imports"
	"github.com/orgball2608/fb-post-importer/internal/telegram/telegramimpl"
	"github.com/orgball2608/fb-post-importer/pkg/config"
	"github.com/orgball2608/fb-post-importer/pkg/logger"
	"go.uber.org/fx"
)

var ErrLedgerDisabled = errors.New("import ledger is disabled, set POSTGRES_HOST")

// Graph provides a facebook.Client and what it needs.
var Graph = fx.Options(
	fx.Provide(
		logger.FxOption,
		newLimiter,
		fx.Annotate(
			graphimpl.New,
			fx.As(new(facebook.Client)),
		),
	),
)

// Module provides the importer with all of its collaborators.
var Module = fx.Options(
	Graph,
	fx.Provide(
		newExtractor,
		newComposer,
		telegramimpl.New,
		fx.Annotate(
			importerimpl.New,
			fx.As(new(importer.Client)),
		),
	),
	repositories.Module,
)

func newLimiter(cfg *config.Config) ratelimit.Limiter {
	return ratelimit.PerSecond(cfg.Facebook.RequestsPerSecond)
}

func newExtractor(fb facebook.Client, log logger.Logger) *media.Extractor {
	return media.NewExtractor(fb, log)
}

func newComposer(cfg *config.Config) (*jekyll.Composer, error) {
	var loc *time.Location
	if cfg.Importer.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(cfg.Importer.Timezone)
		if err != nil {
			return nil, fmt.Errorf("load timezone %q: %w", cfg.Importer.Timezone, err)
		}
	}

	return jekyll.NewComposer(jekyll.Options{
		Layout:       cfg.Importer.Layout,
		Category:     cfg.Importer.Category,
		DefaultCover: cfg.Importer.DefaultCover,
		FileSuffix:   cfg.Importer.FileSuffix,
		FileExt:      cfg.Importer.FileExt,
		Location:     loc,
		Translator:   locales.New(cfg.LanguageTags()...),
	}), nil
}

// Options returns the application graph for one import run.
func Options(cfg *config.Config, policy confirm.Policy, printer fx.Printer) fx.Option {
	return fx.Options(
		fx.Logger(printer),
		fx.Supply(cfg),
		fx.Provide(func() confirm.Policy { return policy }),
		Module,
	)
}

// Run starts the graph, performs a single import and stops the graph again.
func Run(ctx context.Context, cfg *config.Config, policy confirm.Policy, printer fx.Printer) (importer.Summary, error) {
	var client importer.Client

	var summary importer.Summary
	err := withApp(ctx, fx.Options(Options(cfg, policy, printer), fx.Populate(&client)), func() error {
		var err error
		summary, err = client.Run(ctx)
		return err
	})
	return summary, err
}

// WithFacebook starts only the Graph API part of the application and hands
// the client to fn.
func WithFacebook(ctx context.Context, cfg *config.Config, printer fx.Printer, fn func(facebook.Client) error) error {
	var client facebook.Client

	opts := fx.Options(
		fx.Logger(printer),
		fx.Supply(cfg),
		Graph,
		fx.Populate(&client),
	)
	return withApp(ctx, opts, func() error { return fn(client) })
}

// WithLedger starts the import ledger and hands it to fn. It fails when no
// database is configured.
func WithLedger(ctx context.Context, cfg *config.Config, printer fx.Printer, fn func(imports.Repository) error) error {
	if !cfg.LedgerEnabled() {
		return ErrLedgerDisabled
	}

	var repo imports.Repository
	opts := fx.Options(
		fx.Logger(printer),
		fx.Supply(cfg),
		fx.Provide(logger.FxOption),
		repositories.Module,
		fx.Populate(&repo),
	)
	return withApp(ctx, opts, func() error { return fn(repo) })
}

func withApp(ctx context.Context, opts fx.Option, fn func() error) (err error) {
	application := fx.New(opts)
	if err := application.Err(); err != nil {
		return err
	}

	if err := application.Start(ctx); err != nil {
		return fmt.Errorf("start application: %w", err)
	}

	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), application.StopTimeout())
		defer cancel()
		if stopErr := application.Stop(stopCtx); stopErr != nil && err == nil {
			err = fmt.Errorf("stop application: %w", stopErr)
		}
	}()

	return fn()
}
