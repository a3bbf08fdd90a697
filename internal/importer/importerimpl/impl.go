package importerimpl

import (
	"github.com/orgball2608/fb-post-importer/internal/confirm"
	"github.com/orgball2608/fb-post-importer/internal/facebook"
	"github.com/orgball2608/fb-post-importer/internal/importer"
	"github.com/orgball2608/fb-post-importer/internal/jekyll"
	"github.com/orgball2608/fb-post-importer/internal/media"
	"github.com/orgball2608/fb-post-importer/internal/repositories/imports"
	"github.com/orgball2608/fb-post-importer/internal/telegram"
	"github.com/orgball2608/fb-post-importer/pkg/config"
	"github.com/orgball2608/fb-post-importer/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config    *config.Config
	Logger    logger.Logger
	Facebook  facebook.Client
	Extractor *media.Extractor
	Composer  *jekyll.Composer
	Policy    confirm.Policy
	Ledger    imports.Repository
	Notifier  telegram.Client
}

type ImporterImpl struct {
	cfg       *config.Config
	logger    logger.Logger
	fb        facebook.Client
	extractor *media.Extractor
	composer  *jekyll.Composer
	policy    confirm.Policy
	ledger    imports.Repository
	notifier  telegram.Client
}

func New(opts Opts) *ImporterImpl {
	ledger := opts.Ledger
	if ledger == nil {
		ledger = imports.Noop{}
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = telegram.Noop{}
	}
	policy := opts.Policy
	if policy == nil {
		policy = confirm.AlwaysAbort
	}

	return &ImporterImpl{
		cfg:       opts.Config,
		logger:    opts.Logger.WithComponent("Importer"),
		fb:        opts.Facebook,
		extractor: opts.Extractor,
		composer:  opts.Composer,
		policy:    policy,
		ledger:    ledger,
		notifier:  notifier,
	}
}

var _ importer.Client = (*ImporterImpl)(nil)
