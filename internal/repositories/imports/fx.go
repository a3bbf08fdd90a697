package imports

import (
	"context"
	"fmt"

	"github.com/orgball2608/fb-post-importer/internal/migrations"
	"github.com/orgball2608/fb-post-importer/pkg/config"
	"github.com/orgball2608/fb-post-importer/pkg/logger"
	"github.com/orgball2608/fb-post-importer/pkg/pgx"
	"go.uber.org/fx"
)

var Module = fx.Module("import_ledger",
	fx.Provide(New),
)

type Opts struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config
	Logger logger.Logger
}

// New returns the Postgres ledger when a database is configured and Noop
// otherwise. Pending migrations are applied on start.
func New(opts Opts) (Repository, error) {
	if !opts.Config.LedgerEnabled() {
		opts.Logger.Debug("Import ledger disabled, no postgres host configured")
		return Noop{}, nil
	}

	pool, err := pgx.New(pgx.Opts{LC: opts.LC, Logger: opts.Logger, Config: opts.Config})
	if err != nil {
		return nil, err
	}

	opts.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			results, err := migrations.Up(ctx, opts.Config.GetDSN())
			if err != nil {
				return fmt.Errorf("migrate import ledger: %w", err)
			}
			opts.Logger.Debug("Import ledger migrated", "applied", len(results))
			return nil
		},
	})

	return NewPgx(pool, opts.Logger), nil
}
