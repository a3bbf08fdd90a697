package migrations

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

// All returns the ledger schema migrations in version order.
func All() []*goose.Migration {
	return []*goose.Migration{
		goose.NewGoMigration(20250314100000,
			&goose.GoFunc{RunTx: upImportedPosts},
			&goose.GoFunc{RunTx: downImportedPosts},
		),
		goose.NewGoMigration(20250320090000,
			&goose.GoFunc{RunTx: upImportedPostsPageIndex},
			&goose.GoFunc{RunTx: downImportedPostsPageIndex},
		),
	}
}

// NewProvider opens dsn with lib/pq and returns a goose provider for All.
// The caller closes the returned DB.
func NewProvider(dsn string) (*goose.Provider, *sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, nil,
		goose.WithGoMigrations(All()...),
		goose.WithDisableGlobalRegistry(true),
	)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("create migration provider: %w", err)
	}
	return provider, db, nil
}

// Up applies all pending migrations.
func Up(ctx context.Context, dsn string) ([]*goose.MigrationResult, error) {
	provider, db, err := NewProvider(dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return provider.Up(ctx)
}
