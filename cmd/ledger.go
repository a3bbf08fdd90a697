package main

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/orgball2608/fb-post-importer/internal/app"
	"github.com/orgball2608/fb-post-importer/internal/domain"
	"github.com/orgball2608/fb-post-importer/internal/repositories/imports"
	"github.com/orgball2608/fb-post-importer/pkg/config"
	"github.com/orgball2608/fb-post-importer/pkg/formatter"
	"github.com/spf13/cobra"
)

var ledgerFlags struct {
	page      string
	count     int
	olderThan time.Duration
}

func init() {
	recent := ledgerRecentCmd.Flags()
	recent.StringVarP(&ledgerFlags.page, "page", "p", "", "page id (FACEBOOK_PAGE_ID)")
	recent.IntVarP(&ledgerFlags.count, "number", "n", 20, "number of entries to show")

	ledgerPruneCmd.Flags().DurationVar(&ledgerFlags.olderThan, "older-than", 90*24*time.Hour, "delete entries older than this")

	ledgerCmd.AddCommand(ledgerRecentCmd, ledgerPruneCmd)
	rootCmd.AddCommand(ledgerCmd)
}

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Inspects the import ledger kept in Postgres.",
}

var ledgerRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Lists the latest imports of a page.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("page") {
			cfg.Facebook.PageID = ledgerFlags.page
		}
		if cfg.Facebook.PageID == "" {
			return fmt.Errorf("page id is required")
		}

		return app.WithLedger(cmd.Context(), cfg, bootstrapLogger(cfg), func(repo imports.Repository) error {
			entries, err := repo.ListRecent(cmd.Context(), cfg.Facebook.PageID, ledgerFlags.count)
			if err != nil {
				return fmt.Errorf("list imports: %w", err)
			}
			renderLedger(cmd.OutOrStdout(), entries)
			return nil
		})
	},
}

var ledgerPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Deletes ledger entries older than --older-than.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		if ledgerFlags.olderThan <= 0 {
			return fmt.Errorf("--older-than must be positive")
		}

		return app.WithLedger(cmd.Context(), cfg, bootstrapLogger(cfg), func(repo imports.Repository) error {
			n, err := repo.CleanupOldRecords(cmd.Context(), ledgerFlags.olderThan)
			if err != nil {
				return fmt.Errorf("prune imports: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s entries\n", formatter.FormatNumber(int(n)))
			return nil
		})
	},
}

func renderLedger(w io.Writer, entries []*domain.ImportedPost) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Imported at", "Post", "File", "Images"})
	for _, e := range entries {
		t.AppendRow(table.Row{formatter.DisplayDate(e.ImportedAt.Local()), e.PostID, e.FileName, e.ImageCount})
	}
	t.AppendFooter(table.Row{"", "", "entries", formatter.FormatNumber(len(entries))})
	t.Render()
}
