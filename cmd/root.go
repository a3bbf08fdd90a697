package main

import (
	"errors"
	"fmt"

	"github.com/orgball2608/fb-post-importer/internal/app"
	"github.com/orgball2608/fb-post-importer/internal/confirm"
	"github.com/orgball2608/fb-post-importer/internal/importer"
	"github.com/orgball2608/fb-post-importer/pkg/config"
	errs "github.com/orgball2608/fb-post-importer/pkg/errors"
	"github.com/orgball2608/fb-post-importer/pkg/logger"
	"github.com/spf13/cobra"
)

const defaultCount = 5

var rootFlags struct {
	token      string
	page       string
	output     string
	number     int
	debug      bool
	tokenCheck string
}

var rootCmd = &cobra.Command{
	Use:           "fb-import",
	Short:         "fb-import downloads the latest posts of a Facebook page as Jekyll posts.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runImport,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&rootFlags.token, "token", "t", "", "page access token (FACEBOOK_TOKEN)")
	f.StringVarP(&rootFlags.page, "page", "p", "", "page id (FACEBOOK_PAGE_ID)")
	f.StringVarP(&rootFlags.output, "output", "o", "", "output directory (IMPORTER_OUTPUT_DIR)")
	f.IntVarP(&rootFlags.number, "number", "n", 0, "number of posts to import (IMPORTER_COUNT)")
	f.BoolVarP(&rootFlags.debug, "debug", "d", false, "verbose logging")
	f.StringVar(&rootFlags.tokenCheck, "token-check", "", "what to do when the token check fails: prompt, continue or abort")
}

// loadConfig reads the environment and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("token") {
		cfg.Facebook.Token = rootFlags.token
	}
	if flags.Changed("page") {
		cfg.Facebook.PageID = rootFlags.page
	}
	if flags.Changed("output") {
		cfg.Importer.OutputDir = rootFlags.output
	}
	if flags.Changed("number") {
		cfg.Importer.Count = rootFlags.number
	}
	if flags.Changed("debug") {
		cfg.Importer.Debug = rootFlags.debug
	}
	if flags.Changed("token-check") {
		cfg.Importer.TokenCheck = rootFlags.tokenCheck
	}
	return cfg, nil
}

func bootstrapLogger(cfg *config.Config) *logger.Impl {
	return logger.New(logger.Opts{Env: cfg.App.Env, Debug: cfg.Importer.Debug || cfg.IsDevelopment()})
}

func runImport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	prompter := confirm.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

	if cfg.Importer.Count <= 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "== Facebook post importer ==")
		cfg.Importer.Count, err = prompter.AskCount("How many posts should be downloaded?", defaultCount)
		if err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	policy := confirm.FromConfig(cfg.Importer.TokenCheck, prompter)
	summary, err := app.Run(cmd.Context(), cfg, policy, bootstrapLogger(cfg))

	if len(summary.Results) > 0 {
		renderSummary(cmd.OutOrStdout(), summary)
	}

	switch {
	case err == nil:
		fmt.Fprintf(cmd.OutOrStdout(), "\nDone. Posts: %s\n", summary.OutDir)
		return nil
	case errors.Is(err, importer.ErrNothingToImport):
		return fmt.Errorf("failed to download posts: %w", err)
	case errs.IsAborted(err):
		return errors.New("import aborted")
	default:
		return err
	}
}
