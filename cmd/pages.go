package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/orgball2608/fb-post-importer/internal/app"
	"github.com/orgball2608/fb-post-importer/internal/confirm"
	"github.com/orgball2608/fb-post-importer/internal/domain"
	"github.com/orgball2608/fb-post-importer/internal/facebook"
	"github.com/orgball2608/fb-post-importer/pkg/config"
	"github.com/spf13/cobra"
)

var pagesUserToken string

func init() {
	pagesCmd.Flags().StringVarP(&pagesUserToken, "token", "t", "", "user access token")
	_ = pagesCmd.MarkFlagRequired("token")
	rootCmd.AddCommand(pagesCmd)
}

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Exchanges a user access token for the page access token of one of the user's pages.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		prompter := confirm.NewPrompter(cmd.InOrStdin(), out)

		return app.WithFacebook(cmd.Context(), cfg, bootstrapLogger(cfg), func(fb facebook.Client) error {
			page, err := selectPage(cmd.Context(), fb, prompter, out)
			if err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintf(out, "Page name: %s\n", page.Name)
			fmt.Fprintf(out, "Page ID: %s\n", page.ID)
			fmt.Fprintf(out, "Page access token: %s\n", page.AccessToken)
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Usage: fb-import -t %q -p %q -n %d\n", page.AccessToken, page.ID, defaultCount)
			return nil
		})
	},
}

func selectPage(ctx context.Context, fb facebook.Client, prompter *confirm.Prompter, out io.Writer) (domain.Page, error) {
	pages, err := fb.ListAccounts(ctx, pagesUserToken)
	if err != nil {
		return domain.Page{}, fmt.Errorf("list pages: %w", err)
	}
	if len(pages) == 0 {
		return domain.Page{}, errors.New("no pages found for this user")
	}

	renderPages(out, pages)

	if len(pages) == 1 {
		fmt.Fprintf(out, "Selected automatically: %s\n", pages[0].Name)
		return pages[0], nil
	}

	choice, err := prompter.AskChoice("Which page should be used?", len(pages))
	if err != nil {
		return domain.Page{}, err
	}
	return pages[choice-1], nil
}
