package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/learner/internal/cli/formatter"
	"github.com/alexanderramin/learner/internal/domain"
	"github.com/alexanderramin/learner/internal/service"
)

func newContentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Search and import learning content",
	}

	cmd.AddCommand(
		newContentSearchCmd(app),
		newContentImportCmd(app),
	)

	return cmd
}

func newContentSearchCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search titles, summaries and topics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runSearchContent(cmd.Context(), app, cmd.OutOrStdout(), strings.Join(args, " "), limit)
			return err
		},
	}

	cmd.Flags().IntVar(&limit, "limit", service.DefaultSearchLimit, "Maximum number of results")
	return cmd
}

func newContentImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import content items and quiz questions from a YAML catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Content.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res.ContentCount, res.QuestionCount))
			return nil
		},
	}
}

func runSearchContent(ctx context.Context, app *App, w io.Writer, query string, limit int) ([]*domain.ContentItem, error) {
	items, err := app.Content.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(w, formatter.FormatContentResults(query, items))
	return items, nil
}
