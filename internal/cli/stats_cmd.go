package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/learner/internal/cli/formatter"
	"github.com/alexanderramin/learner/internal/domain"
)

func newStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Learning statistics",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "progress",
		Short: "Show totals, streak and quiz scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runStats(cmd.Context(), app, cmd.OutOrStdout())
			return err
		},
	})

	return cmd
}

func runStats(ctx context.Context, app *App, w io.Writer) (*domain.Stats, error) {
	u, err := requireUser(ctx, app)
	if err != nil {
		return nil, err
	}
	s, err := app.Stats.Progress(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(w, formatter.FormatStats(s, u.DailyGoalMinutes, time.Now()))
	return s, nil
}
