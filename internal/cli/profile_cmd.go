package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/learner/internal/cli/formatter"
	"github.com/alexanderramin/learner/internal/domain"
	"github.com/alexanderramin/learner/internal/service"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and change profile settings",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show your profile",
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := runShowProfile(cmd.Context(), app, cmd.OutOrStdout())
				return err
			},
		},
		newProfileEditCmd(app),
	)

	return cmd
}

func newProfileEditCmd(app *App) *cobra.Command {
	var name string
	var goal int
	sessionType := newSessionTypeFlag(domain.DefaultSessionType)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Change display name, daily goal or preferred session type",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			u, err := requireUser(ctx, app)
			if err != nil {
				return err
			}

			var req service.ProfileUpdate
			flags := cmd.Flags()
			if flags.Changed("name") {
				req.DisplayName = &name
			}
			if flags.Changed("goal") {
				req.DailyGoalMinutes = &goal
			}
			if flags.Changed("type") {
				st := sessionType.Value()
				req.PreferredType = &st
			}
			if req == (service.ProfileUpdate{}) {
				return fmt.Errorf("nothing to update: pass --name, --goal or --type")
			}

			updated, err := app.Profile.Update(ctx, u.ID, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(updated))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().IntVar(&goal, "goal", 0, "Daily goal in minutes")
	cmd.Flags().Var(sessionType, "type", "Preferred session type: regular, drill or catchup")
	return cmd
}

func runShowProfile(ctx context.Context, app *App, w io.Writer) (*domain.User, error) {
	u, err := requireUser(ctx, app)
	if err != nil {
		return nil, err
	}
	p, err := app.Profile.Get(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(w, formatter.FormatProfile(p))
	return p, nil
}
