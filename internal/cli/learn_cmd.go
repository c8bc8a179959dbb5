package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/learner/internal/cli/formatter"
	"github.com/alexanderramin/learner/internal/domain"
	"github.com/alexanderramin/learner/internal/nlp"
	"github.com/alexanderramin/learner/internal/service"
)

func newLearnCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "learn",
		Short: "Run timed learning sessions",
	}

	cmd.AddCommand(
		newLearnStartCmd(app),
		newLearnStatusCmd(app),
		newLearnEndCmd(app),
		newLearnAbandonCmd(app),
		newLearnHistoryCmd(app),
	)

	return cmd
}

func newLearnStartCmd(app *App) *cobra.Command {
	var minutes int
	sessionType := newSessionTypeFlag(domain.DefaultSessionType)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a learning session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st := sessionType.Value()
			if !cmd.Flags().Changed("type") {
				u, err := requireUser(ctx, app)
				if err != nil {
					return err
				}
				if u.PreferredSessionType != "" {
					st = u.PreferredSessionType
				}
			}
			_, err := runStartSession(ctx, app, cmd.OutOrStdout(), minutes, st)
			return err
		},
	}

	cmd.Flags().IntVar(&minutes, "time", nlp.DefaultMinutes,
		fmt.Sprintf("Session length in minutes (%d-%d)", nlp.MinMinutes, nlp.MaxMinutes))
	cmd.Flags().Var(sessionType, "type", "Session type: regular, drill or catchup (default: your profile preference)")
	return cmd
}

func newLearnStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runSessionStatus(cmd.Context(), app, cmd.OutOrStdout())
			return err
		},
	}
}

func newLearnEndCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "Complete the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runEndSession(cmd.Context(), app, cmd.OutOrStdout())
			return err
		},
	}
}

func newLearnAbandonCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "abandon",
		Short: "Drop the active session without recording time",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			u, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			s, err := app.Learn.Abandon(ctx, u.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionEnded(s))
			return nil
		},
	}
}

func newLearnHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			u, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			sessions, err := app.Learn.History(ctx, u.ID, limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionHistory(sessions, time.Now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of sessions to show")
	return cmd
}

func runStartSession(ctx context.Context, app *App, w io.Writer, minutes int, st domain.SessionType) (*domain.LearningSession, error) {
	u, err := requireUser(ctx, app)
	if err != nil {
		return nil, err
	}
	s, err := app.Learn.Start(ctx, u.ID, minutes, st)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(w, formatter.FormatSessionStarted(s))
	return s, nil
}

// runSessionStatus prints the active session. With no active session it
// prints a hint and returns nil, nil.
func runSessionStatus(ctx context.Context, app *App, w io.Writer) (*service.SessionStatus, error) {
	u, err := requireUser(ctx, app)
	if err != nil {
		return nil, err
	}
	st, err := app.Learn.Status(ctx, u.ID)
	if errors.Is(err, service.ErrNoActiveSession) {
		fmt.Fprintln(w, formatter.Dim("No active session. Start one with 'learner learn start'."))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(w, formatter.FormatSessionStatus(st.Session, st.Elapsed, st.Remaining, st.Overtime))
	return st, nil
}

func runEndSession(ctx context.Context, app *App, w io.Writer) (*domain.LearningSession, error) {
	u, err := requireUser(ctx, app)
	if err != nil {
		return nil, err
	}
	s, err := app.Learn.End(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(w, formatter.FormatSessionEnded(s))
	return s, nil
}
