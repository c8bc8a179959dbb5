package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/learner/internal/cli/formatter"
	"github.com/alexanderramin/learner/internal/domain"
)

const feedbackWidth = 80

func newExplainCmd(app *App) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "explain TOPIC",
		Short: "Practice the Feynman technique: explain a topic in plain words",
		Example: `  learner explain recursion
  learner explain "gradient descent" --text "It is like walking downhill..."`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := strings.TrimSpace(strings.Join(args, " "))
			_, err := runExplain(cmd.Context(), app, cmd.OutOrStdout(), topic, text)
			return err
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Your explanation; prompted for when omitted")
	return cmd
}

// runExplain collects an explanation of topic, scores it and prints the
// feedback.
func runExplain(ctx context.Context, app *App, w io.Writer, topic, text string) (*domain.Explanation, error) {
	u, err := requireUser(ctx, app)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		if !app.interactive() {
			return nil, fmt.Errorf("explain: pass --text or %w", errNotInteractive)
		}
		text, err = app.prompter().Text(ctx, app.Explain.Prompt(topic),
			"Short sentences and one concrete example work best.")
		if err != nil {
			return nil, err
		}
	}

	var e *domain.Explanation
	evaluate := func(ctx context.Context) error {
		var err error
		e, err = app.Explain.Evaluate(ctx, u.ID, topic, text)
		return err
	}
	if app.interactive() {
		err = formatter.RunWithSpinner(ctx, w, "Reviewing your explanation...", evaluate)
	} else {
		err = evaluate(ctx)
	}
	if err != nil {
		return nil, err
	}

	fmt.Fprint(w, formatter.RenderFeedback(e, feedbackWidth))
	return e, nil
}
