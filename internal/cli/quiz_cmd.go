package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/learner/internal/cli/formatter"
	"github.com/alexanderramin/learner/internal/domain"
	"github.com/alexanderramin/learner/internal/nlp"
)

func newQuizCmd(app *App) *cobra.Command {
	var topic string
	var count int

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Answer multiple-choice questions from the question bank",
		Example: `  learner quiz --topic "neural networks" --count 5
  learner quiz`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runQuiz(cmd.Context(), app, cmd.OutOrStdout(), topic, nlp.ValidateCount(count))
			return err
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Only ask questions on this topic")
	cmd.Flags().IntVar(&count, "count", nlp.DefaultCount,
		fmt.Sprintf("Number of questions (%d-%d)", nlp.MinCount, nlp.MaxCount))
	return cmd
}

// runQuiz asks up to count questions and records the attempt.
func runQuiz(ctx context.Context, app *App, w io.Writer, topic string, count int) (*domain.QuizAttempt, error) {
	u, err := requireUser(ctx, app)
	if err != nil {
		return nil, err
	}
	questions, err := app.Quiz.Questions(ctx, topic, count)
	if err != nil {
		return nil, err
	}
	if !app.interactive() {
		return nil, fmt.Errorf("quiz: %w", errNotInteractive)
	}

	answers := make([]int, len(questions))
	for i, q := range questions {
		title := fmt.Sprintf("Question %d of %d\n%s", i+1, len(questions), q.Prompt)
		choice, err := app.prompter().Select(ctx, title, q.Choices)
		if err != nil {
			return nil, err
		}
		answers[i] = choice
		fmt.Fprint(w, formatter.FormatAnswerFeedback(q, choice))
	}

	attempt, err := app.Quiz.Record(ctx, u.ID, topic, questions, answers)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(w, formatter.FormatQuizResult(attempt))
	return attempt, nil
}
