package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexanderramin/learner/internal/cli/formatter"
	"github.com/alexanderramin/learner/internal/logging"
	"github.com/alexanderramin/learner/internal/nlp"
)

// ErrReported marks a failure that was already printed to the user. The
// caller should exit non-zero without printing it again.
var ErrReported = errors.New("error already reported")

const processingPreview = 50

func newChatCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Run commands written in plain English",
	}

	cmd.AddCommand(
		newChatAskCmd(app),
		newChatExamplesCmd(),
		newChatIntentsCmd(app),
	)

	return cmd
}

func newChatAskCmd(app *App) *cobra.Command {
	var noConfirm, force bool

	cmd := &cobra.Command{
		Use:   "ask MESSAGE",
		Short: "Understand a plain-English request and run the matching command",
		Example: `  learner chat ask "start a 30 minute session"
  learner chat ask "show my progress"
  learner chat ask "quiz me on transformers"
  learner chat ask "end my session"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !app.NLPEnabled || app.LLM == nil {
				fmt.Fprint(out, nlpDisabledMessage())
				return ErrReported
			}
			return runChatAsk(cmd.Context(), app, cmd, strings.Join(args, " "), noConfirm || force)
		},
	}

	cmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "Skip confirmation for non-destructive commands")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Same as --no-confirm; destructive commands still ask")
	return cmd
}

func runChatAsk(ctx context.Context, app *App, cmd *cobra.Command, message string, skipConfirm bool) error {
	out := cmd.OutOrStdout()
	logger := app.logger()
	parser := nlp.NewParser(app.LLM, newChatActions(app, out), logger)

	preview := logging.Prefix(message, processingPreview)
	if preview != message {
		preview += "..."
	}
	fmt.Fprintln(out, formatter.Dim("Processing: "+preview))
	fmt.Fprintln(out)

	authenticated := app.Auth.IsAuthenticated(ctx)
	var intent *nlp.CommandIntent
	parse := func(ctx context.Context) error {
		var err error
		intent, err = parser.ParseCommand(ctx, message, authenticated)
		return err
	}

	var err error
	if app.interactive() {
		err = formatter.RunWithSpinner(ctx, cmd.ErrOrStderr(), "Understanding your request...", parse)
	} else {
		err = parse(ctx)
	}
	if err != nil {
		fmt.Fprint(out, chatErrorMessage(parser, err))
		return ErrReported
	}

	fmt.Fprint(out, formatter.FormatIntentPreview(intent))

	gate := nlp.NewGate(chatConfirmer(app, out))
	outcome := gate.Run(ctx, intent, nlp.RunOptions{SkipConfirmation: skipConfirm})
	logger.Debug("chat command finished",
		zap.String("command", intent.Command()),
		zap.String("state", string(outcome.State)),
		zap.Int("steps", len(outcome.Trace)))

	switch outcome.State {
	case nlp.StateCancelled:
		if outcome.Err != nil {
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatChatError("Cancelled", outcome.Err.Error(), ""))
			return ErrReported
		}
		fmt.Fprintln(out, formatter.Dim("Cancelled."))
		return nil
	case nlp.StateFailed:
		fmt.Fprintln(out)
		fmt.Fprint(out, formatter.FormatChatError("Command failed", outcome.Err.Error(), ""))
		return ErrReported
	default:
		fmt.Fprint(out, formatter.FormatChatResult(outcome.Result))
		return nil
	}
}

// chatConfirmer asks before running an intent. Without a terminal it
// declines, so nothing that needs confirmation runs unattended.
func chatConfirmer(app *App, w io.Writer) nlp.Confirmer {
	if !app.interactive() {
		return nlp.ConfirmFunc(func(context.Context, *nlp.CommandIntent) (bool, error) {
			fmt.Fprintln(w, formatter.Dim("This command needs confirmation, which requires an interactive terminal."))
			return false, nil
		})
	}
	return nlp.ConfirmFunc(func(ctx context.Context, intent *nlp.CommandIntent) (bool, error) {
		fmt.Fprintln(w)
		if intent.Destructive() {
			fmt.Fprint(w, formatter.DestructiveWarning())
		}
		ok, err := app.prompter().Confirm(ctx, "Execute this command?", intent.Signature())
		if errors.Is(err, errPromptAborted) {
			return false, nil
		}
		return ok, err
	})
}

func chatErrorMessage(parser *nlp.Parser, err error) string {
	var label string
	switch nlp.KindOf(err) {
	case nlp.KindValidation:
		label = "Invalid input"
	case nlp.KindParse:
		label = "I didn't understand that"
	case nlp.KindNotFound:
		label = "Unknown command"
	default:
		return formatter.FormatChatError("Error", err.Error(), "")
	}

	hint := nlp.HintOf(err)
	if hint == "" {
		hint = parser.Suggestion()
	}
	return formatter.FormatChatError(label, err.Error(), hint)
}

func nlpDisabledMessage() string {
	return formatter.StyleYellow.Render("NLP commands are not enabled.") + "\n\n" +
		"To enable, set the environment variables:\n" +
		"  " + formatter.StyleBlue.Render("FF_ENABLE_NLP_COMMANDS=true") + "\n" +
		"  " + formatter.StyleBlue.Render("LEARNER_LLM_ENABLED=true") + "\n\n" +
		"Or use the standard CLI commands:\n" +
		"  " + formatter.Dim("learner --help") + "\n"
}

func newChatExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Show example phrases",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatExamples())
		},
	}
}

func newChatIntentsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "intents",
		Short: "List every command natural language can map to",
		Run: func(cmd *cobra.Command, args []string) {
			// Listing needs no language service; the registry is static.
			parser := nlp.NewParser(app.LLM, newChatActions(app, cmd.OutOrStdout()), app.logger())
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatIntents(parser.Commands()))
		},
	}
}
