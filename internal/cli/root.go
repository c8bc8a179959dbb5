package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "learner" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "learner",
		Short:         "Learning sessions, quizzes and Feynman practice from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAuthCmd(app),
		newLearnCmd(app),
		newQuizCmd(app),
		newExplainCmd(app),
		newStatsCmd(app),
		newProfileCmd(app),
		newContentCmd(app),
		newChatCmd(app),
	)

	return root
}
