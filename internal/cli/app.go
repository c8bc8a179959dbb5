package cli

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/alexanderramin/learner/internal/domain"
	"github.com/alexanderramin/learner/internal/llm"
	"github.com/alexanderramin/learner/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Auth    service.AuthService
	Learn   service.LearnService
	Quiz    service.QuizService
	Explain service.ExplainService
	Stats   service.StatsService
	Profile service.ProfileService
	Content service.ContentService

	// LLM backs natural-language commands. Nil when the language service
	// is disabled.
	LLM llm.LLMClient
	// NLPEnabled is the feature flag for 'learner chat ask'.
	NLPEnabled bool

	Logger *zap.Logger

	// IsInteractive reports whether stdin is a terminal. Prompts, spinners
	// and confirmations only run when it returns true.
	IsInteractive func() bool
	// Prompter asks the user questions; defaults to huh forms.
	Prompter Prompter
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) prompter() Prompter {
	if a.Prompter == nil {
		return huhPrompter{}
	}
	return a.Prompter
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// errNotInteractive is returned by commands that must ask the user
// something when stdin is not a terminal.
var errNotInteractive = errors.New("this command needs an interactive terminal")

// requireUser returns the logged-in user or an error telling the user how
// to log in.
func requireUser(ctx context.Context, app *App) (*domain.User, error) {
	u, err := app.Auth.CurrentUser(ctx)
	if errors.Is(err, service.ErrNotAuthenticated) {
		return nil, fmt.Errorf("%w: run 'learner auth login' first", err)
	}
	return u, err
}
