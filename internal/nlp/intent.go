package nlp

import (
	"context"
	"maps"

	"github.com/alexanderramin/learner/internal/domain"
)

// Command identifiers. The registry holds exactly these ten.
const (
	CmdLearnStart    = "learn.start"
	CmdLearnStatus   = "learn.status"
	CmdLearnEnd      = "learn.end"
	CmdQuizStart     = "quiz.start"
	CmdExplainStart  = "explain.start"
	CmdStatsShow     = "stats.show"
	CmdProfileShow   = "profile.show"
	CmdContentSearch = "content.search"
	CmdAuthLogout    = "auth.logout"
	CmdAuthWhoami    = "auth.whoami"

	// IntentUnknown is what the classifier returns when nothing matches.
	IntentUnknown = "unknown"
)

// Result summarises what an executed command did.
type Result struct {
	Message string
	Data    map[string]any
}

// Actions are the application operations commands are bound to. Each
// method receives only values that already passed validation.
type Actions interface {
	StartSession(ctx context.Context, minutes int, sessionType domain.SessionType) (Result, error)
	SessionStatus(ctx context.Context) (Result, error)
	EndSession(ctx context.Context) (Result, error)
	StartQuiz(ctx context.Context, topic string, count int) (Result, error)
	StartExplanation(ctx context.Context, topic string) (Result, error)
	ShowStats(ctx context.Context) (Result, error)
	ShowProfile(ctx context.Context) (Result, error)
	SearchContent(ctx context.Context, query string) (Result, error)
	Logout(ctx context.Context) (Result, error)
	WhoAmI(ctx context.Context) (Result, error)
}

// CommandIntent is a parsed command ready to run. It is built by the
// registry and cannot be changed afterwards.
type CommandIntent struct {
	command           string
	description       string
	signature         string
	params            map[string]any
	confidence        float64
	destructive       bool
	needsConfirmation bool
	execute           func(ctx context.Context) (Result, error)
}

func (i *CommandIntent) Command() string     { return i.command }
func (i *CommandIntent) Description() string { return i.description }

// Signature is the explicit learner invocation equivalent to this intent.
func (i *CommandIntent) Signature() string       { return i.signature }
func (i *CommandIntent) Confidence() float64     { return i.confidence }
func (i *CommandIntent) Destructive() bool       { return i.destructive }
func (i *CommandIntent) NeedsConfirmation() bool { return i.needsConfirmation }

// Params returns a copy of the validated parameters.
func (i *CommandIntent) Params() map[string]any {
	return maps.Clone(i.params)
}

// Execute runs the bound operation. Callers normally go through Gate.Run,
// which handles confirmation and failures.
func (i *CommandIntent) Execute(ctx context.Context) (Result, error) {
	return i.execute(ctx)
}
