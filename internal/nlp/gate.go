package nlp

import (
	"context"
	"fmt"
)

// State is a step in the confirm-and-run cycle of one intent.
type State string

const (
	StateParsed                  State = "parsed"
	StateConfirmationRequired    State = "confirmation_required"
	StateConfirmationNotRequired State = "confirmation_not_required"
	StateExecuting               State = "executing"
	StateCompleted               State = "completed"
	StateFailed                  State = "failed"
	StateCancelled               State = "cancelled"
)

// Confirmer asks the user whether an intent may run.
type Confirmer interface {
	Confirm(ctx context.Context, intent *CommandIntent) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, intent *CommandIntent) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, intent *CommandIntent) (bool, error) {
	return f(ctx, intent)
}

// AlwaysConfirm approves everything. Use only in tests and scripted runs.
type AlwaysConfirm struct{}

func (AlwaysConfirm) Confirm(context.Context, *CommandIntent) (bool, error) { return true, nil }

// AlwaysDeny declines everything; non-interactive sessions use it.
type AlwaysDeny struct{}

func (AlwaysDeny) Confirm(context.Context, *CommandIntent) (bool, error) { return false, nil }

// RunOptions adjusts a single Gate.Run call.
type RunOptions struct {
	// SkipConfirmation skips the prompt for non-destructive intents.
	// Destructive intents are always confirmed.
	SkipConfirmation bool
}

// Outcome reports how a run ended. Err is set only in StateFailed.
type Outcome struct {
	State  State
	Result Result
	Err    error
	Trace  []State
}

// Gate confirms intents that need it and runs them exactly once.
type Gate struct {
	confirmer Confirmer
}

func NewGate(confirmer Confirmer) *Gate {
	if confirmer == nil {
		confirmer = AlwaysDeny{}
	}
	return &Gate{confirmer: confirmer}
}

// Run executes intent, asking first when it needs confirmation. Errors and
// panics from the bound action end in StateFailed with a KindExecution error.
// A confirmer error cancels the run and is kept in Outcome.Err.
func (g *Gate) Run(ctx context.Context, intent *CommandIntent, opts RunOptions) Outcome {
	out := Outcome{State: StateParsed}
	out.Trace = append(out.Trace, StateParsed)
	move := func(s State) {
		out.State = s
		out.Trace = append(out.Trace, s)
	}

	mustConfirm := intent.Destructive() || (intent.NeedsConfirmation() && !opts.SkipConfirmation)
	if mustConfirm {
		move(StateConfirmationRequired)
		ok, err := g.confirmer.Confirm(ctx, intent)
		if err != nil {
			move(StateCancelled)
			out.Err = fmt.Errorf("confirmation failed: %w", err)
			return out
		}
		if !ok {
			move(StateCancelled)
			return out
		}
	} else {
		move(StateConfirmationNotRequired)
	}

	move(StateExecuting)
	res, err := safeExecute(ctx, intent)
	if err != nil {
		move(StateFailed)
		out.Err = &Error{Kind: KindExecution, Reason: err.Error(), Err: err}
		return out
	}
	out.Result = res
	move(StateCompleted)
	return out
}

func safeExecute(ctx context.Context, intent *CommandIntent) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s panicked: %v", intent.Command(), r)
		}
	}()
	return intent.Execute(ctx)
}
