// Package nlp turns free-form learner commands into one of a fixed set of
// CLI actions. Input is sanitized before it reaches the language service,
// and the service's answer only ever selects a prebuilt command.
package nlp

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/alexanderramin/learner/internal/llm"
	"github.com/alexanderramin/learner/internal/logging"
)

const (
	logInputPrefix     = 50
	blockedInputPrefix = 20
)

// Parser runs sanitize, classify and dispatch for one command at a time.
// It keeps no per-request state and may be shared.
type Parser struct {
	classifier *Classifier
	registry   *Registry
	logger     *zap.Logger
}

// NewParser wires a parser to a language client and the actions commands run.
// A nil logger disables logging.
func NewParser(client llm.LLMClient, actions Actions, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{
		classifier: NewClassifier(client),
		registry:   newRegistry(actions),
		logger:     logger.Named("nlp"),
	}
}

// ParseCommand returns the intent for input. Validation and parse failures
// return before anything is executed.
func (p *Parser) ParseCommand(ctx context.Context, input string, authenticated bool) (*CommandIntent, error) {
	text, err := Sanitize(input)
	if err != nil {
		var e *Error
		if errors.As(err, &e) && e.Pattern != "" {
			p.logger.Warn("blocked input pattern",
				zap.String("pattern", e.Pattern),
				zap.String("input_prefix", logging.Prefix(input, blockedInputPrefix)))
		}
		return nil, err
	}

	c, err := p.classifier.Classify(ctx, text, authenticated)
	if err != nil {
		p.logger.Info("nlp classification failed",
			zap.String("input_prefix", logging.Prefix(text, logInputPrefix)),
			zap.Error(err))
		return nil, err
	}

	p.logger.Info("nlp classified",
		zap.String("intent", c.Intent),
		zap.Float64("confidence", c.Confidence),
		zap.String("input_prefix", logging.Prefix(text, logInputPrefix)))

	return p.registry.Dispatch(text, c)
}

// AvailableIntents lists every registered command identifier, sorted.
func (p *Parser) AvailableIntents() []string {
	return p.registry.Intents()
}

// Commands describes every registered command.
func (p *Parser) Commands() []CommandInfo {
	return p.registry.Commands()
}

// DestructiveCommands lists the commands that always require confirmation.
func (p *Parser) DestructiveCommands() []string {
	return p.registry.DestructiveCommands()
}

// Suggestion is the help text shown after a failed parse.
func (p *Parser) Suggestion() string {
	return examplesHint + `

Examples:
  - "start a 30 minute session"
  - "quiz me on neural networks"
  - "show my progress"
  - "explain backpropagation"
  - "search for transformers"`
}
