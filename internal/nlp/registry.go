package nlp

import (
	"fmt"
	"slices"
)

// CommandInfo describes a registered command for prompts and help listings.
type CommandInfo struct {
	Command     string
	Summary     string
	Usage       string // explicit CLI form, without flags
	Params      []string
	Destructive bool
	// AuthOnly commands are only offered to the classifier for logged-in users.
	AuthOnly bool
}

// builder turns sanitized text and untrusted classifier params into an intent.
// It must validate every param it uses.
type builder func(text string, params map[string]any) *CommandIntent

type registryEntry struct {
	info  CommandInfo
	build builder
}

// Registry maps command identifiers to builders. It is filled once by
// newRegistry and only read afterwards, so concurrent use is safe.
type Registry struct {
	entries map[string]registryEntry
	order   []string
}

func newRegistry(actions Actions) *Registry {
	builders := bindBuilders(actions)
	r := &Registry{entries: make(map[string]registryEntry, len(commandCatalog))}
	for _, info := range commandCatalog {
		b, ok := builders[info.Command]
		if !ok {
			panic(fmt.Sprintf("nlp: no builder for %s", info.Command))
		}
		r.entries[info.Command] = registryEntry{info: info, build: b}
		r.order = append(r.order, info.Command)
	}
	if len(builders) != len(commandCatalog) {
		panic("nlp: builder without catalog entry")
	}
	return r
}

// Dispatch builds the intent for c.Intent. Unregistered identifiers,
// including IntentUnknown, fail with KindNotFound.
func (r *Registry) Dispatch(text string, c Classification) (*CommandIntent, error) {
	entry, ok := r.entries[c.Intent]
	if !ok {
		return nil, &Error{
			Kind:   KindNotFound,
			Reason: "No matching command found",
			Hint:   examplesHint,
		}
	}

	params := c.Params
	if params == nil {
		params = map[string]any{}
	}
	intent := entry.build(text, params)
	intent.command = entry.info.Command
	intent.destructive = entry.info.Destructive
	intent.confidence = c.Confidence
	intent.needsConfirmation = entry.info.Destructive || c.Confidence < ConfirmationThreshold
	return intent, nil
}

// Intents returns the registered identifiers, sorted.
func (r *Registry) Intents() []string {
	ids := slices.Clone(r.order)
	slices.Sort(ids)
	return ids
}

// Commands returns the registered commands in catalog order.
func (r *Registry) Commands() []CommandInfo {
	out := make([]CommandInfo, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id].info)
	}
	return out
}

// DestructiveCommands returns the identifiers that always need confirmation, sorted.
func (r *Registry) DestructiveCommands() []string {
	var ids []string
	for _, id := range r.order {
		if r.entries[id].info.Destructive {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

func (r *Registry) IsDestructive(id string) bool {
	e, ok := r.entries[id]
	return ok && e.info.Destructive
}

var commandCatalog = []CommandInfo{
	{Command: CmdLearnStart, Summary: "Start a learning session", Usage: "learner learn start", Params: []string{"minutes", "type"}},
	{Command: CmdLearnStatus, Summary: "Check current session status", Usage: "learner learn status"},
	{Command: CmdLearnEnd, Summary: "End the current session", Usage: "learner learn end", Destructive: true},
	{Command: CmdQuizStart, Summary: "Start a quiz", Usage: "learner quiz", Params: []string{"topic", "count"}},
	{Command: CmdExplainStart, Summary: "Start a Feynman explanation", Usage: "learner explain", Params: []string{"topic"}},
	{Command: CmdStatsShow, Summary: "Show learning progress and stats", Usage: "learner stats progress"},
	{Command: CmdProfileShow, Summary: "Show user profile", Usage: "learner profile show"},
	{Command: CmdContentSearch, Summary: "Search for learning content", Usage: "learner content search", Params: []string{"query"}},
	{Command: CmdAuthLogout, Summary: "Log out", Usage: "learner auth logout", Destructive: true, AuthOnly: true},
	{Command: CmdAuthWhoami, Summary: "Show current user", Usage: "learner auth whoami", AuthOnly: true},
}
