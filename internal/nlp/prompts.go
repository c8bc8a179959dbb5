package nlp

import (
	"fmt"
	"strings"
)

const classifySystemPrompt = `You are a command classifier for a learning CLI.
Respond ONLY with a single valid JSON object and no other text.
Only choose commands from the list you are given.`

const examplesHint = "Try 'learner chat examples' to see what I can do."

// buildClassifyPrompt lists only the commands open to the caller's auth
// state. Logged-out callers are pointed at the explicit login command.
func buildClassifyPrompt(text string, authenticated bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Classify this command and extract its parameters.\n\nUser input: %q\n\nAvailable commands:\n", text)
	for _, c := range commandCatalog {
		if c.AuthOnly && !authenticated {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s", c.Command, c.Summary)
		if len(c.Params) > 0 {
			fmt.Fprintf(&b, " (params: %s)", strings.Join(c.Params, ", "))
		}
		b.WriteByte('\n')
	}
	if !authenticated {
		b.WriteString("- auth.login: Log in (run 'learner auth login' directly, not available here)\n")
	}

	b.WriteString(`
Respond with exactly this shape:
{"intent": "command.subcommand", "confidence": 0.95, "params": {"name": "value"}}

Parameter rules:
- durations go in "minutes" as an integer
- session type goes in "type": regular, drill or catchup
- subjects go in "topic" as a string
- number of questions goes in "count" as an integer (default 5)
- search terms go in "query" as a string

Examples:
- "start a 30 minute session" -> {"intent": "learn.start", "confidence": 0.98, "params": {"minutes": 30}}
- "quiz me on transformers" -> {"intent": "quiz.start", "confidence": 0.92, "params": {"topic": "transformers", "count": 5}}
- "show my stats" -> {"intent": "stats.show", "confidence": 0.95, "params": {}}
- "log out" -> {"intent": "auth.logout", "confidence": 0.99, "params": {}}

Use a plain decimal for confidence (0.9, never .9).
If nothing matches, respond with:
{"intent": "unknown", "confidence": 0.0, "params": {}}`)
	return b.String()
}
