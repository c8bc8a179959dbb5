package nlp

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var (
	explainPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)explain\s+(.+)`),
		regexp.MustCompile(`(?i)teach\s+me\s+(?:about\s+)?(.+)`),
		regexp.MustCompile(`(?i)what\s+is\s+(.+)`),
	}
	searchPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)search\s+(?:for\s+)?(.+)`),
		regexp.MustCompile(`(?i)find\s+(.+)`),
		regexp.MustCompile(`(?i)look\s+(?:for\s+)?(.+)`),
	}
	quizPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)quiz\s+me\s+(?:on|about)\s+(.+)`),
		regexp.MustCompile(`(?i)test\s+(?:my\s+knowledge\s+)?(?:of|on)\s+(.+)`),
	}
)

const (
	defaultExplainTopic = "the topic"
	defaultSearchQuery  = "learning content"
)

// bindBuilders closes each builder over the injected actions. Every execute
// closure captures only validated values.
func bindBuilders(a Actions) map[string]builder {
	return map[string]builder{
		CmdLearnStart: func(_ string, p map[string]any) *CommandIntent {
			minutes := ValidateMinutes(p["minutes"])
			st := ValidateSessionType(p["type"])
			return &CommandIntent{
				description: fmt.Sprintf("Start a %s learning session for %d minutes", st, minutes),
				signature:   fmt.Sprintf("learner learn start --time %d --type %s", minutes, st),
				params:      map[string]any{"minutes": minutes, "type": string(st)},
				execute: func(ctx context.Context) (Result, error) {
					return a.StartSession(ctx, minutes, st)
				},
			}
		},
		CmdLearnStatus: func(string, map[string]any) *CommandIntent {
			return simple("Check current session status", "learner learn status", a.SessionStatus)
		},
		CmdLearnEnd: func(string, map[string]any) *CommandIntent {
			return simple("End the current learning session", "learner learn end", a.EndSession)
		},
		CmdQuizStart: func(text string, p map[string]any) *CommandIntent {
			count := ValidateCount(p["count"])
			topic := freeText(p, "topic", text, quizPatterns, "")
			desc := fmt.Sprintf("Start a %d-question quiz", count)
			sig := fmt.Sprintf("learner quiz --count %d", count)
			if topic != "" {
				desc += " on " + quote(topic)
				sig = fmt.Sprintf("learner quiz --topic %s --count %d", quote(topic), count)
			}
			return &CommandIntent{
				description: desc,
				signature:   sig,
				params:      map[string]any{"topic": topic, "count": count},
				execute: func(ctx context.Context) (Result, error) {
					return a.StartQuiz(ctx, topic, count)
				},
			}
		},
		CmdExplainStart: func(text string, p map[string]any) *CommandIntent {
			topic := freeText(p, "topic", text, explainPatterns, defaultExplainTopic)
			return &CommandIntent{
				description: "Explain " + quote(topic) + " in your own words",
				signature:   "learner explain " + quote(topic),
				params:      map[string]any{"topic": topic},
				execute: func(ctx context.Context) (Result, error) {
					return a.StartExplanation(ctx, topic)
				},
			}
		},
		CmdStatsShow: func(string, map[string]any) *CommandIntent {
			return simple("Show your learning progress", "learner stats progress", a.ShowStats)
		},
		CmdProfileShow: func(string, map[string]any) *CommandIntent {
			return simple("Show your profile", "learner profile show", a.ShowProfile)
		},
		CmdContentSearch: func(text string, p map[string]any) *CommandIntent {
			query := freeText(p, "query", text, searchPatterns, defaultSearchQuery)
			return &CommandIntent{
				description: "Search content for " + quote(query),
				signature:   "learner content search " + quote(query),
				params:      map[string]any{"query": query},
				execute: func(ctx context.Context) (Result, error) {
					return a.SearchContent(ctx, query)
				},
			}
		},
		CmdAuthLogout: func(string, map[string]any) *CommandIntent {
			return simple("Log out of learner", "learner auth logout", a.Logout)
		},
		CmdAuthWhoami: func(string, map[string]any) *CommandIntent {
			return simple("Show the logged-in user", "learner auth whoami", a.WhoAmI)
		},
	}
}

// simple builds an intent for a command that takes no parameters.
func simple(desc, sig string, run func(context.Context) (Result, error)) *CommandIntent {
	return &CommandIntent{
		description: desc,
		signature:   sig,
		params:      map[string]any{},
		execute:     run,
	}
}

// quote single-quotes s for a POSIX shell.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
