package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/alexanderramin/learner/internal/domain"
)

// FeedbackMarkdown renders Feynman feedback as markdown.
func FeedbackMarkdown(e *domain.Explanation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Feedback on %s\n\n", e.Topic)
	fmt.Fprintf(&b, "**Clarity score:** %d/100\n\n", e.Score)
	if len(e.Gaps) > 0 {
		b.WriteString("## Gaps\n\n")
		for _, g := range e.Gaps {
			fmt.Fprintf(&b, "- %s\n", g)
		}
		b.WriteString("\n")
	} else {
		b.WriteString("No gaps found. Nicely done.\n\n")
	}
	if e.FollowUp != "" {
		fmt.Fprintf(&b, "## Next question\n\n> %s\n", e.FollowUp)
	}
	return b.String()
}

// RenderFeedback renders the feedback markdown for a terminal of the given
// width. If glamour fails the raw markdown is returned.
func RenderFeedback(e *domain.Explanation, width int) string {
	md := FeedbackMarkdown(e)
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(max(width, 40)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
