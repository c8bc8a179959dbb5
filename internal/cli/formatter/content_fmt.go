package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learner/internal/domain"
)

// FormatContentResults lists search hits with their topics and links.
func FormatContentResults(query string, items []*domain.ContentItem) string {
	if len(items) == 0 {
		return fmt.Sprintf("No content matches %q.\n", query)
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Results for %q", query)))
	b.WriteString("\n")
	for i, c := range items {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleDim.Render(fmt.Sprintf("%2d.", i+1)), Bold(c.Title)))
		if c.Summary != "" {
			b.WriteString("    " + c.Summary + "\n")
		}
		meta := StyleBlue.Render(c.URL)
		if len(c.Topics) > 0 {
			meta += "  " + StylePurple.Render(strings.Join(c.Topics, ", "))
		}
		b.WriteString("    " + meta + "\n")
	}
	return b.String()
}

func FormatImportResult(contentCount, questionCount int) string {
	return fmt.Sprintf("%s Imported %s and %s.\n", StyleGreen.Render("✔"),
		Plural(contentCount, "content item"), Plural(questionCount, "quiz question"))
}
