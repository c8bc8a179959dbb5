package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/learner/internal/nlp"
)

// FormatIntentPreview shows what was understood and the equivalent command.
func FormatIntentPreview(intent *nlp.CommandIntent) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Padding(0, 1)

	body := StyleBlue.Bold(true).Render("Understood:") + " " + intent.Description() + "\n\n" +
		Dim("Equivalent command: ") + StyleDim.Italic(true).Render(intent.Signature())
	return box.Render(body) + "\n"
}

// DestructiveWarning is printed above the confirmation prompt.
func DestructiveWarning() string {
	return StyleYellow.Render("This action will modify your data.") + "\n"
}

// FormatChatResult shows the message an executed command returned.
func FormatChatResult(r nlp.Result) string {
	if r.Message == "" {
		return ""
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorGreen).
		Padding(0, 1)
	return box.Render(StyleGreen.Bold(true).Render("Done")+"\n"+StyleGreen.Render(r.Message)) + "\n"
}

// FormatChatError renders a labelled failure with an optional hint.
func FormatChatError(label, reason, hint string) string {
	var b strings.Builder
	b.WriteString(StyleRed.Render(label+":") + " " + reason + "\n")
	if hint != "" {
		b.WriteString("\n" + Dim(hint) + "\n")
	}
	return b.String()
}

// FormatIntents renders the command registry for developers.
func FormatIntents(commands []nlp.CommandInfo) string {
	sorted := make([]nlp.CommandInfo, len(commands))
	copy(sorted, commands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Command < sorted[j].Command })

	rows := make([][]string, 0, len(sorted))
	for _, c := range sorted {
		destructive := StyleGreen.Render("No")
		if c.Destructive {
			destructive = StyleRed.Render("Yes")
		}
		params := Dim("-")
		if len(c.Params) > 0 {
			params = strings.Join(c.Params, ", ")
		}
		rows = append(rows, []string{StyleBlue.Render(c.Command), c.Usage, params, destructive})
	}

	return Header("Available command intents") + "\n" +
		RenderTable([]string{"INTENT", "CLI COMMAND", "PARAMS", "DESTRUCTIVE"}, rows) + "\n" +
		Dim("Destructive commands always ask for confirmation.") + "\n"
}

type example struct {
	phrase, effect string
}

var exampleGroups = []struct {
	title    string
	style    lipgloss.Style
	examples []example
}{
	{"Learning sessions", StyleGreen, []example{
		{"start a learning session for 45 minutes", "Starts a 45-min regular session"},
		{"begin a drill session", "Starts a drill-focused session"},
		{"start a quick 20 minute catchup", "Starts a catchup session"},
		{"show session status", "Displays current session info"},
		{"end my current session", "Ends the active session"},
	}},
	{"Assessment and quizzes", StyleBlue, []example{
		{"quiz me on attention mechanisms", "Quiz on a specific topic"},
		{"give me a quick 5 question quiz", "Quick assessment"},
		{"explain transformers", "Start a Feynman dialogue"},
		{"teach me about neural networks", "Explanation mode"},
	}},
	{"Progress", StyleYellow, []example{
		{"show my stats", "Learning progress overview"},
		{"how am I doing?", "Progress summary"},
		{"what's my streak?", "Streak information"},
	}},
	{"Content discovery", StylePurple, []example{
		{"find papers about reinforcement learning", "Search research content"},
		{"search for transformer tutorials", "Find learning materials"},
	}},
	{"Profile and account", StyleRed, []example{
		{"show my profile", "View profile settings"},
		{"who am I?", "Current user info"},
		{"log out", "End the login (asks for confirmation)"},
	}},
}

// FormatExamples lists example phrases by category.
func FormatExamples() string {
	var b strings.Builder
	b.WriteString(Header("Natural language examples") + "\n")
	b.WriteString(Dim("Say these, or anything similar, after 'learner chat ask'.") + "\n")

	for _, g := range exampleGroups {
		b.WriteString("\n" + g.style.Bold(true).Render(g.title) + "\n")
		for _, ex := range g.examples {
			b.WriteString(fmt.Sprintf("  %s\n    %s\n", StyleBlue.Render(`"`+ex.phrase+`"`), Dim(ex.effect)))
		}
	}

	b.WriteString("\n" + Bold("Tips") + "\n")
	b.WriteString("  - Exact wording doesn't matter; phrase commands naturally.\n")
	b.WriteString("  - Ending a session and logging out always ask for confirmation.\n")
	b.WriteString("  - Use --no-confirm to skip the prompt for everything else.\n")
	return b.String()
}
