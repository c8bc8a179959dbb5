package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/learner/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusPill returns a colored indicator for a session status.
func StatusPill(status domain.SessionStatus) string {
	switch status {
	case domain.SessionActive:
		return StyleGreen.Render("● Active")
	case domain.SessionCompleted:
		return StyleBlue.Render("✔ Completed")
	case domain.SessionAbandoned:
		return StyleDim.Render("✖ Abandoned")
	default:
		return StyleDim.Render(string(status))
	}
}

// TypeBadge returns a purple label for a session type.
func TypeBadge(t domain.SessionType) string {
	if t == "" {
		return StyleDim.Render("--")
	}
	s := string(t)
	return StylePurple.Render(strings.ToUpper(s[:1]) + s[1:])
}

// ScoreStyle colors a 0-1 score: green from 0.75, yellow from 0.5, red below.
func ScoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 0.75:
		return StyleGreen
	case score >= 0.5:
		return StyleYellow
	default:
		return StyleRed
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
