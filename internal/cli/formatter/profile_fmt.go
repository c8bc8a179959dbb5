package formatter

import (
	"strings"

	"github.com/alexanderramin/learner/internal/domain"
)

func FormatProfile(u *domain.User) string {
	var b strings.Builder
	b.WriteString(KeyValue("Name", Bold(u.Name())))
	b.WriteString(KeyValue("Email", u.Email))
	b.WriteString(KeyValue("Daily goal", FormatMinutes(u.DailyGoalMinutes)))
	b.WriteString(KeyValue("Session type", TypeBadge(u.PreferredSessionType)))
	b.WriteString(KeyValue("Member since", u.CreatedAt.Local().Format("Jan 2, 2006")))
	return RenderBox("Profile", b.String())
}

// FormatWhoAmI is the one-line identity shown by auth whoami.
func FormatWhoAmI(u *domain.User) string {
	if u.DisplayName != "" {
		return "Logged in as " + Bold(u.DisplayName) + " " + Dim("<"+u.Email+">") + "\n"
	}
	return "Logged in as " + Bold(u.Email) + "\n"
}
