package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/learner/internal/domain"
)

// FormatSessionStarted confirms a new session.
func FormatSessionStarted(s *domain.LearningSession) string {
	var b strings.Builder
	b.WriteString(KeyValue("Type", TypeBadge(s.Type)))
	b.WriteString(KeyValue("Planned", FormatMinutes(s.PlannedMinutes)))
	b.WriteString(KeyValue("Ends around", s.StartedAt.Add(time.Duration(s.PlannedMinutes)*time.Minute).Local().Format("15:04")))
	b.WriteString("\n" + Dim("  Run 'learner learn end' when you are done."))
	return RenderBox("Session started", b.String())
}

// FormatSessionStatus shows elapsed and remaining time of the active session.
func FormatSessionStatus(s *domain.LearningSession, elapsed, remaining time.Duration, overtime bool) string {
	var b strings.Builder
	b.WriteString(KeyValue("Status", StatusPill(s.Status)))
	b.WriteString(KeyValue("Type", TypeBadge(s.Type)))
	b.WriteString(KeyValue("Elapsed", FormatDuration(elapsed)))
	if overtime {
		b.WriteString(KeyValue("Remaining", StyleYellow.Render("overtime")))
	} else {
		b.WriteString(KeyValue("Remaining", FormatDuration(remaining)))
	}

	planned := time.Duration(s.PlannedMinutes) * time.Minute
	if planned > 0 {
		b.WriteString("\n  " + RenderProgress(float64(elapsed)/float64(planned), 24))
	}
	return RenderBox("Current session", b.String())
}

// FormatSessionEnded summarises a completed or abandoned session.
func FormatSessionEnded(s *domain.LearningSession) string {
	if s.Status == domain.SessionAbandoned {
		return fmt.Sprintf("%s %s session abandoned. No minutes recorded.\n",
			StyleYellow.Render("✖"), TypeBadge(s.Type))
	}
	return fmt.Sprintf("%s %s session completed: %s of %s planned.\n",
		StyleGreen.Render("✔"), TypeBadge(s.Type), Bold(FormatMinutes(s.ActualMinutes)), FormatMinutes(s.PlannedMinutes))
}

// FormatSessionHistory lists recent sessions, newest first.
func FormatSessionHistory(sessions []*domain.LearningSession, now time.Time) string {
	if len(sessions) == 0 {
		return Dim("No sessions yet. Start one with 'learner learn start'.") + "\n"
	}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			TruncID(s.ID),
			HumanTimestamp(s.StartedAt, now),
			TypeBadge(s.Type),
			FormatMinutes(s.PlannedMinutes),
			FormatMinutes(s.ActualMinutes),
			StatusPill(s.Status),
		})
	}
	return Header("Session history") + "\n" +
		RenderTable([]string{"ID", "STARTED", "TYPE", "PLANNED", "ACTUAL", "STATUS"}, rows)
}
