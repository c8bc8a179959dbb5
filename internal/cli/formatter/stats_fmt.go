package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/learner/internal/domain"
)

// FormatStats renders progress totals. dailyGoal is in minutes; zero hides
// the goal line.
func FormatStats(s *domain.Stats, dailyGoal int, now time.Time) string {
	var b strings.Builder

	b.WriteString(KeyValue("Sessions", fmt.Sprintf("%d completed", s.CompletedSessions)))
	b.WriteString(KeyValue("Time learned", FormatMinutes(s.TotalMinutes)))

	streak := Plural(s.CurrentStreakDays, "day")
	if s.CurrentStreakDays >= 3 {
		streak = StyleGreen.Render(streak)
	}
	b.WriteString(KeyValue("Streak", streak))

	if s.QuizzesTaken > 0 {
		b.WriteString(KeyValue("Quizzes", fmt.Sprintf("%d taken, avg %s",
			s.QuizzesTaken, ScoreStyle(s.AverageQuizScore).Render(fmt.Sprintf("%.0f%%", s.AverageQuizScore*100)))))
	} else {
		b.WriteString(KeyValue("Quizzes", Dim("none yet")))
	}
	b.WriteString(KeyValue("Explanations", fmt.Sprintf("%d", s.Explanations)))

	if s.LastSessionAt != nil {
		b.WriteString(KeyValue("Last session", HumanTimestamp(*s.LastSessionAt, now)))
	}

	if dailyGoal > 0 && s.CompletedSessions > 0 {
		avg := float64(s.TotalMinutes) / float64(s.CompletedSessions)
		b.WriteString(fmt.Sprintf("\n  Avg session vs daily goal (%s)\n  %s\n",
			FormatMinutes(dailyGoal), RenderProgress(avg/float64(dailyGoal), 24)))
	}

	return RenderBox("Progress", b.String())
}
