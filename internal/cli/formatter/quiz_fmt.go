package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learner/internal/domain"
)

// FormatAnswerFeedback tells the learner whether one answer was right.
func FormatAnswerFeedback(q *domain.QuizQuestion, choice int) string {
	if q.IsCorrect(choice) {
		return StyleGreen.Render("✔ Correct") + "\n"
	}
	var b strings.Builder
	b.WriteString(StyleRed.Render("✖ Not quite.") + " Answer: " + Bold(q.Choices[q.AnswerIndex]) + "\n")
	if q.Explanation != "" {
		b.WriteString("  " + Dim(q.Explanation) + "\n")
	}
	return b.String()
}

// FormatQuizResult shows the final score of an attempt.
func FormatQuizResult(a *domain.QuizAttempt) string {
	topic := a.Topic
	if topic == "" {
		topic = "mixed topics"
	}
	var b strings.Builder
	b.WriteString(KeyValue("Topic", topic))
	b.WriteString(KeyValue("Score", fmt.Sprintf("%d/%d", a.Correct, a.Total)))
	b.WriteString("\n  " + RenderProgress(a.Score(), 24))
	return RenderBox("Quiz complete", b.String())
}
