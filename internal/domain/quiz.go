package domain

import (
	"fmt"
	"time"
)

// QuizQuestion is a multiple-choice question from the question bank.
type QuizQuestion struct {
	ID          string
	Topic       string
	Prompt      string
	Choices     []string
	AnswerIndex int
	Explanation string
	CreatedAt   time.Time
}

// Validate checks that the question has an answer among its choices.
func (q *QuizQuestion) Validate() error {
	if q.Prompt == "" {
		return fmt.Errorf("question prompt is required")
	}
	if len(q.Choices) < 2 {
		return fmt.Errorf("question %q needs at least 2 choices", q.Prompt)
	}
	if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Choices) {
		return fmt.Errorf("question %q: answer index %d out of range", q.Prompt, q.AnswerIndex)
	}
	return nil
}

// IsCorrect reports whether choice is the right answer.
func (q *QuizQuestion) IsCorrect(choice int) bool {
	return choice == q.AnswerIndex
}

// QuizAttempt records the outcome of one quiz run.
type QuizAttempt struct {
	ID        string
	UserID    string
	Topic     string
	Total     int
	Correct   int
	CreatedAt time.Time
}

// Score returns the fraction of correct answers in [0,1].
func (a *QuizAttempt) Score() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Total)
}
