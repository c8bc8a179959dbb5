package domain

import "time"

// Explanation is one round of a Feynman dialogue: the learner explains a
// topic in plain words and receives feedback on the gaps.
type Explanation struct {
	ID        string
	UserID    string
	Topic     string
	Text      string
	Score     int // 0-100
	Gaps      []string
	FollowUp  string
	CreatedAt time.Time
}

// Stats summarizes a learner's progress.
type Stats struct {
	CompletedSessions int
	TotalMinutes      int
	CurrentStreakDays int
	QuizzesTaken      int
	AverageQuizScore  float64
	Explanations      int
	LastSessionAt     *time.Time
}
