package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/learner/internal/domain"
)

var fixtureSeq atomic.Int64

// User options
type UserOption func(*domain.User)

func WithDisplayName(name string) UserOption {
	return func(u *domain.User) { u.DisplayName = name }
}

func WithPasswordHash(hash string) UserOption {
	return func(u *domain.User) { u.PasswordHash = hash }
}

func WithPreferredType(t domain.SessionType) UserOption {
	return func(u *domain.User) { u.PreferredSessionType = t }
}

// NewTestUser returns a user with a unique email when email is empty.
func NewTestUser(email string, opts ...UserOption) *domain.User {
	if email == "" {
		email = fmt.Sprintf("learner%d@example.com", fixtureSeq.Add(1))
	}
	now := time.Now().UTC()
	u := &domain.User{
		ID:                   uuid.New().String(),
		Email:                email,
		PasswordHash:         "not-a-real-hash",
		DailyGoalMinutes:     30,
		PreferredSessionType: domain.SessionRegular,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Session options
type SessionOption func(*domain.LearningSession)

func WithSessionType(t domain.SessionType) SessionOption {
	return func(s *domain.LearningSession) { s.Type = t }
}

func WithStartedAt(t time.Time) SessionOption {
	return func(s *domain.LearningSession) { s.StartedAt = t.UTC() }
}

// WithCompleted ends the session after actual minutes.
func WithCompleted(actual int) SessionOption {
	return func(s *domain.LearningSession) {
		end := s.StartedAt.Add(time.Duration(actual) * time.Minute)
		s.Status = domain.SessionCompleted
		s.ActualMinutes = actual
		s.EndedAt = &end
	}
}

func WithAbandoned() SessionOption {
	return func(s *domain.LearningSession) {
		end := s.StartedAt.Add(time.Minute)
		s.Status = domain.SessionAbandoned
		s.EndedAt = &end
	}
}

// NewTestSession returns an active session started a few minutes ago.
// Options apply in order, so WithStartedAt must precede WithCompleted.
func NewTestSession(userID string, planned int, opts ...SessionOption) *domain.LearningSession {
	now := time.Now().UTC().Truncate(time.Second)
	s := &domain.LearningSession{
		ID:             uuid.New().String(),
		UserID:         userID,
		Type:           domain.SessionRegular,
		PlannedMinutes: planned,
		Status:         domain.SessionActive,
		StartedAt:      now.Add(-5 * time.Minute),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewTestContent(title string, topics ...string) *domain.ContentItem {
	return &domain.ContentItem{
		ID:        uuid.New().String(),
		Title:     title,
		URL:       fmt.Sprintf("https://example.com/%d", fixtureSeq.Add(1)),
		Source:    "test",
		Summary:   "About " + title,
		Topics:    topics,
		CreatedAt: time.Now().UTC(),
	}
}

// NewTestQuestion returns a question whose first choice is correct.
func NewTestQuestion(topic, prompt string) *domain.QuizQuestion {
	return &domain.QuizQuestion{
		ID:          uuid.New().String(),
		Topic:       topic,
		Prompt:      prompt,
		Choices:     []string{"right", "wrong", "also wrong"},
		AnswerIndex: 0,
		Explanation: "Because it is right.",
		CreatedAt:   time.Now().UTC(),
	}
}

func NewTestAttempt(userID, topic string, total, correct int) *domain.QuizAttempt {
	return &domain.QuizAttempt{
		ID:        uuid.New().String(),
		UserID:    userID,
		Topic:     topic,
		Total:     total,
		Correct:   correct,
		CreatedAt: time.Now().UTC(),
	}
}

func NewTestExplanation(userID, topic string, score int) *domain.Explanation {
	return &domain.Explanation{
		ID:        uuid.New().String(),
		UserID:    userID,
		Topic:     topic,
		Text:      "It is like a recipe.",
		Score:     score,
		Gaps:      []string{"no example"},
		FollowUp:  "Can you give an example?",
		CreatedAt: time.Now().UTC(),
	}
}
