package repository

import (
	"context"

	"github.com/alexanderramin/learner/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.LearningSession) error
	GetByID(ctx context.Context, id string) (*domain.LearningSession, error)
	GetActive(ctx context.Context, userID string) (*domain.LearningSession, error)
	Update(ctx context.Context, s *domain.LearningSession) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.LearningSession, error)
}

type ContentRepo interface {
	Create(ctx context.Context, c *domain.ContentItem) error
	Search(ctx context.Context, query string, limit int) ([]*domain.ContentItem, error)
	Count(ctx context.Context) (int, error)
}

type QuizRepo interface {
	CreateQuestion(ctx context.Context, q *domain.QuizQuestion) error
	ListQuestions(ctx context.Context, topic string, limit int) ([]*domain.QuizQuestion, error)
	CreateAttempt(ctx context.Context, a *domain.QuizAttempt) error
	ListAttempts(ctx context.Context, userID string, limit int) ([]*domain.QuizAttempt, error)
}

type ExplanationRepo interface {
	Create(ctx context.Context, e *domain.Explanation) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Explanation, error)
}

// StatsRepo aggregates progress figures for one user.
type StatsRepo interface {
	Totals(ctx context.Context, userID string) (*domain.Stats, error)
	// ActiveDays returns distinct UTC dates (YYYY-MM-DD) with a completed
	// session, newest first.
	ActiveDays(ctx context.Context, userID string) ([]string, error)
}
