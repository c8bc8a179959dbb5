package service

import (
	"context"
	"time"

	"github.com/alexanderramin/learner/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.User, error)
	// Login checks credentials and saves the login state.
	Login(ctx context.Context, email, password string) (*domain.User, error)
	// Logout clears the saved login and returns the user it belonged to.
	Logout(ctx context.Context) (*domain.User, error)
	// CurrentUser returns the logged-in user or ErrNotAuthenticated.
	CurrentUser(ctx context.Context) (*domain.User, error)
	IsAuthenticated(ctx context.Context) bool
}

type LearnService interface {
	Start(ctx context.Context, userID string, minutes int, sessionType domain.SessionType) (*domain.LearningSession, error)
	Status(ctx context.Context, userID string) (*SessionStatus, error)
	End(ctx context.Context, userID string) (*domain.LearningSession, error)
	Abandon(ctx context.Context, userID string) (*domain.LearningSession, error)
	History(ctx context.Context, userID string, limit int) ([]*domain.LearningSession, error)
}

type QuizService interface {
	// Questions picks up to count questions; an empty topic means any topic.
	Questions(ctx context.Context, topic string, count int) ([]*domain.QuizQuestion, error)
	// Record grades answers (choice index per question) and stores the attempt.
	Record(ctx context.Context, userID, topic string, questions []*domain.QuizQuestion, answers []int) (*domain.QuizAttempt, error)
}

type ExplainService interface {
	// Evaluate scores a learner's plain-words explanation of topic and stores it.
	Evaluate(ctx context.Context, userID, topic, text string) (*domain.Explanation, error)
	// Prompt returns the question put to the learner for topic.
	Prompt(topic string) string
}

type StatsService interface {
	Progress(ctx context.Context, userID string) (*domain.Stats, error)
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, req ProfileUpdate) (*domain.User, error)
}

type ContentService interface {
	Search(ctx context.Context, query string, limit int) ([]*domain.ContentItem, error)
	Import(ctx context.Context, path string) (*ImportResult, error)
}

// RegisterRequest carries new-account fields. Password strength is checked
// separately so the message can name the rule that failed.
type RegisterRequest struct {
	Email       string `validate:"required,email,max=254"`
	Password    string `validate:"required,min=8,max=72"`
	DisplayName string `validate:"max=64"`
}

// ProfileUpdate changes only the fields that are set.
type ProfileUpdate struct {
	DisplayName      *string             `validate:"omitnil,max=64"`
	DailyGoalMinutes *int                `validate:"omitnil,min=5,max=600"`
	PreferredType    *domain.SessionType `validate:"omitnil,oneof=regular drill catchup"`
}

// SessionStatus is the live view of the active session.
type SessionStatus struct {
	Session   *domain.LearningSession
	Elapsed   time.Duration
	Remaining time.Duration
	Overtime  bool
}

// ImportResult holds the outcome of a catalog import.
type ImportResult struct {
	ContentCount  int
	QuestionCount int
}
