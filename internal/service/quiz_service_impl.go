package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/learner/internal/domain"
	"github.com/alexanderramin/learner/internal/nlp"
	"github.com/alexanderramin/learner/internal/repository"
)

type quizService struct {
	quizzes  repository.QuizRepo
	now      func() time.Time
	observer UseCaseObserver
}

func NewQuizService(quizzes repository.QuizRepo, observers ...UseCaseObserver) QuizService {
	return &quizService{quizzes: quizzes, now: time.Now, observer: useCaseObserverOrNoop(observers)}
}

func (s *quizService) Questions(ctx context.Context, topic string, count int) ([]*domain.QuizQuestion, error) {
	topic = strings.TrimSpace(topic)
	questions, err := s.quizzes.ListQuestions(ctx, topic, nlp.ValidateCount(count))
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		if topic == "" {
			return nil, ErrNoQuestions
		}
		return nil, fmt.Errorf("%w for topic %q", ErrNoQuestions, topic)
	}
	return questions, nil
}

func (s *quizService) Record(ctx context.Context, userID, topic string, questions []*domain.QuizQuestion, answers []int) (_ *domain.QuizAttempt, err error) {
	defer observe(ctx, s.observer, "quiz.record", time.Now(), &err, map[string]any{"questions": len(questions)})

	if len(answers) != len(questions) {
		return nil, fmt.Errorf("%w: got %d answers for %d questions", ErrInvalidInput, len(answers), len(questions))
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	attempt := &domain.QuizAttempt{
		ID:        uuid.New().String(),
		UserID:    userID,
		Topic:     strings.TrimSpace(topic),
		Total:     len(questions),
		CreatedAt: s.now().UTC(),
	}
	for i, q := range questions {
		if q.IsCorrect(answers[i]) {
			attempt.Correct++
		}
	}

	if err := s.quizzes.CreateAttempt(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}
