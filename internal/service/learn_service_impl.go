package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/learner/internal/db"
	"github.com/alexanderramin/learner/internal/domain"
	"github.com/alexanderramin/learner/internal/nlp"
	"github.com/alexanderramin/learner/internal/repository"
)

type learnService struct {
	sessions repository.SessionRepo
	uow      db.UnitOfWork
	now      func() time.Time
	observer UseCaseObserver
}

func NewLearnService(sessions repository.SessionRepo, uow db.UnitOfWork, observers ...UseCaseObserver) LearnService {
	return &learnService{
		sessions: sessions,
		uow:      uow,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Start opens a session. Minutes are clamped the same way parsed commands
// are, and an unknown type falls back to the default.
func (s *learnService) Start(ctx context.Context, userID string, minutes int, sessionType domain.SessionType) (_ *domain.LearningSession, err error) {
	defer observe(ctx, s.observer, "learn.start", time.Now(), &err, map[string]any{"minutes": minutes})

	now := s.now().UTC()
	session := &domain.LearningSession{
		ID:             uuid.New().String(),
		UserID:         userID,
		Type:           nlp.ValidateSessionType(string(sessionType)),
		PlannedMinutes: nlp.ValidateMinutes(minutes),
		Status:         domain.SessionActive,
		StartedAt:      now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		if _, err := txSessions.GetActive(ctx, userID); err == nil {
			return ErrSessionAlreadyActive
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if err := txSessions.Create(ctx, session); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrSessionAlreadyActive
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *learnService) Status(ctx context.Context, userID string) (*SessionStatus, error) {
	session, err := s.active(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	elapsed := session.Elapsed(now)
	return &SessionStatus{
		Session:   session,
		Elapsed:   elapsed,
		Remaining: session.Remaining(now),
		Overtime:  elapsed > time.Duration(session.PlannedMinutes)*time.Minute,
	}, nil
}

func (s *learnService) End(ctx context.Context, userID string) (_ *domain.LearningSession, err error) {
	defer observe(ctx, s.observer, "learn.end", time.Now(), &err, nil)
	return s.finish(ctx, userID, (*domain.LearningSession).Complete)
}

func (s *learnService) Abandon(ctx context.Context, userID string) (_ *domain.LearningSession, err error) {
	defer observe(ctx, s.observer, "learn.abandon", time.Now(), &err, nil)
	return s.finish(ctx, userID, (*domain.LearningSession).Abandon)
}

func (s *learnService) finish(ctx context.Context, userID string, transition func(*domain.LearningSession, time.Time) error) (*domain.LearningSession, error) {
	var session *domain.LearningSession
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		active, err := txSessions.GetActive(ctx, userID)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNoActiveSession
		}
		if err != nil {
			return err
		}
		if err := transition(active, s.now().UTC()); err != nil {
			return err
		}
		session = active
		return txSessions.Update(ctx, active)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *learnService) History(ctx context.Context, userID string, limit int) ([]*domain.LearningSession, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.sessions.ListByUser(ctx, userID, limit)
}

func (s *learnService) active(ctx context.Context, userID string) (*domain.LearningSession, error) {
	session, err := s.sessions.GetActive(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoActiveSession
	}
	return session, err
}
