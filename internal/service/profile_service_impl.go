package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/learner/internal/domain"
	"github.com/alexanderramin/learner/internal/repository"
)

type profileService struct {
	users    repository.UserRepo
	now      func() time.Time
	observer UseCaseObserver
}

func NewProfileService(users repository.UserRepo, observers ...UseCaseObserver) ProfileService {
	return &profileService{users: users, now: time.Now, observer: useCaseObserverOrNoop(observers)}
}

func (s *profileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *profileService) Update(ctx context.Context, userID string, req ProfileUpdate) (_ *domain.User, err error) {
	defer observe(ctx, s.observer, "profile.update", time.Now(), &err, nil)

	if req.DisplayName != nil {
		trimmed := strings.TrimSpace(*req.DisplayName)
		req.DisplayName = &trimmed
	}
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.DisplayName != nil {
		u.DisplayName = *req.DisplayName
	}
	if req.DailyGoalMinutes != nil {
		u.DailyGoalMinutes = *req.DailyGoalMinutes
	}
	if req.PreferredType != nil {
		u.PreferredSessionType = *req.PreferredType
	}
	u.UpdatedAt = s.now().UTC()

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
