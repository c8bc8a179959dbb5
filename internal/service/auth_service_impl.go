package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/alexanderramin/learner/internal/domain"
	"github.com/alexanderramin/learner/internal/repository"
	"github.com/alexanderramin/learner/internal/state"
)

type authService struct {
	users    repository.UserRepo
	store    *state.Store
	cost     int
	now      func() time.Time
	observer UseCaseObserver
}

// NewAuthService creates an AuthService that keeps logins in store.
func NewAuthService(users repository.UserRepo, store *state.Store, observers ...UseCaseObserver) AuthService {
	return &authService{
		users:    users,
		store:    store,
		cost:     bcrypt.DefaultCost,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (_ *domain.User, err error) {
	defer observe(ctx, s.observer, "auth.register", time.Now(), &err, nil)

	req.Email = normalizeEmail(req.Email)
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if err := checkPasswordStrength(req.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := s.now().UTC()
	u := &domain.User{
		ID:                   uuid.New().String(),
		Email:                req.Email,
		DisplayName:          req.DisplayName,
		PasswordHash:         string(hash),
		DailyGoalMinutes:     30,
		PreferredSessionType: domain.DefaultSessionType,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (_ *domain.User, err error) {
	defer observe(ctx, s.observer, "auth.login", time.Now(), &err, nil)

	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.store.Save(state.NewAuth(u.ID, u.Email, s.now())); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *authService) Logout(ctx context.Context) (_ *domain.User, err error) {
	defer observe(ctx, s.observer, "auth.logout", time.Now(), &err, nil)

	u, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.Clear(); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *authService) CurrentUser(ctx context.Context) (*domain.User, error) {
	auth, err := s.store.Load(s.now())
	if errors.Is(err, state.ErrNoAuth) {
		return nil, ErrNotAuthenticated
	}
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, auth.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		// The account is gone; the saved login is useless.
		_ = s.store.Clear()
		return nil, ErrNotAuthenticated
	}
	return u, err
}

func (s *authService) IsAuthenticated(ctx context.Context) bool {
	_, err := s.CurrentUser(ctx)
	return err == nil
}
