package domain

import (
	"errors"
	"time"
)

var (
	// ErrSessionNotActive is returned when a transition is attempted on a
	// session that already ended.
	ErrSessionNotActive = errors.New("session is not active")
)

// LearningSession is a timeboxed block of study owned by one user.
type LearningSession struct {
	ID             string
	UserID         string
	Type           SessionType
	PlannedMinutes int
	ActualMinutes  int
	Status         SessionStatus
	StartedAt      time.Time
	EndedAt        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Elapsed returns the wall-clock time since the session started.
func (s *LearningSession) Elapsed(now time.Time) time.Duration {
	end := now
	if s.EndedAt != nil {
		end = *s.EndedAt
	}
	if end.Before(s.StartedAt) {
		return 0
	}
	return end.Sub(s.StartedAt)
}

// Remaining returns the planned time left, never negative.
func (s *LearningSession) Remaining(now time.Time) time.Duration {
	left := time.Duration(s.PlannedMinutes)*time.Minute - s.Elapsed(now)
	if left < 0 {
		return 0
	}
	return left
}

// Complete marks an active session completed and records the minutes spent.
// At least one minute is always recorded.
func (s *LearningSession) Complete(now time.Time) error {
	if s.Status != SessionActive {
		return ErrSessionNotActive
	}
	s.ActualMinutes = max(1, int(s.Elapsed(now).Minutes()))
	s.Status = SessionCompleted
	s.EndedAt = &now
	s.UpdatedAt = now
	return nil
}

// Abandon marks an active session abandoned. No minutes are credited.
func (s *LearningSession) Abandon(now time.Time) error {
	if s.Status != SessionActive {
		return ErrSessionNotActive
	}
	s.Status = SessionAbandoned
	s.EndedAt = &now
	s.UpdatedAt = now
	return nil
}
