package service

import (
	"context"
	"time"

	"github.com/alexanderramin/learner/internal/domain"
	"github.com/alexanderramin/learner/internal/repository"
)

type statsService struct {
	stats repository.StatsRepo
	now   func() time.Time
}

func NewStatsService(stats repository.StatsRepo) StatsService {
	return &statsService{stats: stats, now: time.Now}
}

func (s *statsService) Progress(ctx context.Context, userID string) (*domain.Stats, error) {
	stats, err := s.stats.Totals(ctx, userID)
	if err != nil {
		return nil, err
	}
	days, err := s.stats.ActiveDays(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.CurrentStreakDays = currentStreak(days, s.now().UTC())
	return stats, nil
}

// currentStreak counts consecutive days ending today or yesterday. days are
// YYYY-MM-DD, newest first, without duplicates.
func currentStreak(days []string, now time.Time) int {
	if len(days) == 0 {
		return 0
	}
	today := now.Format(time.DateOnly)
	yesterday := now.AddDate(0, 0, -1).Format(time.DateOnly)
	if days[0] != today && days[0] != yesterday {
		return 0
	}

	expected, err := time.Parse(time.DateOnly, days[0])
	if err != nil {
		return 0
	}
	streak := 0
	for _, d := range days {
		if d != expected.Format(time.DateOnly) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}
