package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/learner/internal/db"
	"github.com/alexanderramin/learner/internal/domain"
)

type SQLiteStatsRepo struct {
	db db.DBTX
}

func NewSQLiteStatsRepo(db db.DBTX) *SQLiteStatsRepo {
	return &SQLiteStatsRepo{db: db}
}

// Totals fills every Stats field except CurrentStreakDays.
func (r *SQLiteStatsRepo) Totals(ctx context.Context, userID string) (*domain.Stats, error) {
	var s domain.Stats
	var lastSession sql.NullString
	var avgScore sql.NullFloat64

	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM learning_sessions WHERE user_id = ?1 AND status = 'completed'),
			(SELECT COALESCE(SUM(actual_minutes), 0) FROM learning_sessions WHERE user_id = ?1 AND status = 'completed'),
			(SELECT MAX(started_at) FROM learning_sessions WHERE user_id = ?1),
			(SELECT COUNT(*) FROM quiz_attempts WHERE user_id = ?1),
			(SELECT AVG(CAST(correct AS REAL) / total) FROM quiz_attempts WHERE user_id = ?1),
			(SELECT COUNT(*) FROM explanations WHERE user_id = ?1)`, userID,
	).Scan(&s.CompletedSessions, &s.TotalMinutes, &lastSession, &s.QuizzesTaken, &avgScore, &s.Explanations)
	if err != nil {
		return nil, fmt.Errorf("computing stats: %w", err)
	}

	s.LastSessionAt = parseNullableTime(lastSession)
	if avgScore.Valid {
		s.AverageQuizScore = avgScore.Float64
	}
	return &s, nil
}

func (r *SQLiteStatsRepo) ActiveDays(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT substr(started_at, 1, 10) AS day
		FROM learning_sessions
		WHERE user_id = ? AND status = 'completed'
		ORDER BY day DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing active days: %w", err)
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scanning active day: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating active days: %w", err)
	}
	return days, nil
}
