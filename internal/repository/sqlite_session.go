package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/learner/internal/db"
	"github.com/alexanderramin/learner/internal/domain"
)

// SQLiteSessionRepo stores learning sessions. The schema allows at most one
// active session per user.
type SQLiteSessionRepo struct {
	db db.DBTX
}

func NewSQLiteSessionRepo(db db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

const sessionColumns = `id, user_id, session_type, planned_minutes, actual_minutes, status,
	started_at, ended_at, created_at, updated_at`

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.LearningSession) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO learning_sessions (`+sessionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, string(s.Type), s.PlannedMinutes, s.ActualMinutes, string(s.Status),
		formatTime(s.StartedAt), nullableTime(s.EndedAt), formatTime(s.CreatedAt), formatTime(s.UpdatedAt),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("active session: %w", ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("inserting learning session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.LearningSession, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM learning_sessions WHERE id = ?`, id)
	return scanSession(row)
}

func (r *SQLiteSessionRepo) GetActive(ctx context.Context, userID string) (*domain.LearningSession, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM learning_sessions
		WHERE user_id = ? AND status = 'active'`, userID)
	return scanSession(row)
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.LearningSession) error {
	res, err := r.db.ExecContext(ctx, `UPDATE learning_sessions
		SET actual_minutes = ?, status = ?, ended_at = ?, updated_at = ?
		WHERE id = ?`,
		s.ActualMinutes, string(s.Status), nullableTime(s.EndedAt), formatTime(s.UpdatedAt), s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating learning session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("learning session %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

// ListByUser returns the most recent sessions first.
func (r *SQLiteSessionRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.LearningSession, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+sessionColumns+` FROM learning_sessions
		WHERE user_id = ? ORDER BY started_at DESC, created_at DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing learning sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.LearningSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating learning sessions: %w", err)
	}
	return sessions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*domain.LearningSession, error) {
	var s domain.LearningSession
	var sessionType, status, startedAt, createdAt, updatedAt string
	var endedAt sql.NullString

	err := row.Scan(&s.ID, &s.UserID, &sessionType, &s.PlannedMinutes, &s.ActualMinutes, &status,
		&startedAt, &endedAt, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("learning session: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning learning session: %w", err)
	}

	s.Type = domain.SessionType(sessionType)
	s.Status = domain.SessionStatus(status)
	s.EndedAt = parseNullableTime(endedAt)
	if s.StartedAt, err = parseTime("started_at", startedAt); err != nil {
		return nil, err
	}
	if s.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	if s.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
