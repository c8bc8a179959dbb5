package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/learner/internal/db"
	"github.com/alexanderramin/learner/internal/domain"
)

type SQLiteUserRepo struct {
	db db.DBTX
}

func NewSQLiteUserRepo(db db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: db}
}

const userColumns = `id, email, display_name, password_hash, daily_goal_minutes,
	preferred_session_type, created_at, updated_at`

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.DisplayName, u.PasswordHash, u.DailyGoalMinutes,
		string(u.PreferredSessionType), formatTime(u.CreatedAt), formatTime(u.UpdatedAt),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("user %s: %w", u.Email, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// GetByEmail matches case-insensitively.
func (r *SQLiteUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *SQLiteUserRepo) Update(ctx context.Context, u *domain.User) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users
		SET display_name = ?, daily_goal_minutes = ?, preferred_session_type = ?, updated_at = ?
		WHERE id = ?`,
		u.DisplayName, u.DailyGoalMinutes, string(u.PreferredSessionType), formatTime(u.UpdatedAt), u.ID,
	)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("user %s: %w", u.ID, ErrNotFound)
	}
	return nil
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	var sessionType, createdAt, updatedAt string
	err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &u.DailyGoalMinutes,
		&sessionType, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	u.PreferredSessionType = domain.SessionType(sessionType)
	if u.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	if u.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
