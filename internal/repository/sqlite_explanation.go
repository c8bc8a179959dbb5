package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/learner/internal/db"
	"github.com/alexanderramin/learner/internal/domain"
)

type SQLiteExplanationRepo struct {
	db db.DBTX
}

func NewSQLiteExplanationRepo(db db.DBTX) *SQLiteExplanationRepo {
	return &SQLiteExplanationRepo{db: db}
}

func (r *SQLiteExplanationRepo) Create(ctx context.Context, e *domain.Explanation) error {
	gaps, err := encodeStrings(e.Gaps)
	if err != nil {
		return fmt.Errorf("encoding gaps: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO explanations
		(id, user_id, topic, body, score, gaps_json, follow_up, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Topic, e.Text, e.Score, gaps, e.FollowUp, formatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting explanation: %w", err)
	}
	return nil
}

func (r *SQLiteExplanationRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Explanation, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, user_id, topic, body, score, gaps_json, follow_up, created_at
		FROM explanations WHERE user_id = ? ORDER BY created_at DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing explanations: %w", err)
	}
	defer rows.Close()

	var out []*domain.Explanation
	for rows.Next() {
		var e domain.Explanation
		var gaps, createdAt string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Topic, &e.Text, &e.Score, &gaps, &e.FollowUp, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning explanation: %w", err)
		}
		if e.Gaps, err = decodeStrings("gaps_json", gaps); err != nil {
			return nil, err
		}
		if e.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating explanations: %w", err)
	}
	return out, nil
}
