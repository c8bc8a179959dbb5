package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/learner/internal/db"
	"github.com/alexanderramin/learner/internal/domain"
)

type SQLiteQuizRepo struct {
	db db.DBTX
}

func NewSQLiteQuizRepo(db db.DBTX) *SQLiteQuizRepo {
	return &SQLiteQuizRepo{db: db}
}

func (r *SQLiteQuizRepo) CreateQuestion(ctx context.Context, q *domain.QuizQuestion) error {
	choices, err := encodeStrings(q.Choices)
	if err != nil {
		return fmt.Errorf("encoding choices: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO quiz_questions
		(id, topic, prompt, choices_json, answer_index, explanation, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.Topic, q.Prompt, choices, q.AnswerIndex, q.Explanation, formatTime(q.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting quiz question: %w", err)
	}
	return nil
}

// ListQuestions returns up to limit questions in random order. An empty
// topic matches every question; otherwise topics compare case-insensitively.
func (r *SQLiteQuizRepo) ListQuestions(ctx context.Context, topic string, limit int) ([]*domain.QuizQuestion, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, topic, prompt, choices_json, answer_index, explanation, created_at
		FROM quiz_questions
		WHERE ?1 = '' OR topic = ?1
		ORDER BY random()
		LIMIT ?2`, topic, limit)
	if err != nil {
		return nil, fmt.Errorf("listing quiz questions: %w", err)
	}
	defer rows.Close()

	var out []*domain.QuizQuestion
	for rows.Next() {
		var q domain.QuizQuestion
		var choices, createdAt string
		if err := rows.Scan(&q.ID, &q.Topic, &q.Prompt, &choices, &q.AnswerIndex, &q.Explanation, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning quiz question: %w", err)
		}
		if q.Choices, err = decodeStrings("choices_json", choices); err != nil {
			return nil, err
		}
		if q.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
			return nil, err
		}
		out = append(out, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quiz questions: %w", err)
	}
	return out, nil
}

func (r *SQLiteQuizRepo) CreateAttempt(ctx context.Context, a *domain.QuizAttempt) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO quiz_attempts (id, user_id, topic, total, correct, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.UserID, a.Topic, a.Total, a.Correct, formatTime(a.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting quiz attempt: %w", err)
	}
	return nil
}

func (r *SQLiteQuizRepo) ListAttempts(ctx context.Context, userID string, limit int) ([]*domain.QuizAttempt, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, user_id, topic, total, correct, created_at
		FROM quiz_attempts WHERE user_id = ? ORDER BY created_at DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing quiz attempts: %w", err)
	}
	defer rows.Close()

	var out []*domain.QuizAttempt
	for rows.Next() {
		var a domain.QuizAttempt
		var createdAt string
		if err := rows.Scan(&a.ID, &a.UserID, &a.Topic, &a.Total, &a.Correct, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning quiz attempt: %w", err)
		}
		if a.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quiz attempts: %w", err)
	}
	return out, nil
}
