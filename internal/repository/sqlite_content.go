package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/learner/internal/db"
	"github.com/alexanderramin/learner/internal/domain"
)

type SQLiteContentRepo struct {
	db db.DBTX
}

func NewSQLiteContentRepo(db db.DBTX) *SQLiteContentRepo {
	return &SQLiteContentRepo{db: db}
}

// Create inserts the item and its topics. Run it inside a transaction when
// a partial insert must not survive.
func (r *SQLiteContentRepo) Create(ctx context.Context, c *domain.ContentItem) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO content_items (id, title, url, source, summary, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Title, c.URL, c.Source, c.Summary, formatTime(c.CreatedAt),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("content %q: %w", c.Title, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("inserting content item: %w", err)
	}

	for _, topic := range c.Topics {
		topic = strings.TrimSpace(topic)
		if topic == "" {
			continue
		}
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO content_topics (content_id, topic) VALUES (?, ?)`, c.ID, topic); err != nil {
			return fmt.Errorf("inserting content topic: %w", err)
		}
	}
	return nil
}

// Search matches query case-insensitively against title, summary and topics.
// Title matches rank first.
func (r *SQLiteContentRepo) Search(ctx context.Context, query string, limit int) ([]*domain.ContentItem, error) {
	pattern := likePattern(strings.TrimSpace(query))
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.title, c.url, c.source, c.summary, c.created_at,
		       COALESCE((SELECT group_concat(topic, char(31)) FROM content_topics t WHERE t.content_id = c.id), '')
		FROM content_items c
		WHERE lower(c.title) LIKE ?1 ESCAPE '\'
		   OR lower(c.summary) LIKE ?1 ESCAPE '\'
		   OR EXISTS (SELECT 1 FROM content_topics t
		              WHERE t.content_id = c.id AND lower(t.topic) LIKE ?1 ESCAPE '\')
		ORDER BY (lower(c.title) LIKE ?1 ESCAPE '\') DESC, c.title
		LIMIT ?2`, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("searching content: %w", err)
	}
	defer rows.Close()

	var items []*domain.ContentItem
	for rows.Next() {
		var c domain.ContentItem
		var createdAt, topics string
		if err := rows.Scan(&c.ID, &c.Title, &c.URL, &c.Source, &c.Summary, &createdAt, &topics); err != nil {
			return nil, fmt.Errorf("scanning content item: %w", err)
		}
		if c.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
			return nil, err
		}
		if topics != "" {
			c.Topics = strings.Split(topics, "\x1f")
		}
		items = append(items, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating content items: %w", err)
	}
	return items, nil
}

func (r *SQLiteContentRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM content_items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting content items: %w", err)
	}
	return n, nil
}
