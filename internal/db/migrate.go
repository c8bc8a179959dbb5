package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Every statement is idempotent so it runs on
// each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id                     TEXT PRIMARY KEY,
		email                  TEXT NOT NULL UNIQUE COLLATE NOCASE,
		display_name           TEXT NOT NULL DEFAULT '',
		password_hash          TEXT NOT NULL,
		daily_goal_minutes     INTEGER NOT NULL DEFAULT 30 CHECK(daily_goal_minutes > 0),
		preferred_session_type TEXT NOT NULL DEFAULT 'regular'
		                       CHECK(preferred_session_type IN ('regular','drill','catchup')),
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS learning_sessions (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		session_type    TEXT NOT NULL CHECK(session_type IN ('regular','drill','catchup')),
		planned_minutes INTEGER NOT NULL CHECK(planned_minutes > 0),
		actual_minutes  INTEGER NOT NULL DEFAULT 0,
		status          TEXT NOT NULL DEFAULT 'active'
		                CHECK(status IN ('active','completed','abandoned')),
		started_at      TEXT NOT NULL,
		ended_at        TEXT,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_user_started ON learning_sessions(user_id, started_at)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_sessions_one_active ON learning_sessions(user_id) WHERE status = 'active'`,

	`CREATE TABLE IF NOT EXISTS content_items (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		url        TEXT NOT NULL DEFAULT '',
		source     TEXT NOT NULL DEFAULT '',
		summary    TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_content_title_url ON content_items(title, url)`,

	`CREATE TABLE IF NOT EXISTS content_topics (
		content_id TEXT NOT NULL REFERENCES content_items(id) ON DELETE CASCADE,
		topic      TEXT NOT NULL COLLATE NOCASE,
		PRIMARY KEY (content_id, topic)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_content_topics_topic ON content_topics(topic)`,

	`CREATE TABLE IF NOT EXISTS quiz_questions (
		id           TEXT PRIMARY KEY,
		topic        TEXT NOT NULL COLLATE NOCASE,
		prompt       TEXT NOT NULL,
		choices_json TEXT NOT NULL,
		answer_index INTEGER NOT NULL CHECK(answer_index >= 0),
		explanation  TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_questions_topic ON quiz_questions(topic)`,

	`CREATE TABLE IF NOT EXISTS quiz_attempts (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		topic      TEXT NOT NULL DEFAULT '',
		total      INTEGER NOT NULL CHECK(total > 0),
		correct    INTEGER NOT NULL CHECK(correct >= 0 AND correct <= total),
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attempts_user ON quiz_attempts(user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS explanations (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		topic      TEXT NOT NULL,
		body       TEXT NOT NULL,
		score      INTEGER NOT NULL CHECK(score BETWEEN 0 AND 100),
		gaps_json  TEXT NOT NULL DEFAULT '[]',
		follow_up  TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_explanations_user ON explanations(user_id, created_at)`,
}
