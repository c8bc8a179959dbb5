package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"users", "learning_sessions", "content_items", "content_topics", "quiz_questions", "quiz_attempts", "explanations"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_sessions_user_started",
		"idx_sessions_one_active",
		"idx_content_title_url",
		"idx_content_topics_topic",
		"idx_questions_topic",
		"idx_attempts_user",
		"idx_explanations_user",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnforced(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO learning_sessions
		(id, user_id, session_type, planned_minutes, started_at, created_at, updated_at)
		VALUES ('s1', 'missing-user', 'regular', 30, 'x', 'x', 'x')`)
	assert.Error(t, err)
}

func TestMigrate_OneActiveSessionPerUser(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO users (id, email, password_hash, created_at, updated_at)
		VALUES ('u1', 'a@example.com', 'h', 'x', 'x')`)
	require.NoError(t, err)

	insert := `INSERT INTO learning_sessions
		(id, user_id, session_type, planned_minutes, status, started_at, created_at, updated_at)
		VALUES (?, 'u1', 'regular', 30, ?, 'x', 'x', 'x')`
	_, err = db.Exec(insert, "s1", "active")
	require.NoError(t, err)
	_, err = db.Exec(insert, "s2", "completed")
	require.NoError(t, err)
	_, err = db.Exec(insert, "s3", "active")
	assert.Error(t, err)
}

func TestMigrate_EmailUniqueIgnoringCase(t *testing.T) {
	db := openTestDB(t)

	insert := `INSERT INTO users (id, email, password_hash, created_at, updated_at) VALUES (?, ?, 'h', 'x', 'x')`
	_, err := db.Exec(insert, "u1", "Ada@example.com")
	require.NoError(t, err)
	_, err = db.Exec(insert, "u2", "ada@EXAMPLE.com")
	assert.Error(t, err)
}
