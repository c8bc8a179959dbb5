package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/learner/internal/testutil"
)

func TestStatsRepo_Totals(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	u := testutil.NewTestUser("")
	require.NoError(t, NewSQLiteUserRepo(database).Create(ctx, u))

	sessions := NewSQLiteSessionRepo(database)
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, sessions.Create(ctx, testutil.NewTestSession(u.ID, 30,
		testutil.WithStartedAt(day), testutil.WithCompleted(25))))
	require.NoError(t, sessions.Create(ctx, testutil.NewTestSession(u.ID, 30,
		testutil.WithStartedAt(day.Add(24*time.Hour)), testutil.WithCompleted(40))))
	require.NoError(t, sessions.Create(ctx, testutil.NewTestSession(u.ID, 30,
		testutil.WithStartedAt(day.Add(48*time.Hour)), testutil.WithAbandoned())))

	quizzes := NewSQLiteQuizRepo(database)
	require.NoError(t, quizzes.CreateAttempt(ctx, testutil.NewTestAttempt(u.ID, "go", 4, 4)))
	require.NoError(t, quizzes.CreateAttempt(ctx, testutil.NewTestAttempt(u.ID, "go", 4, 2)))

	require.NoError(t, NewSQLiteExplanationRepo(database).Create(ctx, testutil.NewTestExplanation(u.ID, "go", 50)))

	stats, err := NewSQLiteStatsRepo(database).Totals(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.CompletedSessions)
	assert.Equal(t, 65, stats.TotalMinutes)
	assert.Equal(t, 2, stats.QuizzesTaken)
	assert.InDelta(t, 0.75, stats.AverageQuizScore, 1e-9)
	assert.Equal(t, 1, stats.Explanations)
	require.NotNil(t, stats.LastSessionAt)
	assert.True(t, stats.LastSessionAt.Equal(day.Add(48*time.Hour)))
}

func TestStatsRepo_EmptyUser(t *testing.T) {
	stats, err := NewSQLiteStatsRepo(testutil.NewTestDB(t)).Totals(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Zero(t, stats.CompletedSessions)
	assert.Zero(t, stats.AverageQuizScore)
	assert.Nil(t, stats.LastSessionAt)
}

func TestStatsRepo_ActiveDays(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	u := testutil.NewTestUser("")
	require.NoError(t, NewSQLiteUserRepo(database).Create(ctx, u))

	sessions := NewSQLiteSessionRepo(database)
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, sessions.Create(ctx, testutil.NewTestSession(u.ID, 30,
		testutil.WithStartedAt(day), testutil.WithCompleted(10))))
	require.NoError(t, sessions.Create(ctx, testutil.NewTestSession(u.ID, 30,
		testutil.WithStartedAt(day.Add(2*time.Hour)), testutil.WithCompleted(10))))
	require.NoError(t, sessions.Create(ctx, testutil.NewTestSession(u.ID, 30,
		testutil.WithStartedAt(day.Add(24*time.Hour)), testutil.WithCompleted(10))))

	days, err := NewSQLiteStatsRepo(database).ActiveDays(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-11", "2026-03-10"}, days)
}
