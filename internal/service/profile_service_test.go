package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/learner/internal/domain"
	"github.com/alexanderramin/learner/internal/repository"
	"github.com/alexanderramin/learner/internal/testutil"
)

func ptr[T any](v T) *T { return &v }

func TestProfileService_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	u := createTestUser(t, database)
	svc := NewProfileService(repository.NewSQLiteUserRepo(database))
	ctx := context.Background()

	updated, err := svc.Update(ctx, u.ID, ProfileUpdate{
		DisplayName:      ptr("  Grace "),
		DailyGoalMinutes: ptr(45),
	})
	require.NoError(t, err)
	assert.Equal(t, "Grace", updated.DisplayName)
	assert.Equal(t, 45, updated.DailyGoalMinutes)
	assert.Equal(t, domain.SessionRegular, updated.PreferredSessionType, "unset fields are untouched")

	got, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grace", got.DisplayName)
}

func TestProfileService_UpdateValidation(t *testing.T) {
	database := testutil.NewTestDB(t)
	u := createTestUser(t, database)
	svc := NewProfileService(repository.NewSQLiteUserRepo(database))

	tests := []struct {
		name    string
		req     ProfileUpdate
		wantMsg string
	}{
		{"goal too small", ProfileUpdate{DailyGoalMinutes: ptr(0)}, "dailygoalminutes must be at least 5"},
		{"goal too large", ProfileUpdate{DailyGoalMinutes: ptr(1000)}, "dailygoalminutes must be at most 600"},
		{"bad type", ProfileUpdate{PreferredType: ptr(domain.SessionType("nap"))}, "preferredtype must be one of"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), u.ID, tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestProfileService_UnknownUser(t *testing.T) {
	svc := NewProfileService(repository.NewSQLiteUserRepo(testutil.NewTestDB(t)))
	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
