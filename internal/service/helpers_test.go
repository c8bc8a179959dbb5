package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/alexanderramin/learner/internal/domain"
	"github.com/alexanderramin/learner/internal/repository"
	"github.com/alexanderramin/learner/internal/state"
	"github.com/alexanderramin/learner/internal/testutil"
)

// newTestAuth returns an AuthService with a cheap bcrypt cost.
func newTestAuth(t *testing.T, database *sql.DB) (*authService, *state.Store) {
	t.Helper()
	store := state.NewStore(t.TempDir())
	svc := NewAuthService(repository.NewSQLiteUserRepo(database), store).(*authService)
	svc.cost = bcrypt.MinCost
	return svc, store
}

// createTestUser inserts a fixture user and returns it.
func createTestUser(t *testing.T, database *sql.DB) *domain.User {
	t.Helper()
	u := testutil.NewTestUser("")
	require.NoError(t, repository.NewSQLiteUserRepo(database).Create(context.Background(), u))
	return u
}
