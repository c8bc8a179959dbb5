package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/learner/internal/domain"
	"github.com/alexanderramin/learner/internal/service"
	"github.com/alexanderramin/learner/internal/testutil"
)

func TestLearnStart_WithFlags(t *testing.T) {
	h := testApp(t)
	u := h.login(t)

	out, err := executeCmd(t, h.App, "learn", "start", "--time", "45", "--type", "drill")
	require.NoError(t, err)
	assert.Contains(t, out, "SESSION STARTED")
	assert.Contains(t, out, "Drill")
	assert.Contains(t, out, "45m")

	st, err := h.Learn.Status(t.Context(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionDrill, st.Session.Type)
	assert.Equal(t, 45, st.Session.PlannedMinutes)
}

func TestLearnStart_DefaultsToPreferredType(t *testing.T) {
	h := testApp(t)
	u := h.login(t, testutil.WithPreferredType(domain.SessionCatchup))

	_, err := executeCmd(t, h.App, "learn", "start")
	require.NoError(t, err)

	st, err := h.Learn.Status(t.Context(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionCatchup, st.Session.Type)
	assert.Equal(t, 30, st.Session.PlannedMinutes)
}

func TestLearnStart_ClampsMinutes(t *testing.T) {
	h := testApp(t)
	u := h.login(t)

	_, err := executeCmd(t, h.App, "learn", "start", "--time", "500")
	require.NoError(t, err)

	st, err := h.Learn.Status(t.Context(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 180, st.Session.PlannedMinutes)
}

func TestLearnStart_InvalidType(t *testing.T) {
	h := testApp(t)
	h.login(t)

	_, err := executeCmd(t, h.App, "learn", "start", "--type", "cram")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "regular, drill, catchup")
}

func TestLearnStart_SecondSessionRejected(t *testing.T) {
	h := testApp(t)
	h.login(t)

	_, err := executeCmd(t, h.App, "learn", "start")
	require.NoError(t, err)
	_, err = executeCmd(t, h.App, "learn", "start")
	assert.ErrorIs(t, err, service.ErrSessionAlreadyActive)
}

func TestLearnStart_RequiresLogin(t *testing.T) {
	h := testApp(t)

	_, err := executeCmd(t, h.App, "learn", "start", "--type", "drill")
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)
}

func TestLearnStatus_NoActiveSession(t *testing.T) {
	h := testApp(t)
	h.login(t)

	out, err := executeCmd(t, h.App, "learn", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "No active session")
}

func TestLearnLifecycle(t *testing.T) {
	h := testApp(t)
	h.login(t)

	_, err := executeCmd(t, h.App, "learn", "start", "--time", "20")
	require.NoError(t, err)

	out, err := executeCmd(t, h.App, "learn", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "CURRENT SESSION")
	assert.Contains(t, out, "Active")

	out, err = executeCmd(t, h.App, "learn", "end")
	require.NoError(t, err)
	assert.Contains(t, out, "session completed")

	_, err = executeCmd(t, h.App, "learn", "end")
	assert.ErrorIs(t, err, service.ErrNoActiveSession)

	out, err = executeCmd(t, h.App, "learn", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "SESSION HISTORY")
	assert.Contains(t, out, "Completed")
}

func TestLearnAbandon(t *testing.T) {
	h := testApp(t)
	h.login(t)

	_, err := executeCmd(t, h.App, "learn", "start")
	require.NoError(t, err)

	out, err := executeCmd(t, h.App, "learn", "abandon")
	require.NoError(t, err)
	assert.Contains(t, out, "abandoned")
}
