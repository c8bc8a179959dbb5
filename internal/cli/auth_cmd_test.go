package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/learner/internal/service"
)

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	h := testApp(t)

	output, err := executeCmd(t, h.App)
	require.NoError(t, err)
	assert.Contains(t, output, "learner")
	assert.Contains(t, output, "chat")
}

func TestAuthRegister_PasswordFromStdin_LogsIn(t *testing.T) {
	h := testApp(t)

	out, err := executeCmdWithInput(t, h.App, "s3cretpass\n",
		"auth", "register", "--email", "Ada@Example.com", "--name", "Ada", "--password-stdin")
	require.NoError(t, err)
	assert.Contains(t, out, "Account created")
	assert.Contains(t, out, "Ada")

	out, err = executeCmd(t, h.App, "auth", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "ada@example.com")
}

func TestAuthRegister_WeakPassword(t *testing.T) {
	h := testApp(t)

	_, err := executeCmdWithInput(t, h.App, "short\n",
		"auth", "register", "--email", "ada@example.com", "--password-stdin")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	assert.False(t, h.Auth.IsAuthenticated(t.Context()))
}

func TestAuthRegister_NonInteractiveNeedsFlags(t *testing.T) {
	h := testApp(t)

	_, err := executeCmd(t, h.App, "auth", "register")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--email")

	_, err = executeCmd(t, h.App, "auth", "register", "--email", "ada@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--password-stdin")
}

func TestAuthRegister_InteractivePrompts(t *testing.T) {
	h := testApp(t)
	h.setInteractive(true)
	h.prompt.answers = []string{"ada@example.com", "s3cretpass", "s3cretpass"}

	_, err := executeCmd(t, h.App, "auth", "register")
	require.NoError(t, err)
	assert.Equal(t, []string{"Email", "Password", "Repeat password"}, h.prompt.Asked())
	assert.True(t, h.Auth.IsAuthenticated(t.Context()))
}

func TestAuthRegister_PasswordMismatch(t *testing.T) {
	h := testApp(t)
	h.setInteractive(true)
	h.prompt.answers = []string{"s3cretpass", "s3cretpasX"}

	_, err := executeCmd(t, h.App, "auth", "register", "--email", "ada@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passwords do not match")
}

func TestAuthLogin_WrongPassword(t *testing.T) {
	h := testApp(t)
	_, err := executeCmdWithInput(t, h.App, "s3cretpass\n",
		"auth", "register", "--email", "ada@example.com", "--password-stdin")
	require.NoError(t, err)
	_, err = executeCmd(t, h.App, "auth", "logout")
	require.NoError(t, err)

	_, err = executeCmdWithInput(t, h.App, "wrongpass1\n",
		"auth", "login", "--email", "ada@example.com", "--password-stdin")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	out, err := executeCmdWithInput(t, h.App, "s3cretpass\n",
		"auth", "login", "--email", "ada@example.com", "--password-stdin")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as")
}

func TestAuthLogout_ClearsLogin(t *testing.T) {
	h := testApp(t)
	u := h.login(t)

	out, err := executeCmd(t, h.App, "auth", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out "+u.Email)
	assert.False(t, h.Auth.IsAuthenticated(t.Context()))
}

func TestAuthWhoAmI_NotLoggedIn(t *testing.T) {
	h := testApp(t)

	_, err := executeCmd(t, h.App, "auth", "whoami")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)
	assert.Contains(t, err.Error(), "learner auth login")
}
