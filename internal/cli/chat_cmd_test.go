package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/learner/internal/domain"
	"github.com/alexanderramin/learner/internal/service"
)

func classifierReply(intent string, confidence float64, params string) string {
	if params == "" {
		params = "{}"
	}
	return fmt.Sprintf(`{"intent":%q,"confidence":%g,"params":%s}`, intent, confidence, params)
}

func TestChatAsk_DisabledByFeatureFlag(t *testing.T) {
	h := testApp(t)
	h.NLPEnabled = false

	out, err := executeCmd(t, h.App, "chat", "ask", "show my stats")
	assert.ErrorIs(t, err, ErrReported)
	assert.Contains(t, out, "NLP commands are not enabled")
	assert.Contains(t, out, "FF_ENABLE_NLP_COMMANDS=true")
	assert.Zero(t, h.llm.Calls())
}

func TestChatAsk_StartsSession(t *testing.T) {
	h := testApp(t)
	u := h.login(t)
	h.llm.Response = classifierReply("learn.start", 0.95, `{"minutes":45,"type":"drill"}`)

	out, err := executeCmd(t, h.App, "chat", "ask", "start a 45 minute drill session")
	require.NoError(t, err)
	assert.Contains(t, out, "Processing: start a 45 minute drill session")
	assert.Contains(t, out, "Understood:")
	assert.Contains(t, out, "learner learn start --time 45 --type drill")
	assert.Contains(t, out, "SESSION STARTED")
	assert.Contains(t, out, "Done")
	assert.Contains(t, out, "Started a 45-minute drill session.")
	assert.Empty(t, h.prompt.Asked())

	st, err := h.Learn.Status(t.Context(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionDrill, st.Session.Type)
}

func TestChatAsk_ClampsOutOfRangeParams(t *testing.T) {
	h := testApp(t)
	u := h.login(t)
	h.llm.Response = classifierReply("learn.start", 0.95, `{"minutes":9999,"type":"; rm -rf /"}`)

	out, err := executeCmd(t, h.App, "chat", "ask", "start a very long session")
	require.NoError(t, err)
	assert.Contains(t, out, "--time 180 --type regular")

	st, err := h.Learn.Status(t.Context(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 180, st.Session.PlannedMinutes)
	assert.Equal(t, domain.SessionRegular, st.Session.Type)
}

func TestChatAsk_BlockedInputNeverReachesClassifier(t *testing.T) {
	h := testApp(t)
	h.login(t)

	out, err := executeCmd(t, h.App, "chat", "ask", "start a session; rm -rf /")
	assert.ErrorIs(t, err, ErrReported)
	assert.Contains(t, out, "Invalid input:")
	assert.Contains(t, out, "shell metacharacters")
	assert.Contains(t, out, "learner chat examples")
	assert.Zero(t, h.llm.Calls())
}

func TestChatAsk_UnknownIntent(t *testing.T) {
	h := testApp(t)
	h.llm.Response = classifierReply("unknown", 0.9, "")

	out, err := executeCmd(t, h.App, "chat", "ask", "make me a sandwich")
	assert.ErrorIs(t, err, ErrReported)
	assert.Contains(t, out, "Unknown command:")
}

func TestChatAsk_UnregisteredIntent(t *testing.T) {
	h := testApp(t)
	h.llm.Response = classifierReply("system.shutdown", 0.99, "")

	out, err := executeCmd(t, h.App, "chat", "ask", "turn everything off")
	assert.ErrorIs(t, err, ErrReported)
	assert.Contains(t, out, "Unknown command:")
}

func TestChatAsk_MalformedClassifierReply(t *testing.T) {
	h := testApp(t)
	h.llm.Response = "I think you want to start a session!"

	out, err := executeCmd(t, h.App, "chat", "ask", "start something")
	assert.ErrorIs(t, err, ErrReported)
	assert.Contains(t, out, "I didn't understand that:")
}

func TestChatAsk_DestructiveNonInteractiveIsCancelled(t *testing.T) {
	h := testApp(t)
	u := h.login(t)
	_, err := executeCmd(t, h.App, "learn", "start")
	require.NoError(t, err)
	h.llm.Response = classifierReply("learn.end", 0.99, "")

	out, err := executeCmd(t, h.App, "chat", "ask", "end my session", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")

	_, err = h.Learn.Status(t.Context(), u.ID)
	assert.NoError(t, err, "session must still be active")
}

func TestChatAsk_DestructiveConfirmed(t *testing.T) {
	h := testApp(t)
	u := h.login(t)
	_, err := executeCmd(t, h.App, "learn", "start")
	require.NoError(t, err)
	h.setInteractive(true)
	h.prompt.confirms = []bool{true}
	h.llm.Response = classifierReply("learn.end", 0.99, "")

	out, err := executeCmd(t, h.App, "chat", "ask", "end my session")
	require.NoError(t, err)
	assert.Contains(t, out, "This action will modify your data.")
	assert.Contains(t, out, "Session ended after")
	assert.Equal(t, []string{"Execute this command?"}, h.prompt.Asked())

	_, err = h.Learn.Status(t.Context(), u.ID)
	assert.ErrorIs(t, err, service.ErrNoActiveSession)
}

func TestChatAsk_BrokenPromptIsReported(t *testing.T) {
	h := testApp(t)
	u := h.login(t)
	_, err := executeCmd(t, h.App, "learn", "start")
	require.NoError(t, err)
	h.setInteractive(true)
	h.prompt.err = errors.New("terminal unavailable")
	h.llm.Response = classifierReply("learn.end", 0.99, "")

	out, err := executeCmd(t, h.App, "chat", "ask", "end my session")
	require.ErrorIs(t, err, ErrReported)
	assert.Contains(t, out, "confirmation failed: terminal unavailable")
	assert.NotContains(t, out, "Cancelled.")

	_, err = h.Learn.Status(t.Context(), u.ID)
	assert.NoError(t, err, "session must still be active")
}

func TestChatAsk_ForceStillConfirmsDestructive(t *testing.T) {
	h := testApp(t)
	h.login(t)
	h.setInteractive(true)
	h.prompt.confirms = []bool{false}
	h.llm.Response = classifierReply("auth.logout", 0.99, "")

	out, err := executeCmd(t, h.App, "chat", "ask", "log me out", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")
	assert.Len(t, h.prompt.Asked(), 1)
	assert.True(t, h.Auth.IsAuthenticated(t.Context()))
}

func TestChatAsk_LowConfidenceAsksUnlessNoConfirm(t *testing.T) {
	h := testApp(t)
	h.login(t)
	h.setInteractive(true)
	h.prompt.confirms = []bool{false}
	h.llm.Response = classifierReply("stats.show", 0.6, "")

	out, err := executeCmd(t, h.App, "chat", "ask", "how am i doing")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")
	assert.Len(t, h.prompt.Asked(), 1)

	out, err = executeCmd(t, h.App, "chat", "ask", "how am i doing", "--no-confirm")
	require.NoError(t, err)
	assert.Contains(t, out, "PROGRESS")
	assert.Len(t, h.prompt.Asked(), 1, "no second prompt")
}

func TestChatAsk_ExecutionFailureIsReported(t *testing.T) {
	h := testApp(t)
	h.llm.Response = classifierReply("stats.show", 0.95, "")

	out, err := executeCmd(t, h.App, "chat", "ask", "show my stats")
	assert.ErrorIs(t, err, ErrReported)
	assert.Contains(t, out, "Command failed:")
	assert.Contains(t, out, "not logged in")
}

func TestChatAsk_SearchContent(t *testing.T) {
	h := testApp(t)
	_, err := executeCmd(t, h.App, "content", "import", writeCatalog(t, testCatalog))
	require.NoError(t, err)
	h.llm.Response = classifierReply("content.search", 0.9, `{"query":"transformer"}`)

	out, err := executeCmd(t, h.App, "chat", "ask", "find papers about transformers")
	require.NoError(t, err)
	assert.Contains(t, out, "learner content search 'transformer'")
	assert.Contains(t, out, "Attention Is All You Need")
}

func TestChatAsk_ClassifierSeesAuthState(t *testing.T) {
	h := testApp(t)
	h.llm.Response = classifierReply("content.search", 0.9, `{"query":"go"}`)

	_, err := executeCmd(t, h.App, "chat", "ask", "search for go")
	require.NoError(t, err)
	assert.NotContains(t, h.llm.LastRequest().UserPrompt, "- auth.logout:")
	assert.Contains(t, h.llm.LastRequest().UserPrompt, "learner auth login")

	h.login(t)
	_, err = executeCmd(t, h.App, "chat", "ask", "search for go")
	require.NoError(t, err)
	assert.Contains(t, h.llm.LastRequest().UserPrompt, "- auth.logout:")
}

func TestChatIntents_ListsRegistry(t *testing.T) {
	h := testApp(t)

	out, err := executeCmd(t, h.App, "chat", "intents")
	require.NoError(t, err)
	for _, id := range []string{"learn.start", "learn.end", "auth.logout", "content.search"} {
		assert.Contains(t, out, id)
	}
	assert.Contains(t, out, "Yes")
	assert.Contains(t, out, "always ask for confirmation")
	assert.Zero(t, h.llm.Calls())
}

func TestChatExamples(t *testing.T) {
	h := testApp(t)

	out, err := executeCmd(t, h.App, "chat", "examples")
	require.NoError(t, err)
	assert.Contains(t, out, "Learning sessions")
	assert.Contains(t, out, "quiz me on attention mechanisms")
}
