package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/learner/internal/domain"
	"github.com/alexanderramin/learner/internal/testutil"
)

func TestFormatContentResults(t *testing.T) {
	c := testutil.NewTestContent("Attention Is All You Need", "transformers", "nlp")

	out := FormatContentResults("transformers", []*domain.ContentItem{c})
	assert.Contains(t, out, `RESULTS FOR "TRANSFORMERS"`)
	assert.Contains(t, out, "Attention Is All You Need")
	assert.Contains(t, out, c.URL)
	assert.Contains(t, out, "transformers, nlp")
}

func TestFormatContentResults_NoMatches(t *testing.T) {
	assert.Equal(t, "No content matches \"rust\".\n", FormatContentResults("rust", nil))
}

func TestFormatImportResult(t *testing.T) {
	out := FormatImportResult(1, 3)
	assert.Contains(t, out, "1 content item and 3 quiz questions")
}

func TestFormatAnswerFeedback(t *testing.T) {
	q := testutil.NewTestQuestion("go", "Which is right?")
	assert.Contains(t, FormatAnswerFeedback(q, 0), "Correct")

	out := FormatAnswerFeedback(q, 2)
	assert.Contains(t, out, "Not quite")
	assert.Contains(t, out, "right")
	assert.Contains(t, out, "Because it is right.")
}

func TestFormatQuizResult(t *testing.T) {
	out := FormatQuizResult(testutil.NewTestAttempt("u1", "", 4, 3))
	assert.Contains(t, out, "mixed topics")
	assert.Contains(t, out, "3/4")
	assert.Contains(t, out, "75%")
}

func TestFormatWhoAmI(t *testing.T) {
	u := testutil.NewTestUser("ada@example.com")
	assert.Contains(t, FormatWhoAmI(u), "ada@example.com")

	named := testutil.NewTestUser("ada@example.com", testutil.WithDisplayName("Ada"))
	out := FormatWhoAmI(named)
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "<ada@example.com>")
}

func TestFormatProfile(t *testing.T) {
	u := testutil.NewTestUser("ada@example.com", testutil.WithPreferredType(domain.SessionCatchup))
	out := FormatProfile(u)
	assert.Contains(t, out, "PROFILE")
	assert.Contains(t, out, "30m")
	assert.Contains(t, out, "Catchup")
}
