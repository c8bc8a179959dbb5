package nlp

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize_RejectsDenyPatterns(t *testing.T) {
	tests := []struct {
		input string
		label string
	}{
		{"start; rm -rf /", "shell metacharacters"},
		{"learn && logout", "shell metacharacters"},
		{"R&D reading session", "shell metacharacters"},
		{"show stats | grep x", "shell metacharacters"},
		{"explain `whoami`", "shell metacharacters"},
		{"search $HOME", "shell metacharacters"},
		{"explain ../../etc/passwd", "path traversal"},
		{`search ..\windows`, "path traversal"},
		{"search x -- comment", "SQL comment"},
		{"search ' or '1'='1", "SQL injection"},
		{"search x' OR 'y", "SQL injection"},
		{"please drop   table users", "SQL injection"},
		{"DROP\tTABLE sessions", "SQL injection"},
		{"please DROP\u00a0TABLE users", "SQL injection"},
		{"drop\vtable users", "SQL injection"},
		{"drop\u2003table users", "SQL injection"},
		{"x --\u00a0y", "SQL comment"},
		{"x'\u00a0OR\u00a0'y", "SQL injection"},
		{"explain <SCRIPT>alert(1)</script>", "script injection"},
		{"open JavaScript:alert(1)", "javascript injection"},
		{"explain go\x00lang", "null byte injection"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Sanitize(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, KindValidation, KindOf(err))

			var e *Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, tt.label, e.Pattern)
			assert.Equal(t, "Input contains prohibited pattern: "+tt.label, e.Error())
		})
	}
}

func TestSanitize_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n "} {
		_, err := Sanitize(input)
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
		assert.Equal(t, "Please enter a command", err.Error())
	}
}

func TestSanitize_LengthBoundary(t *testing.T) {
	exact := strings.Repeat("a", MaxInputLength)
	out, err := Sanitize(exact)
	require.NoError(t, err)
	assert.Equal(t, exact, out)

	_, err = Sanitize(exact + "a")
	require.Error(t, err)
	assert.Equal(t, "Command too long (max 500 characters)", err.Error())

	// Surrounding whitespace does not count towards the limit.
	_, err = Sanitize("  " + exact + "  ")
	assert.NoError(t, err)
}

func TestSanitize_CountsCharactersNotBytes(t *testing.T) {
	out, err := Sanitize(strings.Repeat("é", MaxInputLength))
	require.NoError(t, err)
	assert.Equal(t, MaxInputLength, len([]rune(out)))
}

func TestSanitize_NormalizesWhitespace(t *testing.T) {
	out, err := Sanitize("  start   a\t30\nminute   session  ")
	require.NoError(t, err)
	assert.Equal(t, "start a 30 minute session", out)
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"start a 30 minute session",
		"quiz me on neural networks",
		"what's a monad?",
		"  teach   me about   graphs ",
		"find notes on Newton's laws",
		"naïve bayes, explained",
		"teach\u00a0me\u2003about\vgraphs",
	}
	for _, in := range inputs {
		once, err := Sanitize(in)
		require.NoError(t, err, in)
		twice, err := Sanitize(once)
		require.NoError(t, err, in)
		assert.Equal(t, once, twice)
	}
}

func TestSanitize_AllowsSingleDashesAndDots(t *testing.T) {
	for _, in := range []string{"explain e-learning", "search v1.2 notes", "study x--y"} {
		_, err := Sanitize(in)
		assert.NoError(t, err, in)
	}
}
