package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/learner/internal/domain"
)

func TestSessionTypeFlag(t *testing.T) {
	f := newSessionTypeFlag(domain.DefaultSessionType)
	assert.Equal(t, "regular", f.String())
	assert.Equal(t, "type", f.Type())

	require.NoError(t, f.Set(" Drill "))
	assert.Equal(t, domain.SessionDrill, f.Value())

	assert.Error(t, f.Set("cram"))
	assert.Equal(t, domain.SessionDrill, f.Value(), "invalid values leave the flag unchanged")
}

func TestReadPasswordLine(t *testing.T) {
	pw, err := readPasswordLine(strings.NewReader("s3cret pass\r\nignored\n"))
	require.NoError(t, err)
	assert.Equal(t, "s3cret pass", pw)

	_, err = readPasswordLine(strings.NewReader(""))
	assert.Error(t, err)
}
