package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{}

// counter counts pings and quits on ctrl+c.
type counter struct {
	pings int
}

func (c counter) Init() tea.Cmd { return func() tea.Msg { return pingMsg{} } }

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pingMsg:
		c.pings++
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return c, tea.Quit
		}
	}
	return c, nil
}

func (c counter) View() string {
	if c.pings == 1 {
		return "1 ping"
	}
	return "pings"
}

func TestDriver_DrainsInitAndQuits(t *testing.T) {
	d := New(t, counter{})
	d.DrainInit()
	assert.Equal(t, "1 ping", d.View())

	d.PressCtrlC()
	assert.True(t, d.Quitting)

	d.Send(pingMsg{})
	assert.Equal(t, 1, d.Model.(counter).pings, "no updates after quit")
}

func TestDriver_DropsSlowCmds(t *testing.T) {
	d := New(t, counter{})
	d.drain(tea.Tick(cmdTimeout*20, func(t time.Time) tea.Msg { return pingMsg{} }), 0)
	assert.Equal(t, 0, d.Model.(counter).pings)
}
