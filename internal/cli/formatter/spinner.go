package formatter

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type spinnerDoneMsg struct{}

// spinnerModel shows a dot spinner with a message until it receives
// spinnerDoneMsg.
type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
}

func newSpinnerModel(message string) spinnerModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = StylePurple
	return spinnerModel{spinner: sp, message: message}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return "  " + m.spinner.View() + " " + Dim(m.message)
}

// RunWithSpinner runs fn while a spinner animates on out, and returns fn's
// error. If the spinner program exits first (interrupt or ctx), fn's
// context is cancelled and RunWithSpinner still waits for fn to return.
func RunWithSpinner(ctx context.Context, out io.Writer, message string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newSpinnerModel(message),
		tea.WithOutput(out),
		tea.WithInput(nil),
		tea.WithContext(ctx),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- fn(ctx)
		p.Send(spinnerDoneMsg{})
	}()

	_, _ = p.Run()
	cancel()
	return <-errCh
}
