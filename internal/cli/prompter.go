package cli

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/learner/internal/cli/formatter"
)

// errPromptAborted is returned when the user leaves a prompt with ctrl+c.
var errPromptAborted = errors.New("aborted")

// Prompter asks the user for input. Commands only call it when
// App.IsInteractive reports a terminal.
type Prompter interface {
	Confirm(ctx context.Context, title, description string) (bool, error)
	// Select returns the index of the chosen option.
	Select(ctx context.Context, title string, options []string) (int, error)
	Input(ctx context.Context, title, placeholder string) (string, error)
	Password(ctx context.Context, title string) (string, error)
	// Text reads a multi-line answer.
	Text(ctx context.Context, title, description string) (string, error)
}

// learnerHuhTheme returns a huh theme built on the formatter palette.
func learnerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// huhPrompter runs one single-field huh form per question.
type huhPrompter struct{}

func runForm(ctx context.Context, field huh.Field) error {
	err := huh.NewForm(huh.NewGroup(field)).
		WithTheme(learnerHuhTheme()).
		WithShowHelp(false).
		RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return errPromptAborted
	}
	return err
}

func (huhPrompter) Confirm(ctx context.Context, title, description string) (bool, error) {
	var ok bool
	err := runForm(ctx, huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok))
	return ok, err
}

func (huhPrompter) Select(ctx context.Context, title string, options []string) (int, error) {
	opts := make([]huh.Option[int], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, i)
	}
	choice := -1
	err := runForm(ctx, huh.NewSelect[int]().
		Title(title).
		Options(opts...).
		Value(&choice))
	return choice, err
}

func (huhPrompter) Input(ctx context.Context, title, placeholder string) (string, error) {
	var v string
	err := runForm(ctx, huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&v))
	return v, err
}

func (huhPrompter) Password(ctx context.Context, title string) (string, error) {
	var v string
	err := runForm(ctx, huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(&v))
	return v, err
}

func (huhPrompter) Text(ctx context.Context, title, description string) (string, error) {
	var v string
	err := runForm(ctx, huh.NewText().
		Title(title).
		Description(description).
		Lines(6).
		Value(&v))
	return v, err
}
