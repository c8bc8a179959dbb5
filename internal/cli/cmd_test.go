package cli

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/learner/internal/domain"
	"github.com/alexanderramin/learner/internal/repository"
	"github.com/alexanderramin/learner/internal/service"
	"github.com/alexanderramin/learner/internal/state"
	"github.com/alexanderramin/learner/internal/testutil"
)

// testHarness is an App backed by an in-memory DB, with handles the tests
// use to seed data and script prompts.
type testHarness struct {
	*App
	db     *sql.DB
	store  *state.Store
	prompt *scriptedPrompter
	llm    *testutil.FakeLLM

	setInteractive func(bool)
}

// testApp wires a full App for CLI integration tests. It starts
// non-interactive with natural-language commands enabled.
func testApp(t *testing.T) *testHarness {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	store := state.NewStore(t.TempDir())

	userRepo := repository.NewSQLiteUserRepo(database)
	fake := testutil.NewFakeLLM("")
	prompt := &scriptedPrompter{}

	h := &testHarness{
		db:     database,
		store:  store,
		prompt: prompt,
		llm:    fake,
	}
	interactive := false
	h.App = &App{
		Auth:    service.NewAuthService(userRepo, store),
		Learn:   service.NewLearnService(repository.NewSQLiteSessionRepo(database), uow),
		Quiz:    service.NewQuizService(repository.NewSQLiteQuizRepo(database)),
		Explain: service.NewExplainService(repository.NewSQLiteExplanationRepo(database), nil),
		Stats:   service.NewStatsService(repository.NewSQLiteStatsRepo(database)),
		Profile: service.NewProfileService(userRepo),
		Content: service.NewContentService(repository.NewSQLiteContentRepo(database), uow),

		LLM:           fake,
		NLPEnabled:    true,
		IsInteractive: func() bool { return interactive },
		Prompter:      prompt,
	}
	h.setInteractive = func(v bool) { interactive = v }
	return h
}

// login creates a user directly in the database and saves a login for it.
func (h *testHarness) login(t *testing.T, opts ...testutil.UserOption) *domain.User {
	t.Helper()
	u := testutil.NewTestUser("", opts...)
	require.NoError(t, repository.NewSQLiteUserRepo(h.db).Create(context.Background(), u))
	require.NoError(t, h.store.Save(state.NewAuth(u.ID, u.Email, time.Now())))
	return u
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	return executeCmdWithInput(t, app, "", args...)
}

func executeCmdWithInput(t *testing.T, app *App, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// scriptedPrompter answers prompts from queues and records every title.
type scriptedPrompter struct {
	mu       sync.Mutex
	confirms []bool
	selects  []int
	answers  []string
	asked    []string
	err      error
}

func (p *scriptedPrompter) record(title string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.asked = append(p.asked, title)
	return p.err
}

func (p *scriptedPrompter) Asked() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.asked...)
}

func (p *scriptedPrompter) Confirm(_ context.Context, title, _ string) (bool, error) {
	if err := p.record(title); err != nil {
		return false, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.confirms) == 0 {
		return false, fmt.Errorf("unexpected confirm: %s", title)
	}
	v := p.confirms[0]
	p.confirms = p.confirms[1:]
	return v, nil
}

func (p *scriptedPrompter) Select(_ context.Context, title string, _ []string) (int, error) {
	if err := p.record(title); err != nil {
		return -1, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.selects) == 0 {
		return -1, fmt.Errorf("unexpected select: %s", title)
	}
	v := p.selects[0]
	p.selects = p.selects[1:]
	return v, nil
}

func (p *scriptedPrompter) answer(title string) (string, error) {
	if err := p.record(title); err != nil {
		return "", err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.answers) == 0 {
		return "", fmt.Errorf("unexpected prompt: %s", title)
	}
	v := p.answers[0]
	p.answers = p.answers[1:]
	return v, nil
}

func (p *scriptedPrompter) Input(_ context.Context, title, _ string) (string, error) {
	return p.answer(title)
}

func (p *scriptedPrompter) Password(_ context.Context, title string) (string, error) {
	return p.answer(title)
}

func (p *scriptedPrompter) Text(_ context.Context, title, _ string) (string, error) {
	return p.answer(title)
}
