package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/learner/internal/domain"
	"github.com/alexanderramin/learner/internal/nlp"
)

// chatActions binds each natural-language command to the run function the
// explicit command uses. Output goes to w; the returned message is shown in
// the "Done" panel.
type chatActions struct {
	app *App
	w   io.Writer
}

var _ nlp.Actions = (*chatActions)(nil)

func newChatActions(app *App, w io.Writer) *chatActions {
	return &chatActions{app: app, w: w}
}

func (a *chatActions) StartSession(ctx context.Context, minutes int, st domain.SessionType) (nlp.Result, error) {
	s, err := runStartSession(ctx, a.app, a.w, minutes, st)
	if err != nil {
		return nlp.Result{}, err
	}
	return nlp.Result{
		Message: fmt.Sprintf("Started a %d-minute %s session.", s.PlannedMinutes, s.Type),
		Data:    map[string]any{"session_id": s.ID},
	}, nil
}

func (a *chatActions) SessionStatus(ctx context.Context) (nlp.Result, error) {
	st, err := runSessionStatus(ctx, a.app, a.w)
	if err != nil || st == nil {
		return nlp.Result{}, err
	}
	return nlp.Result{Data: map[string]any{"session_id": st.Session.ID}}, nil
}

func (a *chatActions) EndSession(ctx context.Context) (nlp.Result, error) {
	s, err := runEndSession(ctx, a.app, a.w)
	if err != nil {
		return nlp.Result{}, err
	}
	return nlp.Result{
		Message: fmt.Sprintf("Session ended after %d minutes.", s.ActualMinutes),
		Data:    map[string]any{"session_id": s.ID},
	}, nil
}

func (a *chatActions) StartQuiz(ctx context.Context, topic string, count int) (nlp.Result, error) {
	attempt, err := runQuiz(ctx, a.app, a.w, topic, count)
	if err != nil {
		return nlp.Result{}, err
	}
	return nlp.Result{
		Message: fmt.Sprintf("Quiz recorded: %d of %d correct.", attempt.Correct, attempt.Total),
		Data:    map[string]any{"attempt_id": attempt.ID},
	}, nil
}

func (a *chatActions) StartExplanation(ctx context.Context, topic string) (nlp.Result, error) {
	e, err := runExplain(ctx, a.app, a.w, topic, "")
	if err != nil {
		return nlp.Result{}, err
	}
	return nlp.Result{
		Message: fmt.Sprintf("Explanation of %s saved with score %d.", topic, e.Score),
		Data:    map[string]any{"explanation_id": e.ID},
	}, nil
}

func (a *chatActions) ShowStats(ctx context.Context) (nlp.Result, error) {
	_, err := runStats(ctx, a.app, a.w)
	return nlp.Result{}, err
}

func (a *chatActions) ShowProfile(ctx context.Context) (nlp.Result, error) {
	_, err := runShowProfile(ctx, a.app, a.w)
	return nlp.Result{}, err
}

func (a *chatActions) SearchContent(ctx context.Context, query string) (nlp.Result, error) {
	items, err := runSearchContent(ctx, a.app, a.w, query, 0)
	if err != nil {
		return nlp.Result{}, err
	}
	return nlp.Result{Data: map[string]any{"count": len(items)}}, nil
}

func (a *chatActions) Logout(ctx context.Context) (nlp.Result, error) {
	u, err := runLogout(ctx, a.app, a.w)
	if err != nil {
		return nlp.Result{}, err
	}
	return nlp.Result{Message: "You have been logged out.", Data: map[string]any{"email": u.Email}}, nil
}

func (a *chatActions) WhoAmI(ctx context.Context) (nlp.Result, error) {
	u, err := runWhoAmI(ctx, a.app, a.w)
	if err != nil {
		return nlp.Result{}, err
	}
	return nlp.Result{Data: map[string]any{"email": u.Email}}, nil
}
