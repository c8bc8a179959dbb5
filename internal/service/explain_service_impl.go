package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/learner/internal/domain"
	"github.com/alexanderramin/learner/internal/llm"
	"github.com/alexanderramin/learner/internal/repository"
)

const maxGaps = 4

type explainFeedback struct {
	Score    int      `json:"score"`
	Gaps     []string `json:"gaps"`
	FollowUp string   `json:"follow_up"`
}

// llmFeedback tolerates fractional scores from the model.
type llmFeedback struct {
	Score    float64  `json:"score"`
	Gaps     []string `json:"gaps"`
	FollowUp string   `json:"follow_up"`
}

func validateFeedback(fb llmFeedback) error {
	if fb.Score < 0 || fb.Score > 100 || math.IsNaN(fb.Score) {
		return fmt.Errorf("score %v out of range", fb.Score)
	}
	if strings.TrimSpace(fb.FollowUp) == "" {
		return errors.New("follow_up is empty")
	}
	return nil
}

type explainService struct {
	explanations repository.ExplanationRepo
	client       llm.LLMClient
	now          func() time.Time
	observer     UseCaseObserver
}

// NewExplainService creates an ExplainService. A nil client always uses the
// built-in rubric.
func NewExplainService(explanations repository.ExplanationRepo, client llm.LLMClient, observers ...UseCaseObserver) ExplainService {
	return &explainService{
		explanations: explanations,
		client:       client,
		now:          time.Now,
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *explainService) Prompt(topic string) string {
	return fmt.Sprintf("Explain %s in plain words, as if teaching someone who has never heard of it.", topic)
}

func (s *explainService) Evaluate(ctx context.Context, userID, topic, text string) (_ *domain.Explanation, err error) {
	fields := map[string]any{"topic": topic, "source": "rubric"}
	defer observe(ctx, s.observer, "explain.evaluate", time.Now(), &err, fields)

	topic = strings.TrimSpace(topic)
	text = strings.TrimSpace(text)
	if topic == "" {
		return nil, fmt.Errorf("%w: topic is required", ErrInvalidInput)
	}
	if text == "" {
		return nil, fmt.Errorf("%w: explanation is required", ErrInvalidInput)
	}

	fb, ok := s.feedbackFromLLM(ctx, topic, text)
	if ok {
		fields["source"] = "llm"
	} else {
		fb = rubricFeedback(topic, text)
	}

	e := &domain.Explanation{
		ID:        uuid.New().String(),
		UserID:    userID,
		Topic:     topic,
		Text:      text,
		Score:     fb.Score,
		Gaps:      fb.Gaps,
		FollowUp:  fb.FollowUp,
		CreatedAt: s.now().UTC(),
	}
	if err := s.explanations.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// feedbackFromLLM returns false when the model is absent, fails, or
// answers with something unusable.
func (s *explainService) feedbackFromLLM(ctx context.Context, topic, text string) (explainFeedback, bool) {
	if s.client == nil {
		return explainFeedback{}, false
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskExplain,
		SystemPrompt: explainSystemPrompt,
		UserPrompt:   explainUserPrompt(topic, text),
		JSON:         true,
	})
	if err != nil {
		return explainFeedback{}, false
	}

	raw, err := llm.ExtractJSON[llmFeedback](resp.Text, validateFeedback)
	if err != nil {
		return explainFeedback{}, false
	}

	fb := explainFeedback{Score: int(math.Round(raw.Score)), FollowUp: strings.TrimSpace(raw.FollowUp)}
	for _, g := range raw.Gaps {
		if g = strings.TrimSpace(g); g != "" && len(fb.Gaps) < maxGaps {
			fb.Gaps = append(fb.Gaps, g)
		}
	}
	return fb, true
}
