package nlp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/learner/internal/llm"
)

const (
	// MinConfidence is the lowest classifier confidence accepted at all.
	MinConfidence = 0.5
	// ConfirmationThreshold is the confidence below which any command asks first.
	ConfirmationThreshold = 0.8

	classifyTemperature = 0.1
	classifyMaxTokens   = 150
)

// Classification is the classifier's structured reading of one command.
type Classification struct {
	Intent     string
	Confidence float64
	Params     map[string]any
}

// Classifier asks the language service which command text refers to. It
// never executes anything.
type Classifier struct {
	client llm.LLMClient
}

func NewClassifier(client llm.LLMClient) *Classifier {
	return &Classifier{client: client}
}

// rawClassification accepts loosely typed model output; coercion happens after decoding.
type rawClassification struct {
	Intent     any `json:"intent"`
	Confidence any `json:"confidence"`
	Params     any `json:"params"`
}

// Classify sends sanitized text to the language service. Unusable output,
// transport failures and confidence below MinConfidence are KindParse errors.
func (c *Classifier) Classify(ctx context.Context, text string, authenticated bool) (Classification, error) {
	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskClassify,
		SystemPrompt: classifySystemPrompt,
		UserPrompt:   buildClassifyPrompt(text, authenticated),
		Temperature:  llm.Float(classifyTemperature),
		MaxTokens:    llm.Int(classifyMaxTokens),
		JSON:         true,
	})
	if err != nil {
		return Classification{}, &Error{
			Kind:   KindParse,
			Reason: fmt.Sprintf("Failed to process command: %v", err),
			Err:    err,
		}
	}

	raw, err := llm.ExtractJSON[rawClassification](resp.Text, nil)
	if err != nil {
		return Classification{}, unparseable(err)
	}

	out, err := raw.coerce()
	if err != nil {
		return Classification{}, unparseable(err)
	}
	if out.Confidence < MinConfidence {
		return Classification{}, &Error{
			Kind:   KindParse,
			Reason: "I'm not sure what you want to do. Please try rephrasing.",
			Hint:   examplesHint,
		}
	}
	return out, nil
}

func unparseable(err error) error {
	return &Error{
		Kind:   KindParse,
		Reason: "Could not understand the command. Please try rephrasing.",
		Hint:   examplesHint,
		Err:    err,
	}
}

func (r rawClassification) coerce() (Classification, error) {
	out := Classification{Intent: IntentUnknown, Params: map[string]any{}}

	switch v := r.Intent.(type) {
	case nil:
	case string:
		if s := strings.TrimSpace(v); s != "" {
			out.Intent = s
		}
	default:
		return out, fmt.Errorf("intent must be a string, got %T", r.Intent)
	}

	conf, err := toConfidence(r.Confidence)
	if err != nil {
		return out, err
	}
	out.Confidence = math.Max(0, math.Min(1, conf))

	switch p := r.Params.(type) {
	case nil:
	case map[string]any:
		out.Params = p
	default:
		return out, fmt.Errorf("params must be an object, got %T", r.Params)
	}
	return out, nil
}

func toConfidence(v any) (float64, error) {
	var f float64
	switch c := v.(type) {
	case nil:
		return 0, nil
	case float64:
		f = c
	case json.Number:
		n, err := c.Float64()
		if err != nil {
			return 0, fmt.Errorf("confidence: %w", err)
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		if err != nil {
			return 0, fmt.Errorf("confidence: %w", err)
		}
		f = n
	default:
		return 0, fmt.Errorf("confidence must be a number, got %T", v)
	}
	if math.IsNaN(f) {
		return 0, errors.New("confidence is NaN")
	}
	return f, nil
}
