package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

type geminiClient struct {
	cfg      LLMConfig
	client   *genai.Client
	observer Observer
}

// NewGeminiClient creates an LLMClient backed by the Gemini API.
// cfg.Endpoint, when set, overrides the API base URL.
func NewGeminiClient(ctx context.Context, cfg LLMConfig, observer Observer) (LLMClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini api key is required", ErrNotConfigured)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: gemini model is required", ErrNotConfigured)
	}
	if observer == nil {
		observer = NoopObserver{}
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.Endpoint != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.Endpoint}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &geminiClient{cfg: cfg, client: client, observer: observer}, nil
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()
	temp, maxTok := c.cfg.resolve(req)

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TaskTimeout(req.Task))*time.Millisecond)
	defer cancel()

	gcfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(temp)),
		MaxOutputTokens: int32(maxTok),
	}
	if req.JSON {
		gcfg.ResponseMIMEType = "application/json"
	}
	if req.SystemPrompt != "" {
		gcfg.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	event := LLMCallEvent{Task: req.Task, Provider: ProviderGemini, Model: c.cfg.Model}
	var lastErr error
	for attempt := 0; attempt <= c.cfg.TaskRetries(req.Task); attempt++ {
		event.Attempts = attempt + 1
		resp, err := c.client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(req.UserPrompt), gcfg)
		if err == nil {
			text := resp.Text()
			if strings.TrimSpace(text) == "" {
				lastErr = ErrEmptyResponse
				continue
			}
			event.Success = true
			event.LatencyMs = time.Since(start).Milliseconds()
			c.observer.OnCallComplete(event)
			return &GenerateResponse{Text: text, Model: c.cfg.Model, LatencyMs: event.LatencyMs}, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	switch {
	case ctx.Err() != nil || errors.Is(lastErr, context.DeadlineExceeded):
		lastErr = ErrTimeout
	case errors.Is(lastErr, ErrEmptyResponse):
	default:
		lastErr = fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
	}
	event.LatencyMs = time.Since(start).Milliseconds()
	event.ErrorCode = errorCode(lastErr)
	c.observer.OnCallComplete(event)
	return nil, lastErr
}

func (c *geminiClient) Available(context.Context) bool {
	return c.client != nil
}
