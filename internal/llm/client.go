package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
	JSON         bool     // ask the backend for a JSON-only response
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
// Callers must treat Text as untrusted input.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available reports whether the backend can currently serve requests.
	Available(ctx context.Context) bool
}

// Float returns a pointer to v, for GenerateRequest.Temperature.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for GenerateRequest.MaxTokens.
func Int(v int) *int { return &v }

type ollamaClient struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
}

// NewOllamaClient creates an LLMClient that talks to an Ollama server.
func NewOllamaClient(cfg LLMConfig, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &ollamaClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
			},
		},
		observer: observer,
	}
}

// ollamaRequest is the JSON body sent to POST /api/generate.
type ollamaRequest struct {
	Model   string        `json:"model"`
	System  string        `json:"system,omitempty"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Format  string        `json:"format,omitempty"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// ollamaResponse is the non-streaming body returned by POST /api/generate.
type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (c *ollamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()
	temp, maxTok := c.cfg.resolve(req)

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TaskTimeout(req.Task))*time.Millisecond)
	defer cancel()

	body := ollamaRequest{
		Model:   c.cfg.Model,
		System:  req.SystemPrompt,
		Prompt:  req.UserPrompt,
		Options: ollamaOptions{Temperature: temp, NumPredict: maxTok},
	}
	if req.JSON {
		body.Format = "json"
	}

	event := LLMCallEvent{Task: req.Task, Provider: ProviderOllama, Model: c.cfg.Model}
	var lastErr error
	for attempt := 0; attempt <= c.cfg.TaskRetries(req.Task); attempt++ {
		event.Attempts = attempt + 1
		resp, err := c.post(ctx, body)
		if err == nil {
			event.Success = true
			event.LatencyMs = time.Since(start).Milliseconds()
			c.observer.OnCallComplete(event)
			return &GenerateResponse{Text: resp.Response, Model: resp.Model, LatencyMs: event.LatencyMs}, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	switch {
	case ctx.Err() != nil:
		lastErr = ErrTimeout
	case isConnectionError(lastErr):
		lastErr = ErrOllamaUnavailable
	default:
		lastErr = fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
	}
	event.LatencyMs = time.Since(start).Milliseconds()
	event.ErrorCode = errorCode(lastErr)
	c.observer.OnCallComplete(event)
	return nil, lastErr
}

func (c *ollamaClient) post(ctx context.Context, body ollamaRequest) (*ollamaResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+"/api/generate", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama returned status %d: %s", httpResp.StatusCode, truncate(string(respBody), 200))
	}

	var resp ollamaResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &resp, nil
}

func (c *ollamaClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// NewClient builds the client for cfg.Provider.
func NewClient(ctx context.Context, cfg LLMConfig, observer Observer) (LLMClient, error) {
	switch cfg.Provider {
	case ProviderOllama, "":
		return NewOllamaClient(cfg, observer), nil
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg, observer)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrNotConfigured, cfg.Provider)
	}
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrOllamaUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	case errors.Is(err, ErrEmptyResponse):
		return "EMPTY"
	default:
		return "UNKNOWN"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
