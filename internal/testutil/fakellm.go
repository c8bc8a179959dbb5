package testutil

import (
	"context"
	"sync"

	"github.com/alexanderramin/learner/internal/llm"
)

// FakeLLM is an llm.LLMClient returning canned output. It records every
// request so tests can assert whether, and how, the service was called.
type FakeLLM struct {
	Response string
	Err      error

	mu       sync.Mutex
	requests []llm.GenerateRequest
}

// NewFakeLLM returns a FakeLLM that answers every call with response.
func NewFakeLLM(response string) *FakeLLM {
	return &FakeLLM{Response: response}
}

func (f *FakeLLM) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	return &llm.GenerateResponse{Text: f.Response, Model: "fake"}, nil
}

func (f *FakeLLM) Available(context.Context) bool { return f.Err == nil }

// Calls returns how many times Generate ran.
func (f *FakeLLM) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// LastRequest returns the most recent request, or the zero value.
func (f *FakeLLM) LastRequest() llm.GenerateRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return llm.GenerateRequest{}
	}
	return f.requests[len(f.requests)-1]
}
