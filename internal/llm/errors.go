package llm

import "errors"

var (
	// ErrOllamaUnavailable indicates the Ollama server is unreachable.
	ErrOllamaUnavailable = errors.New("ollama server unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the LLM response could not be decoded
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")

	// ErrEmptyResponse indicates the provider answered with no text.
	ErrEmptyResponse = errors.New("llm returned an empty response")

	// ErrNotConfigured indicates a client was requested for a provider
	// that is missing required settings.
	ErrNotConfigured = errors.New("llm provider not configured")
)
