package llm

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	// TaskClassify maps a learner's free-form command to an intent.
	TaskClassify TaskType = "classify"
	// TaskExplain critiques a Feynman-style explanation.
	TaskExplain TaskType = "explain"
)

// Provider names a backend that can serve GenerateRequests.
type Provider string

const (
	ProviderOllama Provider = "ollama"
	ProviderGemini Provider = "gemini"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
	NoRetry     bool
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Provider   Provider
	Endpoint   string
	Model      string
	APIKey     string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig pointing at a local Ollama instance.
// LLM features are disabled by default.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Provider:   ProviderOllama,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  10000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskClassify: {Temperature: 0.1, MaxTokens: 150, TimeoutMs: 10000, NoRetry: true},
			TaskExplain:  {Temperature: 0.3, MaxTokens: 512, TimeoutMs: 15000},
		},
	}
}

// TaskTimeout returns the effective timeout in milliseconds for a task.
// The task-specific timeout wins when set.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

// TaskRetries returns how many times a failed call for task is retried.
// Classification never retries: the learner resubmits instead.
func (c LLMConfig) TaskRetries(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.NoRetry {
		return 0
	}
	return c.MaxRetries
}

// SetTaskTimeout overrides the timeout for one task, ignoring non-positive values.
func (c *LLMConfig) SetTaskTimeout(task TaskType, ms int) {
	if ms <= 0 {
		return
	}
	if c.Tasks == nil {
		c.Tasks = map[TaskType]TaskConfig{}
	}
	tc := c.Tasks[task]
	tc.TimeoutMs = ms
	c.Tasks[task] = tc
}

// resolve fills in the temperature and token budget for a request,
// preferring explicit request values over task defaults.
func (c LLMConfig) resolve(req GenerateRequest) (float64, int) {
	tc := c.Tasks[req.Task]
	temp, maxTok := tc.Temperature, tc.MaxTokens
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}
	return temp, maxTok
}
