package llm

import "go.uber.org/zap"

// LLMCallEvent records metadata about a single LLM invocation.
type LLMCallEvent struct {
	Task      TaskType
	Provider  Provider
	Model     string
	LatencyMs int64
	Attempts  int
	Success   bool
	ErrorCode string
}

// Observer receives events about LLM calls for logging and metrics.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// ZapObserver logs LLM call events through a zap logger.
type ZapObserver struct {
	logger *zap.Logger
}

// NewZapObserver creates an Observer that logs each call at info level,
// or at warn level when the call failed.
func NewZapObserver(logger *zap.Logger) *ZapObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapObserver{logger: logger.Named("llm")}
}

func (o *ZapObserver) OnCallComplete(event LLMCallEvent) {
	fields := []zap.Field{
		zap.String("task", string(event.Task)),
		zap.String("provider", string(event.Provider)),
		zap.String("model", event.Model),
		zap.Int64("latency_ms", event.LatencyMs),
		zap.Int("attempts", event.Attempts),
	}
	if !event.Success {
		o.logger.Warn("llm_call", append(fields, zap.String("error_code", event.ErrorCode))...)
		return
	}
	o.logger.Info("llm_call", fields...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}
