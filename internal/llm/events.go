package llm

import "context"

// LLMRequestEventData captures one provider call for observability.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRepo is the append-only sink for request events. The store
// package provides the SQLite-backed implementation; defining the
// interface here keeps the provider layer free of storage imports.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}
