package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction every LLM call in Kotoba goes
// through. The generation pipeline and the turn judge depend only on
// this interface; which vendor answers is wiring, not logic.
type Provider interface {
	// Generate sends a prompt to the model and returns its output.
	// When the request carries a Schema the provider asks for JSON
	// conforming to it and validates the result before returning.
	// Deadlines are the caller's responsibility via ctx.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes one model call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. Lesson generation sends a
	// single user message; the turn judge sends a bounded history window.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform to.
	// The provider uses its native structured-output mechanism and the
	// response Content is the validated JSON. When nil, Content is raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Message is one entry in the conversation history.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "lesson-skeleton".
	Name string

	// Description tells the model what this shape represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. Validated JSON when the request
	// carried a Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
