package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects the primary backend.
	// Values: "anthropic", "openai", "gemini", "openrouter", "mock"
	Provider string

	// Fallback optionally names a second backend used by the generation
	// orchestrator when the primary fails a whole enhancement pass.
	// Empty means no cross-provider fallback.
	Fallback string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional override for OpenAI-compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.0-flash-exp"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures transport-level retry behavior.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "anthropic",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.0-flash-exp",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// ConfigFromEnv builds a Config from KOTOBA_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("KOTOBA_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if p := os.Getenv("KOTOBA_LLM_FALLBACK"); p != "" {
		cfg.Fallback = p
	}

	if k := os.Getenv("KOTOBA_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("KOTOBA_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("KOTOBA_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("KOTOBA_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("KOTOBA_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("KOTOBA_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("KOTOBA_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if k := os.Getenv("KOTOBA_OPENROUTER_API_KEY"); k != "" {
		cfg.OpenRouter.APIKey = k
	}
	if m := os.Getenv("KOTOBA_OPENROUTER_MODEL"); m != "" {
		cfg.OpenRouter.Model = m
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (Gemini → OpenAI → Anthropic → OpenRouter) and returns a Config for
// the first provider whose key is found. When a second key is present
// its provider becomes the fallback. Returns (Config{}, false) if no
// key is found at all.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	type probe struct {
		envVar   string
		provider string
		set      func(string)
	}
	probes := []probe{
		{"GEMINI_API_KEY", "gemini", func(k string) { cfg.Gemini.APIKey = k }},
		{"OPENAI_API_KEY", "openai", func(k string) { cfg.OpenAI.APIKey = k }},
		{"ANTHROPIC_API_KEY", "anthropic", func(k string) { cfg.Anthropic.APIKey = k }},
		{"OPENROUTER_API_KEY", "openrouter", func(k string) { cfg.OpenRouter.APIKey = k }},
	}

	found := false
	for _, p := range probes {
		k := os.Getenv(p.envVar)
		if k == "" {
			continue
		}
		p.set(k)
		if !found {
			cfg.Provider = p.provider
			found = true
		} else if cfg.Fallback == "" {
			cfg.Fallback = p.provider
		}
	}

	if !found {
		return Config{}, false
	}
	return cfg, true
}

// Validate checks that the selected providers have their API keys set.
func (c Config) Validate() error {
	if err := c.validateProvider(c.Provider); err != nil {
		return err
	}
	if c.Fallback != "" {
		if c.Fallback == c.Provider {
			return fmt.Errorf("fallback provider must differ from the primary (%q)", c.Provider)
		}
		return c.validateProvider(c.Fallback)
	}
	return nil
}

func (c Config) validateProvider(name string) error {
	switch name {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("KOTOBA_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("KOTOBA_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("KOTOBA_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("KOTOBA_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", name)
	}
	return nil
}
