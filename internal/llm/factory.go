package llm

import (
	"context"
	"fmt"
)

// NewProvider creates the primary Provider from configuration, wrapped
// with retry and event-logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo EventRepo) (Provider, error) {
	return buildProvider(ctx, cfg, cfg.Provider, eventRepo)
}

// NewFallbackProvider creates the configured fallback Provider, or
// (nil, nil) when no fallback is configured. The orchestrator switches
// to it when the primary fails a whole enhancement pass.
func NewFallbackProvider(ctx context.Context, cfg Config, eventRepo EventRepo) (Provider, error) {
	if cfg.Fallback == "" {
		return nil, nil
	}
	return buildProvider(ctx, cfg, cfg.Fallback, eventRepo)
}

// NewProviderFromEnv builds the primary provider from KOTOBA_* env vars,
// falling back to probing the standard API key vars.
func NewProviderFromEnv(ctx context.Context, eventRepo EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}

func buildProvider(ctx context.Context, cfg Config, name string, eventRepo EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch name {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", name, err)
	}

	// Middleware order: caller → retry → logging → base.
	logged := WithLogging(base, name, eventRepo)
	return WithRetry(logged, cfg.Retry), nil
}
