package llm

import "testing"

func TestConfigValidate_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock provider should validate without a key: %v", err)
	}
}

func TestConfigValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing anthropic key")
	}
}

func TestConfigValidate_FallbackSameAsPrimary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	cfg.Fallback = "mock"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for fallback == primary")
	}
}

func TestConfigValidate_FallbackNeedsKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	cfg.Fallback = "openai"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for fallback without key")
	}

	cfg.OpenAI.APIKey = "sk-test"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error with fallback key set: %v", err)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("KOTOBA_LLM_PROVIDER", "gemini")
	t.Setenv("KOTOBA_LLM_FALLBACK", "openai")
	t.Setenv("KOTOBA_GEMINI_API_KEY", "g-key")
	t.Setenv("KOTOBA_OPENAI_API_KEY", "o-key")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Fallback != "openai" {
		t.Errorf("fallback = %q, want openai", cfg.Fallback)
	}
	if cfg.Gemini.APIKey != "g-key" || cfg.OpenAI.APIKey != "o-key" {
		t.Error("API keys not picked up from env")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
