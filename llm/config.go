package llm

import (
	"context"
	"fmt"
	"os"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	defaultGeminiModel = "gemini-1.5-pro"
	defaultOpenAIModel = "gpt-4o-mini"
)

// Config selects the hosted model for one invocation. It is resolved once in
// main and passed down explicitly, nothing in this package keeps ambient
// model state.
type Config struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// ConfigFromEnv reads the provider selection and credential from the
// environment. Gemini with GOOGLE_API_KEY is the default; HARNESS_PROVIDER,
// HARNESS_MODEL and OPENAI_BASE_URL override.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		Provider: os.Getenv("HARNESS_PROVIDER"),
		Model:    os.Getenv("HARNESS_MODEL"),
		BaseURL:  os.Getenv("OPENAI_BASE_URL"),
	}
	if cfg.Provider == "" {
		cfg.Provider = ProviderGemini
	}
	switch cfg.Provider {
	case ProviderGemini:
		cfg.APIKey = os.Getenv("GOOGLE_API_KEY")
		if cfg.APIKey == "" {
			return Config{}, fmt.Errorf("api key GOOGLE_API_KEY not set")
		}
		if cfg.Model == "" {
			cfg.Model = defaultGeminiModel
		}
	case ProviderOpenAI:
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.APIKey == "" {
			return Config{}, fmt.Errorf("api key OPENAI_API_KEY not set")
		}
		if cfg.Model == "" {
			cfg.Model = defaultOpenAIModel
		}
	default:
		return Config{}, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
	return cfg, nil
}

// NewClient builds the provider client described by cfg.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	case ProviderOpenAI:
		return NewOpenAIClient(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
