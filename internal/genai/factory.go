package genai

import (
	"fmt"
	"time"
)

// Supported provider names.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// ProviderConfig configures one generation backend. The chat and extraction
// stages each get their own instance so they never share state.
type ProviderConfig struct {
	Provider      string // "gemini" (default) or "openai"
	APIKey        string
	BaseURL       string // OpenAI-compatible endpoints only
	Model         string
	Temperature   float64
	RetryAttempts int
	RetryDelay    time.Duration
}

// NewGenerator builds the configured backend wrapped in the bounded retry.
func NewGenerator(cfg ProviderConfig) (Generator, error) {
	var gen Generator
	switch cfg.Provider {
	case "", ProviderGemini:
		gen = NewGeminiClient(cfg.APIKey, cfg.Model, cfg.Temperature)
	case ProviderOpenAI:
		gen = NewOpenAIClient(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Temperature)
	default:
		return nil, fmt.Errorf("unknown provider type: %s (supported: %s, %s)",
			cfg.Provider, ProviderGemini, ProviderOpenAI)
	}
	return WithRetry(gen, cfg.RetryAttempts, cfg.RetryDelay), nil
}
