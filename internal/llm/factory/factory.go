package factory

import (
	"context"
	"fmt"

	"github.com/iWorld-y/venture_radar/internal/config"
	"github.com/iWorld-y/venture_radar/internal/llm"
	"github.com/iWorld-y/venture_radar/internal/llm/openaichat"
	"github.com/iWorld-y/venture_radar/internal/llm/together"
)

// NewGenerator builds the configured narrative generation provider.
func NewGenerator(ctx context.Context, cfg config.LLMConfig) (llm.Generator, error) {
	provider := cfg.Provider
	if provider == "" {
		provider = "together"
	}

	switch provider {
	case "together":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("together api key is missing")
		}
		return together.NewClient(cfg.APIKey, cfg.Model), nil

	case "openai":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("openai base url is missing")
		}
		return openaichat.NewClient(ctx, cfg.BaseURL, cfg.APIKey, cfg.Model,
			llm.Temperature, llm.TopP, llm.MaxTokens, llm.StopSequences)

	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
