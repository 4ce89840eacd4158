package ai

import (
	"context"
	"fmt"

	"ecoroute/internal/config"
)

// NewFromConfig builds the configured backend. The returned close func releases
// client resources and is never nil when err is nil.
func NewFromConfig(ctx context.Context, cfg config.AIConfig) (Provider, func() error, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		p, err := NewOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
		if err != nil {
			return nil, nil, err
		}
		return p, func() error { return nil }, nil
	case config.ProviderGemini:
		p, err := NewGeminiProvider(ctx, cfg.GeminiKey, cfg.GeminiModel)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown text generation provider %q", cfg.Provider)
	}
}
