package gen

import (
	"context"
	"fmt"

	"journalgen/internal/config"
)

// NewClient builds the model client selected by config.
func NewClient(ctx context.Context, cfg config.AIConfig) (Client, error) {
	switch cfg.Provider {
	case "gemini", "":
		return NewGeminiClient(ctx, cfg.Key(), cfg.Model)
	case "openai":
		return NewOpenAIClient(cfg.Key(), cfg.BaseURL, cfg.Model)
	case "claude", "anthropic":
		return NewAnthropicClient(cfg.Key(), cfg.Model)
	default:
		return nil, fmt.Errorf("unknown provider %q (expected gemini, openai or claude)", cfg.Provider)
	}
}
