package chat

import (
	"context"
	"fmt"

	"github.com/arturo/voltz/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and request-logging middleware.
func NewProvider(ctx context.Context, cfg Config, log *store.ChatLog) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
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
		return nil, fmt.Errorf("unknown chat provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller -> retry -> logging -> base.
	// Logging is skipped when no request log is attached.
	if log != nil {
		base = WithLogging(base, log)
	}
	return WithRetry(base, cfg.Retry), nil
}
