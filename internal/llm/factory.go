package llm

import (
	"context"
	"fmt"

	"github.com/nandita/prepwise/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, calls store.LLMCallRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, calls)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a Provider from PREPWISE_* env vars, falling back
// to standard API key discovery when no provider is selected explicitly.
func NewProviderFromEnv(ctx context.Context, calls store.LLMCallRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, calls)
}

// NewTranscriber creates a Transcriber from configuration. Speech-to-text is
// served by the OpenAI Whisper endpoint regardless of the chat provider, so
// this requires an OpenAI (or compatible) API key.
func NewTranscriber(cfg Config) (Transcriber, error) {
	key := cfg.OpenAI.APIKey
	if key == "" && cfg.Provider == "openrouter" {
		key = cfg.OpenRouter.APIKey
	}
	if key == "" {
		return nil, fmt.Errorf("transcription requires an OpenAI API key")
	}
	return NewOpenAIProvider(OpenAIConfig{
		APIKey:  key,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
	})
}
