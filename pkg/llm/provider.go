package llm

import (
	"context"
	"fmt"
)

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// KnownProvider reports whether name selects one of the built-in adapters.
func KnownProvider(name string) bool {
	switch name {
	case ProviderGemini, ProviderOpenAI, ProviderAnthropic:
		return true
	}
	return false
}

// NewGenerator builds the adapter for provider. An empty model selects the
// provider's default.
func NewGenerator(ctx context.Context, provider, apiKey, model string) (Generator, error) {
	switch provider {
	case ProviderGemini:
		client, err := NewGeminiClient(ctx, apiKey, model)
		if err != nil {
			return nil, err
		}
		return client, nil
	case ProviderOpenAI:
		return NewOpenAIClient(apiKey, model), nil
	case ProviderAnthropic:
		return NewAnthropicClient(apiKey, model), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", provider)
	}
}
