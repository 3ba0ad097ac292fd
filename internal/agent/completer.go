package agent

import (
	"context"

	"book-curator/backend/internal/agent/deps"
	"book-curator/backend/internal/config"
)

// NewCompleter builds the configured provider's client wrapped in a GuardedCompleter.
func NewCompleter(ctx context.Context, cfg *config.Config) (deps.Completer, error) {
	if err := cfg.ValidateForCompletion(); err != nil {
		return nil, err
	}

	var (
		next deps.Completer
		err  error
	)
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		next, err = NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		next, err = NewOpenAIClient(OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
			Timeout: cfg.CompletionTimeout,
		})
	}
	if err != nil {
		return nil, err
	}

	return NewGuardedCompleter(cfg.LLMProvider, next, cfg.CompletionTimeout), nil
}
