package assistant

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/spec-kit/job-tracker/internal/config"
)

// NewModel builds the configured provider client. It returns a nil model when
// the provider credential is missing; the Assistant reports that per request.
func NewModel(ctx context.Context, cfg config.AIConfig) (llms.Model, error) {
	if cfg.APIKey() == "" {
		return nil, nil
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		model, err := googleai.New(ctx,
			googleai.WithAPIKey(cfg.GeminiAPIKey),
			googleai.WithDefaultModel(cfg.GeminiModel),
		)
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		return model, nil
	case config.ProviderGroq:
		// Groq exposes an OpenAI compatible chat completions API.
		model, err := openai.New(
			openai.WithToken(cfg.GroqAPIKey),
			openai.WithBaseURL(cfg.GroqBaseURL),
			openai.WithModel(cfg.GroqModel),
		)
		if err != nil {
			return nil, fmt.Errorf("create groq client: %w", err)
		}
		return model, nil
	default:
		return nil, fmt.Errorf("unsupported provider %q", cfg.Provider)
	}
}
