package prompt

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"imageprompt/internal/domain"
	"imageprompt/internal/infra"
	"imageprompt/internal/providers/prompt/assets"
)

// NewFromConfig builds the generator selected by cfg.PromptProvider with the
// system prompt loaded from cfg.PromptTemplatePath or the embedded asset.
func NewFromConfig(ctx context.Context, cfg *infra.Config, logger zerolog.Logger) (Generator, error) {
	systemPrompt, err := assets.Load(cfg.PromptTemplatePath)
	if err != nil {
		return nil, err
	}
	httpClient := &http.Client{Timeout: cfg.ProviderTimeout}
	temperature := float32(cfg.PromptTemperature)
	providerLogger := logger.With().Str("component", "prompt").Str("provider", cfg.PromptProvider).Logger()

	promptVersion := assets.SystemPromptVersion
	if cfg.PromptTemplatePath != "" {
		promptVersion = "custom"
	}
	providerLogger.Info().
		Str("system_prompt_version", promptVersion).
		Float32("temperature", temperature).
		Msg("prompt generator configured")

	switch cfg.PromptProvider {
	case infra.ProviderOpenAI:
		return NewOpenAIGenerator(OpenAIOptions{
			APIKey:       cfg.OpenAIAPIKey,
			Model:        cfg.OpenAIModel,
			BaseURL:      cfg.OpenAIBaseURL,
			Organization: cfg.OpenAIOrg,
			SystemPrompt: systemPrompt,
			Temperature:  &temperature,
			HTTPClient:   httpClient,
			Logger:       providerLogger,
			OnWarning: func(reason, detail string) {
				providerLogger.Warn().Str("reason", reason).Msg(detail)
			},
		})
	case infra.ProviderGemini:
		return NewGeminiGenerator(ctx, GeminiOptions{
			APIKey:       cfg.GeminiAPIKey,
			Model:        cfg.GeminiModel,
			BaseURL:      cfg.GeminiBaseURL,
			SystemPrompt: systemPrompt,
			Temperature:  &temperature,
			HTTPClient:   httpClient,
			Logger:       providerLogger,
		})
	case infra.ProviderStatic:
		return NewStaticGenerator(), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedProvider, cfg.PromptProvider)
	}
}
