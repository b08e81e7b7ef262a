package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"imageprompt/internal/domain"
	"imageprompt/internal/domain/imagespec"
)

// Generator turns a free-text image description into an image spec. Each call
// makes at most one upstream request and never retries.
type Generator interface {
	Generate(ctx context.Context, description string) (*Result, error)
}

// Result carries the parsed spec along with the raw model text. When the text
// is not a JSON object, Spec is empty and ParseErr records why.
type Result struct {
	Spec     imagespec.Spec
	Raw      string
	ParseErr error
	Provider string
	Model    string
}

// Parsed reports whether the model text decoded into an object.
func (r *Result) Parsed() bool {
	return r != nil && r.ParseErr == nil
}

// DefaultTemperature is the sampling temperature used when none is configured.
const DefaultTemperature = 0.5

// resolveTemperature returns t, or DefaultTemperature when t is nil. Zero is
// a valid setting.
func resolveTemperature(t *float32) float32 {
	if t == nil {
		return DefaultTemperature
	}
	return *t
}

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return domain.ErrEmptyDescription
	}
	return nil
}

func providerError(provider, stage string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", domain.ErrProviderFailure, provider, stage, err)
}

// buildResult parses the model text. Parse failures are logged and swallowed;
// the caller gets an empty spec and can inspect ParseErr.
func buildResult(logger zerolog.Logger, provider, model, text string) *Result {
	res := &Result{Raw: text, Provider: provider, Model: model}
	spec, err := imagespec.Parse(trimCodeFence(text))
	if err != nil {
		logger.Warn().
			Err(err).
			Str("provider", provider).
			Str("model", model).
			Str("raw", text).
			Msg("model response is not a valid json object")
		res.Spec = imagespec.Empty()
		res.ParseErr = err
		return res
	}
	res.Spec = spec
	return res
}
