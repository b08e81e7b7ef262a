package prompt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

type GeminiOptions struct {
	APIKey       string
	Model        string
	BaseURL      string
	SystemPrompt string
	Temperature  *float32
	HTTPClient   *http.Client
	Logger       zerolog.Logger
}

// GeminiGenerator asks Gemini for an application/json response with the
// system prompt set as the system instruction.
type GeminiGenerator struct {
	client       *genai.Client
	model        string
	systemPrompt string
	temperature  float32
	logger       zerolog.Logger
}

const geminiDefaultTimeout = 60 * time.Second

func NewGeminiGenerator(ctx context.Context, opts GeminiOptions) (*GeminiGenerator, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if strings.TrimSpace(opts.SystemPrompt) == "" {
		return nil, errors.New("system prompt is required")
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: geminiDefaultTimeout}
	}
	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if baseURL := strings.TrimSpace(opts.BaseURL); baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &GeminiGenerator{
		client:       client,
		model:        coalesce(opts.Model, defaultGeminiModel),
		systemPrompt: opts.SystemPrompt,
		temperature:  resolveTemperature(opts.Temperature),
		logger:       opts.Logger,
	}, nil
}

// Model returns the configured model identifier.
func (g *GeminiGenerator) Model() string {
	return g.model
}

func (g *GeminiGenerator) Generate(ctx context.Context, description string) (*Result, error) {
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	temperature := g.temperature
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: g.systemPrompt}},
		},
		Temperature:      &temperature,
		ResponseMIMEType: "application/json",
	}
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: description}},
	}}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, providerError(geminiProviderName, "generate_content", err)
	}
	text := extractGeminiText(resp)
	if text == "" {
		return nil, providerError(geminiProviderName, "empty_response", errors.New("no text candidates"))
	}
	return buildResult(g.logger, geminiProviderName, g.model, text), nil
}

func extractGeminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return strings.TrimSpace(sb.String())
}

var _ Generator = (*GeminiGenerator)(nil)
