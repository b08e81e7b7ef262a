package prompt

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
)

type OpenAIOptions struct {
	APIKey       string
	Model        string
	BaseURL      string
	Organization string
	SystemPrompt string
	Temperature  *float32
	HTTPClient   *http.Client
	Logger       zerolog.Logger
	OnWarning    func(reason, detail string)
}

// OpenAIGenerator sends the system prompt and the description to the chat
// completions endpoint in JSON-object mode.
type OpenAIGenerator struct {
	client       *openai.Client
	model        string
	systemPrompt string
	temperature  float32
	logger       zerolog.Logger
}

const openAIDefaultTimeout = 60 * time.Second

func NewOpenAIGenerator(opts OpenAIOptions) (*OpenAIGenerator, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}
	if strings.TrimSpace(opts.SystemPrompt) == "" {
		return nil, errors.New("system prompt is required")
	}
	modelInput := strings.TrimSpace(opts.Model)
	model, reason := normalizeOpenAIModel(modelInput)
	if reason != "" && opts.OnWarning != nil {
		opts.OnWarning("model_"+reason, fmt.Sprintf("requested=%s resolved=%s", coalesce(modelInput, defaultOpenAIModel), model))
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.OrgID = strings.TrimSpace(opts.Organization)
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: openAIDefaultTimeout}
	}
	cfg.HTTPClient = httpClient
	return &OpenAIGenerator{
		client:       openai.NewClientWithConfig(cfg),
		model:        model,
		systemPrompt: opts.SystemPrompt,
		temperature:  resolveTemperature(opts.Temperature),
		logger:       opts.Logger,
	}, nil
}

// Model returns the resolved model identifier.
func (o *OpenAIGenerator) Model() string {
	return o.model
}

func (o *OpenAIGenerator) Generate(ctx context.Context, description string) (*Result, error) {
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	temperature := o.temperature
	if temperature == 0 {
		// the request field is omitempty; a zero would fall back to the API default of 1
		temperature = math.SmallestNonzeroFloat32
	}
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: o.systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: description},
		},
	})
	if err != nil {
		return nil, providerError(openAIProviderName, "chat_completion", err)
	}
	if len(resp.Choices) == 0 {
		return nil, providerError(openAIProviderName, "empty_choices", errors.New("no choices"))
	}
	o.logger.Debug().
		Str("provider", openAIProviderName).
		Str("model", o.model).
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Msg("chat completion finished")
	return buildResult(o.logger, openAIProviderName, o.model, resp.Choices[0].Message.Content), nil
}

var _ Generator = (*OpenAIGenerator)(nil)
