package openrouter

import (
	"context"
	"errors"

	"github.com/revrost/go-openrouter"

	"github.com/inercia/go-agents/pkg/llm"
)

// SecretName is the resolver key consulted for the OpenRouter API key
const SecretName = "OPENROUTER_API_KEY"

const providerName = "OpenRouter"

// Attribution header defaults sent when the agent config leaves them unset
const (
	DefaultReferer = "https://github.com/inercia/go-agents"
	DefaultTitle   = "go-agents"
)

// Provider implements llm.Provider for OpenRouter
type Provider struct {
	secrets llm.SecretResolver
}

// Option configures a Provider
type Option func(*Provider)

// WithSecretResolver injects the resolver consulted for API keys
func WithSecretResolver(secrets llm.SecretResolver) Option {
	return func(p *Provider) { p.secrets = secrets }
}

// New creates the OpenRouter provider
func New(opts ...Option) *Provider {
	p := &Provider{secrets: llm.EnvResolver{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the provider kind identifier
func (p *Provider) Name() string {
	return providerName
}

// GenerateResponse performs one chat completion against the OpenRouter API
func (p *Provider) GenerateResponse(ctx context.Context, input string, config llm.RequestConfig) llm.ProviderResponse {
	key, ok := llm.ResolveAPIKey(config, p.secrets, SecretName)
	if !ok {
		return llm.MissingAPIKeyResponse(providerName)
	}

	config = config.WithDefaults()

	clientConfig := openrouter.DefaultConfig(key)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	clientConfig.HttpReferer = DefaultReferer
	if config.Referer != "" {
		clientConfig.HttpReferer = config.Referer
	}
	clientConfig.XTitle = DefaultTitle
	if config.Title != "" {
		clientConfig.XTitle = config.Title
	}
	client := openrouter.NewClientWithConfig(*clientConfig)

	req := openrouter.ChatCompletionRequest{
		Model:       config.ModelOr(llm.DefaultOpenRouterModel),
		Messages:    convertMessages(config.MessagesOrInput(input)),
		Temperature: *config.Temperature,
		MaxTokens:   *config.MaxTokens,
	}

	resp, err := client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openrouter.APIError
		if errors.As(err, &apiErr) {
			return llm.UpstreamErrorResponse(providerName, apiErr.Message)
		}
		return llm.TransportErrorResponse(providerName, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content.Text == "" {
		return llm.NewSuccessResponse(llm.EmptyResponseFallback(providerName))
	}
	return llm.NewSuccessResponse(resp.Choices[0].Message.Content.Text)
}

// convertMessages converts our messages to OpenRouter format
func convertMessages(messages []llm.Message) []openrouter.ChatCompletionMessage {
	out := make([]openrouter.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		out[i] = openrouter.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: openrouter.Content{Text: msg.Content},
		}
	}
	return out
}
