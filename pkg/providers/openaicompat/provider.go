package openaicompat

import (
	"context"
	"errors"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/inercia/go-agents/pkg/llm"
)

// Binding describes one provider kind built on the OpenAI wire format
type Binding struct {
	// Name is the provider kind identifier, e.g. "Groq"
	Name string
	// SecretName is the resolver key for the API key, e.g. "GROQ_API_KEY"
	SecretName string
	// DefaultModel is used when the config names no model. Empty means the
	// model must come from the config.
	DefaultModel string
	// BaseURL overrides the upstream endpoint. Empty means the SDK default
	// (api.openai.com).
	BaseURL string
	// RequireBaseURL makes a base URL mandatory (config or binding). Set for
	// the custom-endpoint variant.
	RequireBaseURL bool
}

// Provider implements llm.Provider for one OpenAI-compatible upstream
type Provider struct {
	binding Binding
	http    *http.Client
	secrets llm.SecretResolver
}

// Option configures a Provider
type Option func(*Provider)

// WithHTTPClient injects the HTTP client used for upstream calls
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) { p.http = client }
}

// WithSecretResolver injects the resolver consulted for API keys
func WithSecretResolver(secrets llm.SecretResolver) Option {
	return func(p *Provider) { p.secrets = secrets }
}

// New creates a provider for the given binding
func New(binding Binding, opts ...Option) *Provider {
	p := &Provider{
		binding: binding,
		secrets: llm.EnvResolver{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the provider kind identifier
func (p *Provider) Name() string {
	return p.binding.Name
}

// GenerateResponse performs one chat completion against the upstream API
func (p *Provider) GenerateResponse(ctx context.Context, input string, config llm.RequestConfig) llm.ProviderResponse {
	key, ok := llm.ResolveAPIKey(config, p.secrets, p.binding.SecretName)
	if !ok {
		return llm.MissingAPIKeyResponse(p.binding.Name)
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = p.binding.BaseURL
	}
	if p.binding.RequireBaseURL && baseURL == "" {
		return llm.NewErrorResponse(http.StatusBadRequest, p.binding.Name+" base URL is required.")
	}

	config = config.WithDefaults()

	clientConfig := openai.DefaultConfig(key)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	if p.http != nil {
		clientConfig.HTTPClient = p.http
	}
	client := openai.NewClientWithConfig(clientConfig)

	req := openai.ChatCompletionRequest{
		Model:       config.ModelOr(p.binding.DefaultModel),
		Messages:    convertMessages(config.MessagesOrInput(input)),
		Temperature: *config.Temperature,
		MaxTokens:   *config.MaxTokens,
	}

	resp, err := client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return llm.UpstreamErrorResponse(p.binding.Name, apiErr.Message)
		}
		return llm.TransportErrorResponse(p.binding.Name, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return llm.NewSuccessResponse(llm.EmptyResponseFallback(p.binding.Name))
	}
	return llm.NewSuccessResponse(resp.Choices[0].Message.Content)
}

// convertMessages converts our messages to OpenAI format
func convertMessages(messages []llm.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		out[i] = openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}
	return out
}
