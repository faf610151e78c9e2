package deepseek

import (
	"context"
	"errors"
	"net/url"
	"time"

	deepseek "github.com/cohesion-org/deepseek-go"

	"github.com/inercia/go-agents/pkg/llm"
)

// SecretName is the resolver key consulted for the DeepSeek API key
const SecretName = "DEEPSEEK_API_KEY"

const providerName = "DeepSeek"

// Provider implements llm.Provider for DeepSeek
type Provider struct {
	secrets llm.SecretResolver
	timeout time.Duration
}

// Option configures a Provider
type Option func(*Provider)

// WithSecretResolver injects the resolver consulted for API keys
func WithSecretResolver(secrets llm.SecretResolver) Option {
	return func(p *Provider) { p.secrets = secrets }
}

// WithTimeout sets the request timeout applied by the underlying client
func WithTimeout(timeout time.Duration) Option {
	return func(p *Provider) { p.timeout = timeout }
}

// New creates the DeepSeek provider
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

// GenerateResponse performs one chat completion against the DeepSeek API
func (p *Provider) GenerateResponse(ctx context.Context, input string, config llm.RequestConfig) llm.ProviderResponse {
	key, ok := llm.ResolveAPIKey(config, p.secrets, SecretName)
	if !ok {
		return llm.MissingAPIKeyResponse(providerName)
	}

	config = config.WithDefaults()

	client, err := p.newClient(key, config.BaseURL)
	if err != nil {
		return llm.TransportErrorResponse(providerName, err)
	}

	req := deepseek.ChatCompletionRequest{
		Model:       config.ModelOr(llm.DefaultDeepSeekModel),
		Messages:    convertMessages(config.MessagesOrInput(input)),
		Temperature: *config.Temperature,
		MaxTokens:   *config.MaxTokens,
	}

	resp, err := client.CreateChatCompletion(ctx, &req)
	if err != nil {
		return convertError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return llm.NewSuccessResponse(llm.EmptyResponseFallback(providerName))
	}
	return llm.NewSuccessResponse(resp.Choices[0].Message.Content)
}

// newClient builds a deepseek-go client for one request
func (p *Provider) newClient(key, baseURL string) (*deepseek.Client, error) {
	var opts []deepseek.Option
	if baseURL != "" {
		opts = append(opts, deepseek.WithBaseURL(baseURL))
	}
	if p.timeout > 0 {
		opts = append(opts, deepseek.WithTimeout(p.timeout))
	}
	if len(opts) == 0 {
		return deepseek.NewClient(key), nil
	}
	return deepseek.NewClientWithOptions(key, opts...)
}

// convertMessages converts our messages to DeepSeek format
func convertMessages(messages []llm.Message) []deepseek.ChatCompletionMessage {
	out := make([]deepseek.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		out[i] = deepseek.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}
	return out
}

// convertError normalizes a deepseek-go error. The SDK folds upstream API
// errors into plain errors, so only network-level faults are classified as
// transport failures.
func convertError(err error) llm.ProviderResponse {
	var urlErr *url.Error
	if errors.As(err, &urlErr) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return llm.TransportErrorResponse(providerName, err)
	}
	return llm.UpstreamErrorResponse(providerName, err.Error())
}
