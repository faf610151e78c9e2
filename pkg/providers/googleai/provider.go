package googleai

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/genai"

	"github.com/inercia/go-agents/pkg/llm"
)

// SecretName is the resolver key consulted for the Google AI API key
const SecretName = "GOOGLEAI_API_KEY"

const providerName = "GoogleAI"

// Provider implements llm.Provider for Google's Gemini API
type Provider struct {
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

// New creates the GoogleAI provider
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

// GenerateResponse performs one content generation against the Gemini API
func (p *Provider) GenerateResponse(ctx context.Context, input string, config llm.RequestConfig) llm.ProviderResponse {
	key, ok := llm.ResolveAPIKey(config, p.secrets, SecretName)
	if !ok {
		return llm.MissingAPIKeyResponse(providerName)
	}

	config = config.WithDefaults()

	clientConfig := &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	}
	if p.http != nil {
		clientConfig.HTTPClient = p.http
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions.BaseURL = config.BaseURL
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return llm.TransportErrorResponse(providerName, err)
	}

	contents, systemInstruction := convertMessages(config.MessagesOrInput(input))
	genConfig := &genai.GenerateContentConfig{
		Temperature:     config.Temperature,
		MaxOutputTokens: int32(*config.MaxTokens),
	}
	if systemInstruction != nil {
		genConfig.SystemInstruction = systemInstruction
	}

	resp, err := client.Models.GenerateContent(ctx, config.ModelOr(llm.DefaultGoogleAIModel), contents, genConfig)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return llm.UpstreamErrorResponse(providerName, apiErr.Message)
		}
		return llm.TransportErrorResponse(providerName, err)
	}

	text := extractText(resp)
	if text == "" {
		return llm.NewSuccessResponse(llm.EmptyResponseFallback(providerName))
	}
	return llm.NewSuccessResponse(text)
}

// convertMessages converts our messages to genai contents, splitting out the
// system prompt as a system instruction
func convertMessages(messages []llm.Message) ([]*genai.Content, *genai.Content) {
	var contents []*genai.Content
	var systemInstruction *genai.Content

	for _, msg := range messages {
		switch msg.Role {
		case llm.RoleSystem:
			systemInstruction = &genai.Content{
				Parts: []*genai.Part{genai.NewPartFromText(msg.Content)},
			}
		case llm.RoleAssistant:
			contents = append(contents, &genai.Content{
				Role:  genai.RoleModel,
				Parts: []*genai.Part{genai.NewPartFromText(msg.Content)},
			})
		default:
			contents = append(contents, &genai.Content{
				Role:  genai.RoleUser,
				Parts: []*genai.Part{genai.NewPartFromText(msg.Content)},
			})
		}
	}

	return contents, systemInstruction
}

// extractText pulls the generated text out of the first candidate
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}
	return candidate.Content.Parts[0].Text
}
