package registry

import (
	"net/http"

	"github.com/inercia/go-agents/pkg/llm"
	"github.com/inercia/go-agents/pkg/providers/deepseek"
	"github.com/inercia/go-agents/pkg/providers/googleai"
	"github.com/inercia/go-agents/pkg/providers/groq"
	"github.com/inercia/go-agents/pkg/providers/openai"
	"github.com/inercia/go-agents/pkg/providers/openaicompat"
	"github.com/inercia/go-agents/pkg/providers/openailike"
	"github.com/inercia/go-agents/pkg/providers/openrouter"
)

// Provider kind identifiers. These exact strings are the public contract for
// CreateAgent's providerKind argument.
const (
	ProviderOpenAI     = "OpenAI"
	ProviderGoogleAI   = "GoogleAI"
	ProviderDeepSeek   = "DeepSeek"
	ProviderOpenRouter = "OpenRouter"
	ProviderGroq       = "Groq"
	ProviderOpenAILike = "OpenAILike"
)

type options struct {
	httpClient *http.Client
	secrets    llm.SecretResolver
	overrides  map[string]llm.Provider
}

// Option configures a Registry at construction time
type Option func(*options)

// WithHTTPClient injects the HTTP client shared by all providers that accept
// one
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

// WithSecretResolver injects the resolver all providers consult for API keys.
// Defaults to the environment.
func WithSecretResolver(secrets llm.SecretResolver) Option {
	return func(o *options) { o.secrets = secrets }
}

// WithProvider registers a provider under name, replacing the built-in one
// if the name collides. Used by embedders and tests to plug in custom or
// scripted providers.
func WithProvider(name string, provider llm.Provider) Option {
	return func(o *options) {
		if o.overrides == nil {
			o.overrides = make(map[string]llm.Provider)
		}
		o.overrides[name] = provider
	}
}

// defaultProviders wires the fixed set of six built-in providers
func defaultProviders(o *options) map[string]llm.Provider {
	var compat []openaicompat.Option
	var ds []deepseek.Option
	var or []openrouter.Option
	var ga []googleai.Option

	if o.httpClient != nil {
		compat = append(compat, openaicompat.WithHTTPClient(o.httpClient))
		ga = append(ga, googleai.WithHTTPClient(o.httpClient))
	}
	if o.secrets != nil {
		compat = append(compat, openaicompat.WithSecretResolver(o.secrets))
		ds = append(ds, deepseek.WithSecretResolver(o.secrets))
		or = append(or, openrouter.WithSecretResolver(o.secrets))
		ga = append(ga, googleai.WithSecretResolver(o.secrets))
	}

	return map[string]llm.Provider{
		ProviderOpenAI:     openai.New(compat...),
		ProviderGroq:       groq.New(compat...),
		ProviderOpenAILike: openailike.New(compat...),
		ProviderDeepSeek:   deepseek.New(ds...),
		ProviderOpenRouter: openrouter.New(or...),
		ProviderGoogleAI:   googleai.New(ga...),
	}
}
