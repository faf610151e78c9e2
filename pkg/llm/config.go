// Configuration types and default resolution
package llm

import (
	"os"
)

// Default model identifiers used when a config does not name one.
// OpenAILike has no default: the model always comes from the caller's config.
const (
	DefaultOpenAIModel     = "gpt-3.5-turbo"
	DefaultGoogleAIModel   = "gemini-2.0-flash"
	DefaultDeepSeekModel   = "deepseek-chat"
	DefaultOpenRouterModel = "openai/gpt-3.5-turbo"
	DefaultGroqModel       = "mixtral-8x7b-32768"
)

const (
	// DefaultTemperature is applied when a config does not set one
	DefaultTemperature float32 = 0.7
	// DefaultMaxTokens is applied when a config does not set one
	DefaultMaxTokens = 100
)

// ProviderConfig holds the per-agent configuration captured at creation time.
// It is treated as an immutable value: agents snapshot it once and never
// modify it.
type ProviderConfig struct {
	APIKey       string   `json:"api_key,omitempty"`
	Model        string   `json:"model,omitempty"`
	SystemPrompt string   `json:"system_prompt,omitempty"`
	Temperature  *float32 `json:"temperature,omitempty"`
	MaxTokens    *int     `json:"max_tokens,omitempty"`
	BaseURL      string   `json:"base_url,omitempty"` // required for OpenAILike
	Referer      string   `json:"referer,omitempty"`  // OpenRouter HTTP-Referer header
	Title        string   `json:"title,omitempty"`    // OpenRouter X-Title header
}

// RequestConfig extends ProviderConfig with an optional pre-assembled message
// list. When Messages is set it takes precedence over the bare input string,
// which is how agents pass full conversational context to a provider.
type RequestConfig struct {
	ProviderConfig
	Messages []Message `json:"messages,omitempty"`
}

// WithDefaults returns a copy of the config with temperature and max tokens
// filled in. All providers resolve defaults through this single step so that
// the defaulting semantics cannot drift between variants.
func (c RequestConfig) WithDefaults() RequestConfig {
	if c.Temperature == nil {
		t := DefaultTemperature
		c.Temperature = &t
	}
	if c.MaxTokens == nil {
		m := DefaultMaxTokens
		c.MaxTokens = &m
	}
	return c
}

// MessagesOrInput returns the pre-assembled message list when present, or a
// single user message built from input otherwise.
func (c RequestConfig) MessagesOrInput(input string) []Message {
	if len(c.Messages) > 0 {
		return c.Messages
	}
	return []Message{NewUserMessage(input)}
}

// ModelOr returns the configured model, or fallback when none is set
func (c RequestConfig) ModelOr(fallback string) string {
	if c.Model != "" {
		return c.Model
	}
	return fallback
}

// ProviderFromEnv picks a provider kind and configuration from the
// environment, preferring explicitly configured keys. Used by the examples;
// library code never reads the environment outside a SecretResolver.
func ProviderFromEnv() (string, ProviderConfig) {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return "OpenAI", ProviderConfig{APIKey: key, Model: envOr("OPENAI_MODEL", DefaultOpenAIModel)}
	}
	if key := os.Getenv("GOOGLEAI_API_KEY"); key != "" {
		return "GoogleAI", ProviderConfig{APIKey: key, Model: envOr("GOOGLEAI_MODEL", DefaultGoogleAIModel)}
	}
	if key := os.Getenv("DEEPSEEK_API_KEY"); key != "" {
		return "DeepSeek", ProviderConfig{APIKey: key, Model: envOr("DEEPSEEK_MODEL", DefaultDeepSeekModel)}
	}
	if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
		return "OpenRouter", ProviderConfig{APIKey: key, Model: envOr("OPENROUTER_MODEL", DefaultOpenRouterModel)}
	}
	if key := os.Getenv("GROQ_API_KEY"); key != "" {
		return "Groq", ProviderConfig{APIKey: key, Model: envOr("GROQ_MODEL", DefaultGroqModel)}
	}

	// Custom OpenAI-compatible endpoint, e.g. a local server
	return "OpenAILike", ProviderConfig{
		APIKey:  os.Getenv("OPENAI_LIKE_API_KEY"),
		Model:   os.Getenv("OPENAI_LIKE_MODEL"),
		BaseURL: os.Getenv("OPENAI_LIKE_BASE_URL"),
	}
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
