package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAPIKey(t *testing.T) {
	t.Parallel()

	secrets := StaticResolver{"OPENAI_API_KEY": "from-resolver"}

	t.Run("config_key_wins", func(t *testing.T) {
		t.Parallel()
		config := RequestConfig{ProviderConfig: ProviderConfig{APIKey: "from-config"}}

		key, ok := ResolveAPIKey(config, secrets, "OPENAI_API_KEY")
		assert.True(t, ok)
		assert.Equal(t, "from-config", key)
	})

	t.Run("resolver_fallback", func(t *testing.T) {
		t.Parallel()
		key, ok := ResolveAPIKey(RequestConfig{}, secrets, "OPENAI_API_KEY")
		assert.True(t, ok)
		assert.Equal(t, "from-resolver", key)
	})

	t.Run("unresolvable", func(t *testing.T) {
		t.Parallel()
		_, ok := ResolveAPIKey(RequestConfig{}, secrets, "GROQ_API_KEY")
		assert.False(t, ok)
	})

	t.Run("nil_resolver", func(t *testing.T) {
		t.Parallel()
		_, ok := ResolveAPIKey(RequestConfig{}, nil, "OPENAI_API_KEY")
		assert.False(t, ok)
	})
}

func TestNormalizedFailureMessages(t *testing.T) {
	t.Parallel()

	t.Run("missing_api_key", func(t *testing.T) {
		t.Parallel()
		resp := MissingAPIKeyResponse("OpenAI")
		assert.Equal(t, 400, resp.Status)
		assert.Equal(t, "OpenAI API key is required.", resp.Error)
	})

	t.Run("transport", func(t *testing.T) {
		t.Parallel()
		resp := TransportErrorResponse("Groq", errors.New("connection refused"))
		assert.Equal(t, 500, resp.Status)
		assert.Equal(t, "GroqProvider error: connection refused", resp.Error)
	})

	t.Run("upstream", func(t *testing.T) {
		t.Parallel()
		resp := UpstreamErrorResponse("DeepSeek", "model overloaded")
		assert.Equal(t, 500, resp.Status)
		assert.Equal(t, "DeepSeek API error: model overloaded", resp.Error)
	})

	t.Run("empty_success_fallback", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "No response from GoogleAI.", EmptyResponseFallback("GoogleAI"))
	})
}
