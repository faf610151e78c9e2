package openailike

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inercia/go-agents/pkg/llm"
	"github.com/inercia/go-agents/pkg/providers/openaicompat"
)

func TestOpenAILikeRequiresBaseURL(t *testing.T) {
	t.Parallel()

	p := New(openaicompat.WithSecretResolver(llm.StaticResolver{SecretName: "local-key"}))
	assert.Equal(t, "OpenAILike", p.Name())

	resp := p.GenerateResponse(context.Background(), "Hi", llm.RequestConfig{})
	assert.Equal(t, 400, resp.Status)
	assert.Equal(t, "OpenAILike base URL is required.", resp.Error)
}

func TestOpenAILikeMissingAPIKey(t *testing.T) {
	t.Parallel()

	p := New(openaicompat.WithSecretResolver(llm.StaticResolver{}))

	config := llm.RequestConfig{ProviderConfig: llm.ProviderConfig{BaseURL: "http://localhost:11434/v1"}}
	resp := p.GenerateResponse(context.Background(), "Hi", config)
	assert.Equal(t, 400, resp.Status)
	assert.Equal(t, "OpenAILike API key is required.", resp.Error)
}
