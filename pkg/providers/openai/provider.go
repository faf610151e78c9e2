package openai

import (
	"github.com/inercia/go-agents/pkg/llm"
	"github.com/inercia/go-agents/pkg/providers/openaicompat"
)

// SecretName is the resolver key consulted for the OpenAI API key
const SecretName = "OPENAI_API_KEY"

// New creates the OpenAI provider
func New(opts ...openaicompat.Option) *openaicompat.Provider {
	return openaicompat.New(openaicompat.Binding{
		Name:         "OpenAI",
		SecretName:   SecretName,
		DefaultModel: llm.DefaultOpenAIModel,
	}, opts...)
}
