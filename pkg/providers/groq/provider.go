package groq

import (
	"github.com/inercia/go-agents/pkg/llm"
	"github.com/inercia/go-agents/pkg/providers/openaicompat"
)

// SecretName is the resolver key consulted for the Groq API key
const SecretName = "GROQ_API_KEY"

// DefaultBaseURL is Groq's OpenAI-compatible endpoint
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// New creates the Groq provider
func New(opts ...openaicompat.Option) *openaicompat.Provider {
	return openaicompat.New(openaicompat.Binding{
		Name:         "Groq",
		SecretName:   SecretName,
		DefaultModel: llm.DefaultGroqModel,
		BaseURL:      DefaultBaseURL,
	}, opts...)
}
