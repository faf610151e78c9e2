package openailike

import (
	"github.com/inercia/go-agents/pkg/providers/openaicompat"
)

// SecretName is the resolver key consulted for the custom endpoint's API key
const SecretName = "OPENAI_LIKE_API_KEY"

// New creates the OpenAILike provider. Requests fail with a 400 response
// unless the agent config carries a base URL.
func New(opts ...openaicompat.Option) *openaicompat.Provider {
	return openaicompat.New(openaicompat.Binding{
		Name:           "OpenAILike",
		SecretName:     SecretName,
		RequireBaseURL: true,
	}, opts...)
}
