// Provider contract and shared response normalization
package llm

import (
	"context"
	"fmt"
	"net/http"
)

// Provider defines the interface every upstream adapter must implement.
// Providers are stateless: one instance is safely shared across all agents
// bound to it and may be called concurrently.
type Provider interface {
	// Name returns the provider's kind identifier, e.g. "OpenAI"
	Name() string

	// GenerateResponse performs one chat completion against the upstream API
	// and normalizes the outcome. It never returns an error: every failure
	// mode is folded into the ProviderResponse.
	GenerateResponse(ctx context.Context, input string, config RequestConfig) ProviderResponse
}

// ResolveAPIKey resolves the API key for a request: the config's key wins,
// otherwise the resolver is consulted under secretName.
func ResolveAPIKey(config RequestConfig, secrets SecretResolver, secretName string) (string, bool) {
	if config.APIKey != "" {
		return config.APIKey, true
	}
	if secrets == nil {
		return "", false
	}
	return secrets.Lookup(secretName)
}

// MissingAPIKeyResponse is the normalized failure for an unresolvable API key
func MissingAPIKeyResponse(provider string) ProviderResponse {
	return NewErrorResponse(http.StatusBadRequest, provider+" API key is required.")
}

// TransportErrorResponse is the normalized failure for network-level faults
// and unparseable upstream bodies
func TransportErrorResponse(provider string, cause error) ProviderResponse {
	return NewErrorResponse(http.StatusInternalServerError, fmt.Sprintf("%sProvider error: %v", provider, cause))
}

// UpstreamErrorResponse is the normalized failure for errors the upstream API
// reported in its own envelope
func UpstreamErrorResponse(provider, message string) ProviderResponse {
	return NewErrorResponse(http.StatusInternalServerError, fmt.Sprintf("%s API error: %s", provider, message))
}

// EmptyResponseFallback is the text substituted when the upstream reports
// success but carries no extractable text. A success without text is not
// treated as an error.
func EmptyResponseFallback(provider string) string {
	return "No response from " + provider + "."
}
