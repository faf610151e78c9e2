// Normalized response types returned by providers and agents
package llm

import (
	"net/http"
)

// ProviderResponse is the uniform result shape every provider produces,
// regardless of the upstream API. It is exactly one of two shapes:
//
//	{"status": 200, "response": "<text>"}
//	{"status": 400|500, "error": "<message>"}
//
// This wire-level contract is what embedding applications consume and must be
// preserved across providers.
type ProviderResponse struct {
	Status   int    `json:"status"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// NewSuccessResponse creates a successful ProviderResponse carrying the
// generated text.
func NewSuccessResponse(text string) ProviderResponse {
	return ProviderResponse{Status: http.StatusOK, Response: text}
}

// NewErrorResponse creates a failed ProviderResponse. Status should be 400 for
// caller/config problems and 500 for upstream or transport problems.
func NewErrorResponse(status int, message string) ProviderResponse {
	return ProviderResponse{Status: status, Error: message}
}

// IsSuccess reports whether the response carries generated text
func (r ProviderResponse) IsSuccess() bool {
	return r.Status == http.StatusOK
}
