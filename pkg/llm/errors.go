// Error types and handling
package llm

// Error represents a standardized error raised by the registry or an agent
// during registration. Query-time failures are never raised as errors; they
// are normalized into a ProviderResponse instead.
type Error struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Type       string `json:"type"`
	StatusCode int    `json:"status_code,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}
