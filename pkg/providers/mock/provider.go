package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/inercia/go-agents/pkg/llm"
)

// Call records one GenerateResponse invocation
type Call struct {
	Input  string
	Config llm.RequestConfig
}

// Provider implements llm.Provider for testing
type Provider struct {
	mu        sync.Mutex
	name      string
	responses []llm.ProviderResponse
	index     int
	callLog   []Call
}

// New creates a new mock provider
func New() *Provider {
	return &Provider{name: "Mock"}
}

// Name returns the provider kind identifier
func (m *Provider) Name() string {
	return m.name
}

// GenerateResponse returns the next scripted response, or an echo of the
// input when nothing is scripted
func (m *Provider) GenerateResponse(_ context.Context, input string, config llm.RequestConfig) llm.ProviderResponse {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callLog = append(m.callLog, Call{Input: input, Config: config})

	if m.index < len(m.responses) {
		resp := m.responses[m.index]
		m.index++
		return resp
	}
	return llm.NewSuccessResponse(fmt.Sprintf("Mock response to: %s", input))
}

// Test helper methods

// WithName overrides the provider name
func (m *Provider) WithName(name string) *Provider {
	m.name = name
	return m
}

// WithResponse scripts a successful response to be returned by a subsequent call
func (m *Provider) WithResponse(text string) *Provider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, llm.NewSuccessResponse(text))
	return m
}

// WithFailure scripts a failed response to be returned by a subsequent call
func (m *Provider) WithFailure(status int, message string) *Provider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, llm.NewErrorResponse(status, message))
	return m
}

// CallCount returns the number of calls made to this provider
func (m *Provider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.callLog)
}

// LastCall returns the most recent call, or nil when none was made
func (m *Provider) LastCall() *Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.callLog) == 0 {
		return nil
	}
	call := m.callLog[len(m.callLog)-1]
	return &call
}

// Reset clears all scripted responses and the call log
func (m *Provider) Reset() *Provider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = nil
	m.index = 0
	m.callLog = nil
	return m
}
