package agent

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/inercia/go-agents/pkg/llm"
)

// QueryOptions controls how a single query interacts with agent state
type QueryOptions struct {
	// KeepHistory records the exchange in the agent's history when the query
	// succeeds with a non-empty response
	KeepHistory bool
}

// Agent is a named, stateful conversation session bound to one provider.
// The provider reference and config snapshot are fixed at creation; only the
// system prompt and history mutate afterwards. A per-agent mutex serializes
// concurrent queries so history updates cannot interleave.
type Agent struct {
	name     string
	provider llm.Provider
	config   llm.ProviderConfig

	mu           sync.Mutex
	systemPrompt string
	history      []llm.Message
}

// New creates an agent bound to the given provider. The config is captured
// as an immutable snapshot; its SystemPrompt seeds the agent's prompt.
func New(name string, provider llm.Provider, config llm.ProviderConfig) *Agent {
	return &Agent{
		name:         name,
		provider:     provider,
		config:       config,
		systemPrompt: config.SystemPrompt,
	}
}

// Name returns the agent's name
func (a *Agent) Name() string {
	return a.name
}

// ProviderName returns the kind identifier of the bound provider
func (a *Agent) ProviderName() string {
	return a.provider.Name()
}

// SetSystemPrompt replaces the system prompt. History is untouched; the new
// prompt takes effect on subsequent queries only.
func (a *Agent) SetSystemPrompt(prompt string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.systemPrompt = prompt
}

// GetSystemPrompt returns the current system prompt
func (a *Agent) GetSystemPrompt() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.systemPrompt
}

// ClearHistory resets the message history. The system prompt is preserved.
func (a *Agent) ClearHistory() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = nil
}

// GetHistory returns a copy of the message history. Mutating the returned
// slice never affects agent state.
func (a *Agent) GetHistory() []llm.Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	return llm.CopyMessages(a.history)
}

// Query sends input to the bound provider with the agent's full
// conversational context and records the exchange on success
func (a *Agent) Query(ctx context.Context, input string) llm.ProviderResponse {
	return a.QueryWithOptions(ctx, input, QueryOptions{KeepHistory: true})
}

// QueryWithOptions is Query with explicit history control. It always returns
// a ProviderResponse: caller errors map to status 400, provider and
// unexpected faults to status 500.
func (a *Agent) QueryWithOptions(ctx context.Context, input string, opts QueryOptions) (resp llm.ProviderResponse) {
	if input == "" {
		return llm.NewErrorResponse(http.StatusBadRequest, "Input must be a non-empty string.")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// A provider must not be able to crash the orchestration loop driving
	// many agents.
	defer func() {
		if r := recover(); r != nil {
			resp = llm.NewErrorResponse(http.StatusInternalServerError,
				fmt.Sprintf("Error during query execution: %v", r))
		}
	}()

	config := llm.RequestConfig{
		ProviderConfig: a.config,
		Messages:       a.assembleMessages(input),
	}

	resp = a.provider.GenerateResponse(ctx, input, config)

	if opts.KeepHistory && resp.IsSuccess() && resp.Response != "" {
		a.history = append(a.history,
			llm.NewUserMessage(input),
			llm.NewAssistantMessage(resp.Response),
		)
	}
	return resp
}

// assembleMessages builds the outgoing message list: the system prompt when
// set, then the recorded history, then the new input. The system prompt is
// injected here only and never stored in history. Callers must hold a.mu.
func (a *Agent) assembleMessages(input string) []llm.Message {
	messages := make([]llm.Message, 0, len(a.history)+2)
	if a.systemPrompt != "" {
		messages = append(messages, llm.NewSystemMessage(a.systemPrompt))
	}
	messages = append(messages, a.history...)
	return append(messages, llm.NewUserMessage(input))
}
