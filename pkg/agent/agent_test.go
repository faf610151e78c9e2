package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inercia/go-agents/pkg/llm"
	"github.com/inercia/go-agents/pkg/providers/mock"
)

// panicProvider simulates an unexpected fault inside a provider
type panicProvider struct{}

func (panicProvider) Name() string { return "Panic" }

func (panicProvider) GenerateResponse(context.Context, string, llm.RequestConfig) llm.ProviderResponse {
	panic("boom")
}

func TestQueryRecordsHistory(t *testing.T) {
	t.Parallel()

	provider := mock.New().WithResponse("Hello there!")
	a := New("assistant", provider, llm.ProviderConfig{})

	resp := a.Query(context.Background(), "Hi")
	require.True(t, resp.IsSuccess())
	require.Equal(t, "Hello there!", resp.Response)

	history := a.GetHistory()
	require.Len(t, history, 2)
	assert.Equal(t, llm.NewUserMessage("Hi"), history[0])
	assert.Equal(t, llm.NewAssistantMessage("Hello there!"), history[1])
}

func TestQueryAssemblesFullContext(t *testing.T) {
	t.Parallel()

	provider := mock.New().WithResponse("first").WithResponse("second")
	a := New("assistant", provider, llm.ProviderConfig{SystemPrompt: "You are terse."})

	_ = a.Query(context.Background(), "one")
	_ = a.Query(context.Background(), "two")

	call := provider.LastCall()
	require.NotNil(t, call)
	require.Len(t, call.Config.Messages, 4)
	assert.Equal(t, llm.NewSystemMessage("You are terse."), call.Config.Messages[0])
	assert.Equal(t, llm.NewUserMessage("one"), call.Config.Messages[1])
	assert.Equal(t, llm.NewAssistantMessage("first"), call.Config.Messages[2])
	assert.Equal(t, llm.NewUserMessage("two"), call.Config.Messages[3])
}

func TestHistoryInvariants(t *testing.T) {
	t.Parallel()

	provider := mock.New()
	a := New("assistant", provider, llm.ProviderConfig{SystemPrompt: "prompt"})

	for _, input := range []string{"one", "two", "three"} {
		_ = a.Query(context.Background(), input)

		history := a.GetHistory()
		assert.Zero(t, len(history)%2, "history length must stay even")
		for _, msg := range history {
			assert.NotEqual(t, llm.RoleSystem, msg.Role, "system prompt must never enter history")
		}
	}
}

func TestGetHistoryDefensiveCopy(t *testing.T) {
	t.Parallel()

	provider := mock.New().WithResponse("reply")
	a := New("assistant", provider, llm.ProviderConfig{})
	_ = a.Query(context.Background(), "input")

	first := a.GetHistory()
	second := a.GetHistory()
	require.Equal(t, first, second)

	first[0].Content = "mutated"
	assert.Equal(t, "input", a.GetHistory()[0].Content)
}

func TestClearHistoryPreservesSystemPrompt(t *testing.T) {
	t.Parallel()

	provider := mock.New()
	a := New("assistant", provider, llm.ProviderConfig{SystemPrompt: "You are terse."})

	_ = a.Query(context.Background(), "one")
	require.NotEmpty(t, a.GetHistory())

	a.ClearHistory()
	assert.Empty(t, a.GetHistory())
	assert.Equal(t, "You are terse.", a.GetSystemPrompt())

	// Subsequent queries must still carry the system message
	_ = a.Query(context.Background(), "two")
	call := provider.LastCall()
	require.NotNil(t, call)
	require.NotEmpty(t, call.Config.Messages)
	assert.Equal(t, llm.NewSystemMessage("You are terse."), call.Config.Messages[0])
}

func TestSetSystemPrompt(t *testing.T) {
	t.Parallel()

	provider := mock.New()
	a := New("assistant", provider, llm.ProviderConfig{})
	_ = a.Query(context.Background(), "before")

	a.SetSystemPrompt("New instructions.")
	assert.Equal(t, "New instructions.", a.GetSystemPrompt())
	assert.Len(t, a.GetHistory(), 2, "changing the prompt must not touch history")

	_ = a.Query(context.Background(), "after")
	call := provider.LastCall()
	require.NotNil(t, call)
	assert.Equal(t, llm.NewSystemMessage("New instructions."), call.Config.Messages[0])
}

func TestQueryEmptyInput(t *testing.T) {
	t.Parallel()

	provider := mock.New()
	a := New("assistant", provider, llm.ProviderConfig{})

	resp := a.Query(context.Background(), "")
	assert.Equal(t, 400, resp.Status)
	assert.Equal(t, "Input must be a non-empty string.", resp.Error)
	assert.Zero(t, provider.CallCount(), "provider must not be invoked")
	assert.Empty(t, a.GetHistory())
}

func TestQueryWithoutKeepHistory(t *testing.T) {
	t.Parallel()

	provider := mock.New().WithResponse("reply")
	a := New("assistant", provider, llm.ProviderConfig{})

	resp := a.QueryWithOptions(context.Background(), "input", QueryOptions{KeepHistory: false})
	require.True(t, resp.IsSuccess())
	assert.Empty(t, a.GetHistory())
}

func TestQueryFailureLeavesHistory(t *testing.T) {
	t.Parallel()

	provider := mock.New().
		WithResponse("recorded").
		WithFailure(500, "DeepSeek API error: overloaded")
	a := New("assistant", provider, llm.ProviderConfig{})

	_ = a.Query(context.Background(), "one")
	require.Len(t, a.GetHistory(), 2)

	resp := a.Query(context.Background(), "two")
	assert.Equal(t, 500, resp.Status)
	assert.Len(t, a.GetHistory(), 2, "failed queries must not grow history")
}

func TestQueryEmptyResponseNotRecorded(t *testing.T) {
	t.Parallel()

	provider := mock.New().WithResponse("")
	a := New("assistant", provider, llm.ProviderConfig{})

	resp := a.Query(context.Background(), "input")
	require.True(t, resp.IsSuccess())
	assert.Empty(t, a.GetHistory(), "empty response text must not be recorded")
}

func TestQueryRecoversFromPanic(t *testing.T) {
	t.Parallel()

	a := New("assistant", panicProvider{}, llm.ProviderConfig{})

	resp := a.Query(context.Background(), "input")
	assert.Equal(t, 500, resp.Status)
	assert.Equal(t, "Error during query execution: boom", resp.Error)
	assert.Empty(t, a.GetHistory())

	// The agent must stay usable after a fault
	resp = a.Query(context.Background(), "again")
	assert.Equal(t, 500, resp.Status)
}

func TestAgentIdentity(t *testing.T) {
	t.Parallel()

	a := New("researcher", mock.New(), llm.ProviderConfig{})
	assert.Equal(t, "researcher", a.Name())
	assert.Equal(t, "Mock", a.ProviderName())
}
