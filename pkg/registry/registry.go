package registry

import (
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/inercia/go-agents/pkg/agent"
	"github.com/inercia/go-agents/pkg/llm"
)

// Registry owns the provider set (fixed at construction) and the created
// agents (keyed by name, growing only)
type Registry struct {
	providers map[string]llm.Provider

	mu     sync.RWMutex
	agents map[string]*agent.Agent
}

// New creates a registry with the six built-in providers wired. Options can
// inject a shared HTTP client and secret resolver into those providers, or
// replace/extend providers entirely.
func New(opts ...Option) *Registry {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	providers := defaultProviders(o)
	for name, provider := range o.overrides {
		providers[name] = provider
	}

	return &Registry{
		providers: providers,
		agents:    make(map[string]*agent.Agent),
	}
}

// CreateAgent creates a new agent bound to the provider registered under
// providerKind and stores it under name. Registration failures indicate
// programmer error and are raised as *llm.Error rather than being folded
// into a response.
func (r *Registry) CreateAgent(name, providerKind string, config llm.ProviderConfig) (*agent.Agent, error) {
	if name == "" {
		return nil, &llm.Error{
			Code:       "invalid_argument",
			Message:    "agent name must be a non-empty string",
			Type:       "validation_error",
			StatusCode: http.StatusBadRequest,
		}
	}

	provider, exists := r.providers[providerKind]
	if !exists {
		return nil, &llm.Error{
			Code:       "unknown_provider",
			Message:    fmt.Sprintf("unknown provider: %s", providerKind),
			Type:       "validation_error",
			StatusCode: http.StatusBadRequest,
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.agents[name]; taken {
		return nil, &llm.Error{
			Code:       "duplicate_name",
			Message:    fmt.Sprintf("agent %q already exists", name),
			Type:       "validation_error",
			StatusCode: http.StatusBadRequest,
		}
	}

	a := agent.New(name, provider, config)
	r.agents[name] = a
	return a, nil
}

// GetAgent returns the agent registered under name
func (r *Registry) GetAgent(name string) (*agent.Agent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.agents[name]
	return a, ok
}

// ListAgents returns all registered agent names, sorted
func (r *Registry) ListAgents() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.agents))
	for name := range r.agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListProviders returns the fixed set of provider kind names, sorted
func (r *Registry) ListProviders() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
