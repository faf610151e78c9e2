// Secret resolution for provider API keys
package llm

import (
	"os"
)

// SecretResolver resolves a named secret, typically an API key, when the
// agent's config does not carry one directly.
type SecretResolver interface {
	// Lookup returns the secret value for name, and whether it was found
	Lookup(name string) (string, bool)
}

// EnvResolver resolves secrets from environment variables. This is the
// default resolver wired by the registry.
type EnvResolver struct{}

// Lookup reads the secret from the environment
func (EnvResolver) Lookup(name string) (string, bool) {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// StaticResolver resolves secrets from a fixed map. Useful for tests and for
// embedders that manage keys themselves.
type StaticResolver map[string]string

// Lookup reads the secret from the map
func (r StaticResolver) Lookup(name string) (string, bool) {
	value, ok := r[name]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}
