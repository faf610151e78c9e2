// Package llm provides the core types shared by all agent providers.
//
// This package defines the provider contract and the common value types for
// messages, configuration and normalized responses:
//
// - Provider interface: one implementation per upstream LLM API
// - Message types: role-tagged chat messages
// - Configuration: provider-agnostic config with centralized defaults
// - ProviderResponse: the uniform success/failure shape every provider returns
// - SecretResolver: API key lookup when a key is not supplied in config
// - Error handling: standardized error types for registration failures
//
// Provider implementations are located in separate packages under /pkg/providers/
// to maintain clean separation of concerns and avoid import cycles.
package llm
