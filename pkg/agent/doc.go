// Package agent implements named conversation sessions bound to a provider.
//
// An Agent owns one conversation's mutable state: a system prompt and the
// accumulated user/assistant message history. Each query assembles that state
// into a provider request, delegates to the bound provider and, on a recorded
// success, appends the exchange to history. Queries are total: every failure
// is normalized into the returned ProviderResponse, never raised.
//
// Agents are created through the registry package and keep a fixed provider
// binding for their whole lifetime.
package agent
