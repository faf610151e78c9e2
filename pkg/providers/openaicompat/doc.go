// Package openaicompat implements the provider contract for upstreams that
// speak the OpenAI chat-completions wire format.
//
// The OpenAI, Groq and OpenAILike provider kinds all share this engine and
// differ only in their binding: kind name, secret name, default model and
// base URL. Sharing one engine keeps the request-building and defaulting
// semantics identical across the three variants instead of duplicating them
// per provider.
package openaicompat
