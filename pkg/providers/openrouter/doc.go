// Package openrouter provides the OpenRouter provider kind.
//
// It is built on the revrost/go-openrouter client, resolves its API key
// under OPENROUTER_API_KEY and defaults to the openai/gpt-3.5-turbo model.
// OpenRouter attributes traffic through the HTTP-Referer and X-Title
// headers; both can be set per agent via the config's Referer and Title
// fields and fall back to this library's identity.
package openrouter
