// Package openai provides the OpenAI provider kind.
//
// It binds the shared OpenAI-wire engine to the official OpenAI endpoint,
// resolving its API key under OPENAI_API_KEY and defaulting to the
// gpt-3.5-turbo model.
package openai
