// Package groq provides the Groq provider kind.
//
// Groq exposes an OpenAI-compatible chat API, so this package binds the
// shared OpenAI-wire engine to the Groq endpoint with GROQ_API_KEY and the
// mixtral-8x7b-32768 default model.
package groq
