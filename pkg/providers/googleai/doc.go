// Package googleai provides the GoogleAI provider kind.
//
// It is built on the official google.golang.org/genai client against the
// Gemini API backend, resolves its API key under GOOGLEAI_API_KEY and
// defaults to the gemini-2.0-flash model. Authentication uses the raw key
// header, not a bearer token, which the SDK handles.
//
// Conversation history maps onto Gemini's contents list with assistant
// messages carried under the "model" role; the system prompt travels as the
// request's system instruction rather than as a content entry.
package googleai
