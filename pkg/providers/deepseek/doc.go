// Package deepseek provides the DeepSeek provider kind.
//
// It is built on the cohesion-org/deepseek-go client, resolves its API key
// under DEEPSEEK_API_KEY and defaults to the deepseek-chat model. A base URL
// in the agent config redirects requests, which is also how tests exercise
// this provider against a local server.
package deepseek
