// Package openailike provides the OpenAILike provider kind for custom
// OpenAI-compatible endpoints (local servers, proxies, self-hosted gateways).
//
// Unlike the other kinds it has no default endpoint or model: the base URL is
// mandatory and the model comes from the caller's config.
package openailike
