// Package registry owns the fixed set of providers and the agents created
// over them.
//
// A Registry is an explicit object constructed by the embedding application
// and passed to whatever code needs agent routing; there is no package-level
// state. The provider set is wired at construction and never changes; the
// agent set grows through CreateAgent and is keyed by unique names.
package registry
