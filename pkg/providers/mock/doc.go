// Package mock provides a scripted provider for testing.
//
// The mock provider returns pre-configured responses or failures in order,
// records every request it receives for test assertions, and echoes the
// input when nothing is scripted. It performs no network I/O.
package mock
