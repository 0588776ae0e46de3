// Package azure provides a wrapper around the Azure Resource Manager API.
//
// The package exposes small per-concern interfaces (resource groups,
// domains, plans, web apps, traffic profiles) combined into a single
// Manager, a RealClient backed by the official SDK, and a function-field
// MockClient for tests. All create and update operations block until the
// remote long-running operation reaches a terminal state.
package azure
