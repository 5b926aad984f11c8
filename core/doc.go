// Package core provides the foundational domain types and interfaces used by
// steward. It defines the core abstractions for:
//
//   - Plugins (capability units that claim and handle user inputs)
//   - Exchanges (immutable input/response records with timestamps)
//   - RequestContext (scoped per-request execution context handed to plugins)
//   - Responders (fallback handlers for unclaimed inputs)
//
// The package intentionally keeps implementation concerns (registry storage,
// orchestration, concrete plugins) out of scope, exposing small interfaces to
// enable custom backends and extensions.
package core
