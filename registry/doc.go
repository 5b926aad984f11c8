// Package registry holds the set of loaded plugins, keyed by name with
// insertion order preserved. The order is load-bearing: it defines routing
// precedence during the orchestrator's scan, so a registry never reorders
// its plugins. Name collisions are rejected at registration time rather than
// silently overwriting an earlier plugin.
//
// After load the registry is treated as read-only and is safe for concurrent
// reads; registration is expected to happen once at startup.
package registry
