// Package logging provides a tiny abstraction over slog so downstream code can
// depend on a minimal interface (Logger) while allowing users to plug any
// structured logger. It also offers a richer AssistantLogger with contextual
// helpers (component, request id) and domain specific logging helpers for
// plugin routing and execution.
package logging
