package core

import "fmt"

var (
	// ErrPluginNotFound is returned when a lookup by name on the registry
	// does not match any registered plugin.
	ErrPluginNotFound = fmt.Errorf("plugin not found")
)

// DuplicatePluginError reports a name collision during plugin registration.
// Collisions are rejected at load time, never silently overwritten.
type DuplicatePluginError struct {
	Name string
}

func (e *DuplicatePluginError) Error() string {
	return fmt.Sprintf("plugin %q already registered", e.Name)
}

// InitializationError wraps a failure of a collaborator to come up during
// assistant construction. It is fatal at startup and surfaced to the caller
// of the constructor.
type InitializationError struct {
	Component string
	Err       error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialization of %s failed: %v", e.Component, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *InitializationError) Unwrap() error { return e.Err }
