// Package plugin implements the capability plugin subsystem that lets the
// assistant route user inputs to structured handlers with consistent error
// containment and descriptive metadata.
//
// The core.Plugin contract requires Execute to never panic; the adapters in
// this package (FuncPlugin and the concrete plugins built on it) enforce
// that by recovering faults and rendering them into user-facing error
// strings, so the orchestrator's call site needs no defensive handling.
package plugin
