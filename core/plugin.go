package core

// Plugin defines the interface for extending the assistant with capability
// units. A plugin claims a subset of user inputs via CanHandle and produces
// responses via Execute.
//
// Contract:
//   - CanHandle is a pure predicate used only for routing decisions; it must
//     not mutate plugin state.
//   - Execute may mutate plugin-internal state but must never panic: any
//     internal fault has to be rendered into the returned user-facing string.
//     The orchestrator relies on this and performs no defensive error
//     handling around plugin calls (its recover backstop exists for
//     misbehaving plugins, not as part of the contract).
//   - Disabled plugins (Enabled() == false) stay registered and enumerable;
//     skipping them during routing is the orchestrator's responsibility, not
//     the plugin's.
//   - Name must be unique within a registry and immutable after construction.
type Plugin interface {
	// Name returns the unique identifier for this plugin.
	Name() string

	// Enabled reports whether the plugin should participate in routing.
	Enabled() bool

	// CanHandle returns true iff the plugin claims ownership of this input.
	CanHandle(input string) bool

	// Execute performs the plugin's action and returns a user-facing
	// response string. The RequestContext carries the request timestamp,
	// the raw input and any caller supplied values.
	Execute(input string, rc *RequestContext) string

	// Capabilities returns a static description of what the plugin can do.
	Capabilities() Capability
}

// Capability describes a plugin's identity and supported command patterns.
// It is static metadata surfaced through the orchestrator's capability report.
type Capability struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Commands    []string `json:"commands,omitempty"`
	Version     string   `json:"version,omitempty"`
}
