package testutil

import (
	"fmt"
	"strings"

	"github.com/stewardhq/steward/core"
)

// StubPlugin is a configurable core.Plugin for tests. It counts CanHandle and
// Execute invocations so routing behavior (first match wins, disabled skip,
// never-invoked losers) can be asserted precisely.
// Example:
//
//	p := NewStubPlugin("tasks").MatchSubstrings("task", "todo").Reply("done").Build()
type StubPlugin struct {
	name    string
	enabled bool
	match   func(string) bool
	execute func(input string, rc *core.RequestContext) string

	CanHandleCalls int
	ExecuteCalls   int
}

// NewStubPlugin creates a builder for an enabled plugin that claims nothing
// and echoes its name until configured otherwise.
func NewStubPlugin(name string) *StubPlugin {
	return &StubPlugin{
		name:    name,
		enabled: true,
		match:   func(string) bool { return false },
		execute: func(input string, _ *core.RequestContext) string {
			return fmt.Sprintf("%s handled: %s", name, input)
		},
	}
}

// Disabled marks the plugin as disabled (chainable).
func (p *StubPlugin) Disabled() *StubPlugin {
	p.enabled = false
	return p
}

// MatchAll makes the plugin claim every input (chainable).
func (p *StubPlugin) MatchAll() *StubPlugin {
	p.match = func(string) bool { return true }
	return p
}

// MatchSubstrings makes the plugin claim inputs containing any of the given
// substrings, case-insensitively (chainable).
func (p *StubPlugin) MatchSubstrings(subs ...string) *StubPlugin {
	p.match = func(input string) bool {
		lower := strings.ToLower(input)
		for _, s := range subs {
			if strings.Contains(lower, strings.ToLower(s)) {
				return true
			}
		}
		return false
	}
	return p
}

// Reply fixes the Execute response to a constant string (chainable).
func (p *StubPlugin) Reply(response string) *StubPlugin {
	p.execute = func(string, *core.RequestContext) string { return response }
	return p
}

// ReplyFunc installs a custom Execute implementation (chainable).
func (p *StubPlugin) ReplyFunc(fn func(input string, rc *core.RequestContext) string) *StubPlugin {
	p.execute = fn
	return p
}

// PanicOnExecute makes Execute panic, violating the plugin contract on
// purpose so the orchestrator's recover backstop can be exercised (chainable).
func (p *StubPlugin) PanicOnExecute(msg string) *StubPlugin {
	p.execute = func(string, *core.RequestContext) string { panic(msg) }
	return p
}

// Build returns the plugin itself; it exists for fluent readability.
func (p *StubPlugin) Build() *StubPlugin { return p }

// Name implements core.Plugin.
func (p *StubPlugin) Name() string { return p.name }

// Enabled implements core.Plugin.
func (p *StubPlugin) Enabled() bool { return p.enabled }

// CanHandle implements core.Plugin and counts the call.
func (p *StubPlugin) CanHandle(input string) bool {
	p.CanHandleCalls++
	return p.match(input)
}

// Execute implements core.Plugin and counts the call.
func (p *StubPlugin) Execute(input string, rc *core.RequestContext) string {
	p.ExecuteCalls++
	return p.execute(input, rc)
}

// Capabilities implements core.Plugin.
func (p *StubPlugin) Capabilities() core.Capability {
	return core.Capability{Name: p.name, Description: "stub plugin for tests"}
}
