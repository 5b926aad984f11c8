// Package steward provides a high-level façade over the routing engine and
// its collaborators (plugin registry, conversation history, fallback
// responder, logging), enabling rapid construction of a personal-assistant
// shell. Most applications interact with this package by:
//  1. Creating an Assistant via New() with the plugins to load
//  2. Calling Process for each user input
//  3. Inspecting Capabilities / Status and resetting the conversation as needed
//
// The façade delegates orchestration to engine.Engine while keeping setup
// and usage ergonomics concise. All defaults are safe for local development
// and testing; real deployments typically supply a structured logger and a
// non-stub responder.
package steward

import (
	"github.com/stewardhq/steward/conversation"
	"github.com/stewardhq/steward/core"
	"github.com/stewardhq/steward/engine"
	"github.com/stewardhq/steward/logging"
	"github.com/stewardhq/steward/registry"
	"github.com/stewardhq/steward/responder"
)

// Options configures the Assistant instance.
type Options struct {
	// Plugins are registered in order; their order defines routing
	// precedence. A name collision aborts construction.
	Plugins []core.Plugin

	// Responder handles inputs no plugin claimed (defaults to the echo stub).
	Responder core.Responder

	// HistoryLimit caps the conversation history (defaults to
	// conversation.DefaultLimit).
	HistoryLimit int

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// Assistant is the high-level façade aggregating the routing engine and its
// collaborators.
type Assistant struct {
	opts   Options
	engine *engine.Engine
}

// New creates an Assistant, registering the configured plugins in order. A
// plugin name collision is fatal at startup and reported as an
// initialization error; it is never silently resolved by overwriting.
func New(optFns ...func(o *Options)) (*Assistant, error) {
	opts := Options{
		Responder: responder.NewEcho(),
		Logger:    logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	reg := registry.New()
	for _, p := range opts.Plugins {
		if err := reg.Register(p); err != nil {
			return nil, &core.InitializationError{Component: "plugin registry", Err: err}
		}
	}

	eng := engine.New(func(o *engine.Options) {
		o.Registry = reg
		o.HistoryLimit = opts.HistoryLimit
		o.Responder = opts.Responder
		o.Logger = opts.Logger
	})

	opts.Logger.Info("assistant initialized", "plugins", reg.Len())

	return &Assistant{opts: opts, engine: eng}, nil
}

// Process routes one user input and returns the response. Optional extra
// context values are merged into the request context; the reserved
// timestamp/input/request id keys always stay orchestrator-owned.
func (a *Assistant) Process(input string, extra map[string]any) string {
	return a.engine.Process(input, extra)
}

// Capabilities returns the aggregated capability report of all plugins.
func (a *Assistant) Capabilities() engine.CapabilityReport {
	return a.engine.Capabilities()
}

// Status returns a point-in-time snapshot of the assistant's state.
func (a *Assistant) Status() engine.Status {
	return a.engine.Status()
}

// ResetConversation clears the conversation history.
func (a *Assistant) ResetConversation() {
	a.engine.ResetConversation()
}

// Plugin retrieves a registered plugin by name.
func (a *Assistant) Plugin(name string) (core.Plugin, error) {
	return a.engine.Registry().Get(name)
}

// History exposes the conversation history.
func (a *Assistant) History() *conversation.History {
	return a.engine.History()
}
