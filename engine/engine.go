package engine

import (
	"fmt"
	"time"

	"github.com/stewardhq/steward/conversation"
	"github.com/stewardhq/steward/core"
	"github.com/stewardhq/steward/logging"
	"github.com/stewardhq/steward/registry"
	"github.com/stewardhq/steward/responder"
)

// GenericErrorReply is returned to the caller when a routing fault is
// recovered at the engine boundary. The fault itself is logged; the reply
// never leaks internal details.
const GenericErrorReply = "I'm sorry, I ran into an unexpected problem while handling that. Please try again."

// Options configures an Engine instance using the functional options pattern.
//
// All dependencies have in-memory defaults suitable for development and
// testing; production wiring typically supplies a populated registry and a
// structured logger.
type Options struct {
	// Registry holds the loaded plugins in routing-precedence order.
	// Defaults to an empty registry if not provided.
	Registry *registry.Registry

	// History records completed exchanges. Defaults to a fresh bounded
	// history if not provided.
	History *conversation.History

	// HistoryLimit caps the exchange history when the engine constructs its
	// own History. Ignored when History is supplied. Defaults to
	// conversation.DefaultLimit.
	HistoryLimit int

	// Responder handles inputs no plugin claimed. Defaults to the echo stub.
	Responder core.Responder

	// Logger provides structured logging. Defaults to NoOp logger if nil.
	Logger logging.Logger
}

// Engine orchestrates routing of user inputs to plugins and manages the
// conversation state.
//
// Core responsibilities:
//   - Context building: every process call gets a fresh RequestContext with
//     an orchestrator-owned timestamp, raw input and request id
//   - Routing: first-match-wins scan over enabled plugins in registration
//     order, with the fallback responder as the terminal handler
//   - State: completed exchanges (plugin or fallback) are appended to the
//     bounded history; a recovered fault records nothing
//   - Containment: plugins are contractually required never to panic; the
//     engine's recover is a defensive backstop that converts any fault into
//     GenericErrorReply instead of propagating it
//
// Concurrency model: the engine assumes a single synchronous caller; one
// Process call runs to completion before the next begins. The registry is
// read-only after load; the history guards its own mutations.
type Engine struct {
	registry  *registry.Registry
	history   *conversation.History
	responder core.Responder
	logger    logging.Logger
}

// New creates an Engine with sensible defaults and optional configuration.
func New(optFns ...func(o *Options)) *Engine {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Registry == nil {
		opts.Registry = registry.New()
	}
	if opts.History == nil {
		opts.History = conversation.NewHistory(opts.HistoryLimit)
	}
	if opts.Responder == nil {
		opts.Responder = responder.NewEcho()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Engine{
		registry:  opts.Registry,
		history:   opts.History,
		responder: opts.Responder,
		logger:    opts.Logger,
	}
}

// Process routes one user input and returns the response.
//
// The scan visits plugins in registration order, skipping disabled ones (an
// orchestrator policy: disabled plugins stay registered and enumerable but
// are never routed to). The first enabled plugin claiming the input
// executes; otherwise the fallback responder answers. Either way the
// exchange is recorded. A recovered fault yields GenericErrorReply and
// leaves the history untouched, so garbage never persists as a real turn.
func (e *Engine) Process(input string, extra map[string]any) (response string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("process.recovered", "panic", fmt.Sprint(r), "input_len", len(input))
			response = GenericErrorReply
		}
	}()

	rc := core.NewRequestContext(input, extra, e.logger)

	for _, p := range e.registry.Plugins() {
		if !p.Enabled() {
			continue
		}
		if !p.CanHandle(input) {
			continue
		}

		e.logger.Info("process.routed", "plugin", p.Name(), "request_id", rc.RequestID)

		resp := p.Execute(input, rc)
		e.history.Append(input, resp)
		return resp
	}

	e.logger.Debug("process.fallback", "request_id", rc.RequestID)

	resp := e.responder.Respond(input, rc)
	e.history.Append(input, resp)
	return resp
}

// CapabilityReport aggregates each plugin's capability description, keyed by
// registered plugin name.
type CapabilityReport struct {
	Plugins      map[string]core.Capability `json:"plugins"`
	Conversation bool                       `json:"conversation"`
	GeneratedAt  time.Time                  `json:"timestamp"`
}

// Capabilities returns the aggregated capability report. No side effects.
func (e *Engine) Capabilities() CapabilityReport {
	report := CapabilityReport{
		Plugins:      make(map[string]core.Capability, e.registry.Len()),
		Conversation: e.history != nil,
		GeneratedAt:  time.Now(),
	}
	for _, p := range e.registry.Plugins() {
		report.Plugins[p.Name()] = p.Capabilities()
	}
	return report
}

// Status is a point-in-time snapshot of the assistant's state.
type Status struct {
	PluginCount        int      `json:"plugins_loaded"`
	ConversationActive bool     `json:"conversation_active"`
	LastInteraction    string   `json:"last_interaction,omitempty"`
	Plugins            []string `json:"capabilities"`
}

// Status reports plugin count, conversation activity, the last interaction
// timestamp (RFC 3339, empty when no exchange exists) and the plugin names
// in registration order. No side effects.
func (e *Engine) Status() Status {
	st := Status{
		PluginCount:        e.registry.Len(),
		ConversationActive: e.history.Active(),
		Plugins:            e.registry.Names(),
	}
	if ts, ok := e.history.LastTimestamp(); ok {
		st.LastInteraction = ts.Format(time.RFC3339)
	}
	return st
}

// ResetConversation clears the conversation history.
func (e *Engine) ResetConversation() {
	e.history.Reset()
	e.logger.Info("conversation history reset")
}

// Registry exposes the plugin registry for lookup and enumeration.
func (e *Engine) Registry() *registry.Registry { return e.registry }

// History exposes the conversation history.
func (e *Engine) History() *conversation.History { return e.history }
