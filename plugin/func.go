package plugin

import (
	"fmt"
	"strings"
	"time"

	"github.com/stewardhq/steward/core"
)

// FuncPlugin is a generic adapter that exposes a matcher and a handler
// function as a core.Plugin.
//
// Responsibilities:
//   - Routes CanHandle to the matcher without touching any state
//   - Invokes the handler with the per-request core.RequestContext
//   - Normalizes error handling so Execute never panics: handler errors and
//     panics are converted into a user-facing error string, fulfilling the
//     plugin no-raise contract
//
// Concurrency:
//
//	A FuncPlugin has no internal mutable state after construction; whether it
//	is safe for concurrent use depends entirely on the wrapped handler.
type FuncPlugin struct {
	name        string
	description string
	commands    []string
	version     string
	enabled     bool
	match       func(input string) bool
	handler     func(input string, rc *core.RequestContext) (string, error)
}

// FuncPluginOptions configures optional FuncPlugin metadata.
type FuncPluginOptions struct {
	// Commands lists the human-readable command patterns surfaced through
	// Capabilities.
	Commands []string
	// Version tags the capability description.
	Version string
	// Enabled controls routing participation; defaults to true.
	Enabled bool
}

// NewFuncPlugin constructs a FuncPlugin from a matcher and handler.
//
// Example:
//
//	echoTime := plugin.NewFuncPlugin(
//	  "clock",
//	  "Tell the current time",
//	  plugin.MatchKeywords("time", "clock"),
//	  func(input string, rc *core.RequestContext) (string, error) {
//	    return rc.Timestamp.Format(time.Kitchen), nil
//	  },
//	)
func NewFuncPlugin(
	name, description string,
	match func(input string) bool,
	handler func(input string, rc *core.RequestContext) (string, error),
	optFns ...func(o *FuncPluginOptions),
) *FuncPlugin {
	opts := FuncPluginOptions{Enabled: true}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &FuncPlugin{
		name:        name,
		description: description,
		commands:    opts.Commands,
		version:     opts.Version,
		enabled:     opts.Enabled,
		match:       match,
		handler:     handler,
	}
}

// MatchKeywords returns a matcher claiming inputs that contain any of the
// given keywords, case-insensitively.
func MatchKeywords(keywords ...string) func(input string) bool {
	return func(input string) bool {
		lower := strings.ToLower(input)
		for _, kw := range keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return true
			}
		}
		return false
	}
}

// Name implements core.Plugin.
func (p *FuncPlugin) Name() string { return p.name }

// Enabled implements core.Plugin.
func (p *FuncPlugin) Enabled() bool { return p.enabled }

// CanHandle implements core.Plugin. It is a pure predicate over the matcher.
func (p *FuncPlugin) CanHandle(input string) bool { return p.match(input) }

// Capabilities implements core.Plugin.
func (p *FuncPlugin) Capabilities() core.Capability {
	return core.Capability{
		Name:        p.name,
		Description: p.description,
		Commands:    p.commands,
		Version:     p.version,
	}
}

// Execute invokes the handler and contains its faults. Errors and panics are
// logged and rendered into the returned response string.
//
// Logging fields:
//
//	plugin: plugin name
//	request_id: correlates the process call with the plugin execution
//	duration_ms: execution time in milliseconds
func (p *FuncPlugin) Execute(input string, rc *core.RequestContext) (response string) {
	logger := rc.Logger()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("plugin.execute.panic", "plugin", p.name, "request_id", rc.RequestID, "panic", fmt.Sprint(r))
			response = faultReply(p.name, fmt.Sprint(r))
		}
	}()

	logger.Debug("plugin.execute.start", "plugin", p.name, "request_id", rc.RequestID)

	out, err := p.handler(input, rc)
	if err != nil {
		logger.Error("plugin.execute.error", "plugin", p.name, "request_id", rc.RequestID, "error", err.Error())
		return faultReply(p.name, err.Error())
	}

	logger.Info("plugin.execute.success", "plugin", p.name, "duration_ms", time.Since(start).Milliseconds())

	return out
}

// faultReply renders an internal fault as a user-facing response string.
func faultReply(plugin, detail string) string {
	return fmt.Sprintf("The %s plugin ran into a problem: %s", plugin, detail)
}
