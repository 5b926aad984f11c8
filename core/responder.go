package core

// Responder produces a reply for inputs no plugin claimed. The orchestrator
// invokes it with the same RequestContext it would hand to a plugin.
//
// Implementations follow the plugin no-panic contract: faults are rendered
// into the returned string, never raised.
type Responder interface {
	Respond(input string, rc *RequestContext) string
}

// ResponderFunc adapts a plain function to the Responder interface.
type ResponderFunc func(input string, rc *RequestContext) string

// Respond calls the wrapped function.
func (f ResponderFunc) Respond(input string, rc *RequestContext) string {
	return f(input, rc)
}
