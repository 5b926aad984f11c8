package responder

import (
	"fmt"

	"github.com/stewardhq/steward/core"
)

// Echo is the default conversational stub. It acknowledges the input without
// attempting to understand it, which keeps the routing core testable and
// free of model dependencies.
type Echo struct{}

// NewEcho constructs the stub responder.
func NewEcho() *Echo { return &Echo{} }

// Respond implements core.Responder.
func (e *Echo) Respond(input string, rc *core.RequestContext) string {
	rc.LogDebug("fallback responder invoked", "request_id", rc.RequestID)
	return fmt.Sprintf("I understand you said: %q. I'm still learning how to help you better!", input)
}
