package core

import (
	"time"

	"github.com/google/uuid"
	"github.com/stewardhq/steward/logging"
)

// Reserved context keys. The orchestrator always overwrites these with its
// own values when building a RequestContext, even if the caller supplied
// entries under the same names. This keeps the audit trail deterministic.
const (
	// KeyTimestamp carries the request timestamp in RFC 3339 form.
	KeyTimestamp = "timestamp"
	// KeyInput carries the raw user input.
	KeyInput = "input"
	// KeyRequestID carries the unique identifier of the process call.
	KeyRequestID = "request_id"
)

// RequestContext carries the per-request execution scope handed to plugins
// and the fallback responder. It aggregates:
//
//   - The request timestamp (stamped once at context-build time)
//   - The raw user input
//   - A unique request identifier for correlation and logging
//   - Caller supplied extra values, with reserved keys pinned to the
//     orchestrator's own values
//
// Unrecognized values must be ignored by plugins. A RequestContext is built
// fresh for every process call and must not be retained across calls.
type RequestContext struct {
	Timestamp time.Time
	Input     string
	RequestID string
	Values    map[string]any

	*loggerAdapter
}

// NewRequestContext builds a RequestContext for one process call, merging
// the caller's extra values and pinning the reserved keys.
func NewRequestContext(input string, extra map[string]any, logger logging.Logger) *RequestContext {
	rc := &RequestContext{
		Timestamp:     time.Now(),
		Input:         input,
		RequestID:     uuid.NewString(),
		Values:        make(map[string]any, len(extra)+3),
		loggerAdapter: newLoggerAdapter(logger),
	}
	for k, v := range extra {
		rc.Values[k] = v
	}
	rc.Values[KeyTimestamp] = rc.Timestamp.Format(time.RFC3339)
	rc.Values[KeyInput] = rc.Input
	rc.Values[KeyRequestID] = rc.RequestID
	return rc
}

// Value returns the value and existence flag for a context key.
func (rc *RequestContext) Value(key string) (any, bool) {
	v, ok := rc.Values[key]
	return v, ok
}
