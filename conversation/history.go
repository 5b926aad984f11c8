package conversation

import (
	"sync"
	"time"

	"github.com/stewardhq/steward/core"
)

// DefaultLimit is the maximum number of exchanges retained in a history.
const DefaultLimit = 50

// History is an ordered sequence of exchanges capped at a maximum length.
// Appending past the cap discards the oldest entries so exactly the most
// recent ones survive. It is safe for concurrent access.
type History struct {
	mu        sync.Mutex
	limit     int
	exchanges []core.Exchange
}

// NewHistory constructs an empty history. A non-positive limit falls back to
// DefaultLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit}
}

// Append records a new exchange stamped with the current time and truncates
// from the front if the length exceeds the limit. It returns the recorded
// exchange. O(1) amortized.
func (h *History) Append(input, response string) core.Exchange {
	h.mu.Lock()
	defer h.mu.Unlock()
	ex := core.NewExchange(input, response)
	h.exchanges = append(h.exchanges, ex)
	if len(h.exchanges) > h.limit {
		h.exchanges = h.exchanges[len(h.exchanges)-h.limit:]
	}
	return ex
}

// Reset clears all exchanges. Idempotent.
func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.exchanges = nil
}

// LastTimestamp returns the timestamp of the most recent exchange, or a zero
// time and false when no exchanges exist.
func (h *History) LastTimestamp() (time.Time, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.exchanges) == 0 {
		return time.Time{}, false
	}
	return h.exchanges[len(h.exchanges)-1].Timestamp, true
}

// Active reports whether at least one exchange exists.
func (h *History) Active() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.exchanges) > 0
}

// Len reports the number of retained exchanges.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.exchanges)
}

// Exchanges returns a defensive copy of the retained exchanges in
// chronological order, preventing callers from mutating internal state.
func (h *History) Exchanges() []core.Exchange {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]core.Exchange, len(h.exchanges))
	copy(out, h.exchanges)
	return out
}

// Limit returns the configured maximum number of retained exchanges.
func (h *History) Limit() int { return h.limit }
