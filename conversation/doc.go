// Package conversation maintains the bounded, ordered log of exchanges
// between the user and the assistant. The history is owned exclusively by
// the orchestrator; it holds at most the 50 most recent exchanges, dropping
// the oldest entries when the cap is exceeded.
//
// A single mutex guards append/reset since the history is the only mutable
// structure shared with potential future concurrent callers.
package conversation
