package core

import "time"

// Exchange is one recorded input/response pair. Exchanges are immutable once
// created; the Timestamp serializes to RFC 3339 and is non-decreasing across
// the exchanges of a conversation.
type Exchange struct {
	Timestamp time.Time `json:"timestamp"`
	Input     string    `json:"input"`
	Response  string    `json:"response"`
}

// NewExchange creates an exchange stamped with the current time.
func NewExchange(input, response string) Exchange {
	return Exchange{Timestamp: time.Now(), Input: input, Response: response}
}
