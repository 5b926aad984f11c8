package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestContext_PopulatesReservedKeys(t *testing.T) {
	rc := NewRequestContext("hello", nil, nil)

	assert.Equal(t, "hello", rc.Input)
	assert.False(t, rc.Timestamp.IsZero())
	assert.Len(t, rc.RequestID, 36) // UUID length

	v, ok := rc.Value(KeyInput)
	require.True(t, ok)
	assert.Equal(t, "hello", v)

	v, ok = rc.Value(KeyTimestamp)
	require.True(t, ok)
	assert.Equal(t, rc.Timestamp.Format(time.RFC3339), v)

	v, ok = rc.Value(KeyRequestID)
	require.True(t, ok)
	assert.Equal(t, rc.RequestID, v)
}

func TestNewRequestContext_MergesExtraValues(t *testing.T) {
	rc := NewRequestContext("hi", map[string]any{"channel": "cli", "attempt": 2}, nil)

	v, ok := rc.Value("channel")
	require.True(t, ok)
	assert.Equal(t, "cli", v)

	v, ok = rc.Value("attempt")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestNewRequestContext_ReservedKeysNotCallerOverridable(t *testing.T) {
	extra := map[string]any{
		KeyTimestamp: "1999-01-01T00:00:00Z",
		KeyInput:     "spoofed",
		KeyRequestID: "spoofed-id",
	}
	rc := NewRequestContext("real input", extra, nil)

	v, _ := rc.Value(KeyInput)
	assert.Equal(t, "real input", v)
	v, _ = rc.Value(KeyTimestamp)
	assert.Equal(t, rc.Timestamp.Format(time.RFC3339), v)
	v, _ = rc.Value(KeyRequestID)
	assert.Equal(t, rc.RequestID, v)
}

func TestNewRequestContext_NilLoggerIsSafe(t *testing.T) {
	rc := NewRequestContext("x", nil, nil)
	require.NotNil(t, rc.Logger())
	rc.LogDebug("should not panic")
}

func TestNewExchange(t *testing.T) {
	before := time.Now()
	ex := NewExchange("in", "out")

	assert.Equal(t, "in", ex.Input)
	assert.Equal(t, "out", ex.Response)
	assert.False(t, ex.Timestamp.Before(before))
}
