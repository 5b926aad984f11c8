package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stewardhq/steward/conversation"
	"github.com/stewardhq/steward/core"
	"github.com/stewardhq/steward/internal/testutil"
	"github.com/stewardhq/steward/plugin"
	"github.com/stewardhq/steward/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, plugins ...core.Plugin) *Engine {
	t.Helper()
	reg := registry.New()
	for _, p := range plugins {
		require.NoError(t, reg.Register(p))
	}
	return New(func(o *Options) { o.Registry = reg })
}

func TestProcess_RoutesToMatchingPlugin(t *testing.T) {
	tasks := testutil.NewStubPlugin("tasks").MatchSubstrings("task", "todo").Reply("task noted").Build()
	e := newEngine(t, tasks)

	resp := e.Process("add task buy milk", nil)

	assert.Equal(t, "task noted", resp)
	assert.Equal(t, 1, tasks.ExecuteCalls)
	require.Equal(t, 1, e.History().Len())
	ex := e.History().Exchanges()[0]
	assert.Equal(t, "add task buy milk", ex.Input)
	assert.Equal(t, "task noted", ex.Response)
}

func TestProcess_FirstRegisteredClaimantWins(t *testing.T) {
	a := testutil.NewStubPlugin("a").MatchSubstrings("remind me").Reply("a wins").Build()
	b := testutil.NewStubPlugin("b").MatchSubstrings("remind me").Reply("b wins").Build()
	e := newEngine(t, a, b)

	// Deterministic on every call: the earlier registration always wins and
	// the loser's Execute is never invoked.
	for i := 0; i < 5; i++ {
		resp := e.Process("remind me", nil)
		assert.Equal(t, "a wins", resp)
	}
	assert.Equal(t, 5, a.ExecuteCalls)
	assert.Equal(t, 0, b.ExecuteCalls)
}

func TestProcess_SkipsDisabledPlugin(t *testing.T) {
	disabled := testutil.NewStubPlugin("disabled").MatchAll().Reply("should never run").Disabled().Build()
	backup := testutil.NewStubPlugin("backup").MatchAll().Reply("backup ran").Build()
	e := newEngine(t, disabled, backup)

	resp := e.Process("anything", nil)

	assert.Equal(t, "backup ran", resp)
	assert.Equal(t, 0, disabled.ExecuteCalls)
	// The routing policy lives in the engine: the disabled plugin's
	// CanHandle is not even consulted.
	assert.Equal(t, 0, disabled.CanHandleCalls)
}

func TestProcess_DisabledOnlyPluginFallsBack(t *testing.T) {
	disabled := testutil.NewStubPlugin("disabled").MatchAll().Disabled().Build()
	e := newEngine(t, disabled)

	resp := e.Process("hello", nil)

	assert.Contains(t, resp, "hello")
	assert.Contains(t, resp, "still learning")
	assert.Equal(t, 0, disabled.ExecuteCalls)
}

func TestProcess_FallbackWhenNoPluginClaims(t *testing.T) {
	tasks := testutil.NewStubPlugin("tasks").MatchSubstrings("task").Build()
	e := newEngine(t, tasks)

	resp := e.Process("what's the weather", nil)

	assert.Contains(t, resp, "what's the weather")
	assert.Equal(t, 0, tasks.ExecuteCalls)
	// Fallback exchanges are recorded too.
	require.Equal(t, 1, e.History().Len())
	assert.Equal(t, resp, e.History().Exchanges()[0].Response)
}

func TestProcess_CustomResponder(t *testing.T) {
	reg := registry.New()
	e := New(func(o *Options) {
		o.Registry = reg
		o.Responder = core.ResponderFunc(func(input string, rc *core.RequestContext) string {
			return "custom: " + input
		})
	})

	assert.Equal(t, "custom: hi", e.Process("hi", nil))
}

func TestProcess_PanickingPluginYieldsGenericReplyAndNoExchange(t *testing.T) {
	bad := testutil.NewStubPlugin("bad").MatchAll().PanicOnExecute("kaboom").Build()
	e := newEngine(t, bad)

	e.Process("warm up", map[string]any{}) // panics too; nothing recorded
	lenBefore := e.History().Len()

	resp := e.Process("trigger", nil)

	assert.Equal(t, GenericErrorReply, resp)
	assert.Equal(t, lenBefore, e.History().Len())
	assert.Equal(t, 0, e.History().Len())
}

func TestProcess_HistoryCappedAtMostRecentFifty(t *testing.T) {
	echoing := testutil.NewStubPlugin("echoing").MatchAll().
		ReplyFunc(func(input string, _ *core.RequestContext) string { return "re: " + input }).Build()
	e := newEngine(t, echoing)

	total := conversation.DefaultLimit + 17
	for i := 0; i < total; i++ {
		e.Process(fmt.Sprintf("message %d", i), nil)
	}

	exchanges := e.History().Exchanges()
	require.Len(t, exchanges, conversation.DefaultLimit)
	assert.Equal(t, fmt.Sprintf("message %d", total-conversation.DefaultLimit), exchanges[0].Input)
	assert.Equal(t, fmt.Sprintf("message %d", total-1), exchanges[len(exchanges)-1].Input)
	for i := 1; i < len(exchanges); i++ {
		assert.False(t, exchanges[i].Timestamp.Before(exchanges[i-1].Timestamp))
	}
}

func TestProcess_ReservedContextKeysPinned(t *testing.T) {
	var seen *core.RequestContext
	spy := testutil.NewStubPlugin("spy").MatchAll().
		ReplyFunc(func(input string, rc *core.RequestContext) string {
			seen = rc
			return "ok"
		}).Build()
	e := newEngine(t, spy)

	e.Process("real", map[string]any{
		core.KeyInput:     "spoofed",
		core.KeyTimestamp: "1999-01-01T00:00:00Z",
		"channel":         "cli",
	})

	require.NotNil(t, seen)
	v, _ := seen.Value(core.KeyInput)
	assert.Equal(t, "real", v)
	v, _ = seen.Value(core.KeyTimestamp)
	assert.Equal(t, seen.Timestamp.Format(time.RFC3339), v)
	v, _ = seen.Value("channel")
	assert.Equal(t, "cli", v)
}

func TestProcess_TaskScenario(t *testing.T) {
	e := newEngine(t, plugin.NewTaskTracker())

	resp := e.Process("add task buy milk", nil)
	assert.Contains(t, resp, "buy milk")

	resp = e.Process("what's the weather", nil)
	assert.Contains(t, resp, "what's the weather")
	assert.Contains(t, resp, "still learning")

	assert.Equal(t, 2, e.History().Len())
}

func TestCapabilities(t *testing.T) {
	e := newEngine(t,
		plugin.NewTaskTracker(),
		testutil.NewStubPlugin("stub").Build(),
	)

	before := time.Now()
	report := e.Capabilities()

	assert.True(t, report.Conversation)
	assert.False(t, report.GeneratedAt.Before(before))
	require.Len(t, report.Plugins, 2)
	assert.Equal(t, "Task Management", report.Plugins["tasks"].Name)
	assert.Contains(t, report.Plugins["tasks"].Commands, "list tasks")
	assert.Equal(t, "stub", report.Plugins["stub"].Name)

	// Pure aggregation: no exchange is recorded.
	assert.Equal(t, 0, e.History().Len())
}

func TestStatus(t *testing.T) {
	a := testutil.NewStubPlugin("alpha").Build()
	b := testutil.NewStubPlugin("bravo").MatchAll().Reply("done").Build()
	e := newEngine(t, a, b)

	st := e.Status()
	assert.Equal(t, 2, st.PluginCount)
	assert.False(t, st.ConversationActive)
	assert.Empty(t, st.LastInteraction)
	assert.Equal(t, []string{"alpha", "bravo"}, st.Plugins)

	e.Process("hello", nil)

	st = e.Status()
	assert.True(t, st.ConversationActive)
	require.NotEmpty(t, st.LastInteraction)
	_, err := time.Parse(time.RFC3339, st.LastInteraction)
	assert.NoError(t, err)
}

func TestResetConversation(t *testing.T) {
	e := newEngine(t, testutil.NewStubPlugin("p").MatchAll().Reply("ok").Build())
	e.Process("hello", nil)
	require.True(t, e.History().Active())

	e.ResetConversation()

	assert.False(t, e.History().Active())
	assert.Equal(t, 0, e.History().Len())
}

func TestNew_Defaults(t *testing.T) {
	e := New()

	require.NotNil(t, e.Registry())
	require.NotNil(t, e.History())
	assert.Equal(t, 0, e.Registry().Len())
	assert.Equal(t, conversation.DefaultLimit, e.History().Limit())

	// With no plugins the fallback answers.
	resp := e.Process("hi", nil)
	assert.Contains(t, resp, "hi")
}
