package steward

import (
	"errors"
	"testing"

	"github.com/stewardhq/steward/core"
	"github.com/stewardhq/steward/internal/testutil"
	"github.com/stewardhq/steward/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	a, err := New()
	require.NoError(t, err)

	resp := a.Process("hello there", nil)
	assert.Contains(t, resp, "hello there")
	assert.True(t, a.History().Active())
}

func TestNew_RegistersPluginsInOrder(t *testing.T) {
	a, err := New(func(o *Options) {
		o.Plugins = []core.Plugin{
			testutil.NewStubPlugin("first").MatchAll().Reply("first wins").Build(),
			testutil.NewStubPlugin("second").MatchAll().Reply("second wins").Build(),
		}
	})
	require.NoError(t, err)

	assert.Equal(t, "first wins", a.Process("anything", nil))
	assert.Equal(t, []string{"first", "second"}, a.Status().Plugins)
}

func TestNew_NameCollisionIsFatal(t *testing.T) {
	_, err := New(func(o *Options) {
		o.Plugins = []core.Plugin{
			testutil.NewStubPlugin("dup").Build(),
			testutil.NewStubPlugin("dup").Build(),
		}
	})

	require.Error(t, err)
	var initErr *core.InitializationError
	require.ErrorAs(t, err, &initErr)
	var dup *core.DuplicatePluginError
	assert.ErrorAs(t, err, &dup)
}

func TestAssistant_PluginLookup(t *testing.T) {
	tracker := plugin.NewTaskTracker()
	a, err := New(func(o *Options) { o.Plugins = []core.Plugin{tracker} })
	require.NoError(t, err)

	got, err := a.Plugin("tasks")
	require.NoError(t, err)
	assert.Same(t, core.Plugin(tracker), got)

	_, err = a.Plugin("missing")
	assert.True(t, errors.Is(err, core.ErrPluginNotFound))
}

func TestAssistant_EndToEnd(t *testing.T) {
	a, err := New(func(o *Options) {
		o.Plugins = []core.Plugin{plugin.NewTaskTracker()}
	})
	require.NoError(t, err)

	resp := a.Process("add task buy milk", nil)
	assert.Contains(t, resp, "buy milk")

	resp = a.Process("list tasks", nil)
	assert.Contains(t, resp, "buy milk")

	st := a.Status()
	assert.Equal(t, 1, st.PluginCount)
	assert.True(t, st.ConversationActive)
	assert.NotEmpty(t, st.LastInteraction)

	report := a.Capabilities()
	assert.Contains(t, report.Plugins, "tasks")

	a.ResetConversation()
	assert.False(t, a.Status().ConversationActive)
}
