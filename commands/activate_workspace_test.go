package commands_test

import (
	"testing"

	"cogentcore.org/wm/commands"
	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/geom"
	"cogentcore.org/wm/platform"
	"cogentcore.org/wm/wmconfig"
	"cogentcore.org/wm/wmevent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func newMultiMonitorState(t *testing.T) (*commands.State, *containers.Monitor, *containers.Monitor) {
	t.Helper()
	fake := platform.NewFake([]platform.MonitorInfo{
		{Index: 0, Rect: geom.NewRect(0, 0, 1920, 1080), DPI: 96},
		{Index: 1, Rect: geom.NewRect(1920, 0, 1080, 1920), DPI: 96},
	})
	state := commands.NewState(wmevent.NewBus(), fake)

	monA := containers.NewMonitor(geom.NewRect(0, 0, 1920, 1080), 0, 96)
	require.NoError(t, state.Tree.Attach(monA, state.Tree.Root(), nil))
	monB := containers.NewMonitor(geom.NewRect(1920, 0, 1080, 1920), 1, 96)
	require.NoError(t, state.Tree.Attach(monB, state.Tree.Root(), nil))
	return state, monA, monB
}

func TestActivateWorkspaceByNameAttachesToBoundMonitorHorizontal(t *testing.T) {
	state, monA, _ := newMultiMonitorState(t)
	cfg := wmconfig.Default()
	cfg.Workspaces = []wmconfig.WorkspaceDef{{Name: "code", BindToMonitor: intPtr(0)}}

	events, _ := state.Events.Subscribe()

	_, err := commands.ActivateWorkspace(state, &cfg, strPtr("code"), nil)
	require.NoError(t, err)

	var ws *containers.Workspace
	for _, c := range monA.Children() {
		n, ok := state.Tree.Get(c)
		require.True(t, ok)
		if w, ok := n.(*containers.Workspace); ok {
			ws = w
		}
	}
	require.NotNil(t, ws)
	assert.Equal(t, "code", ws.Name())
	assert.Equal(t, geom.Horizontal, ws.TilingDirection())

	ev := <-events
	assert.Equal(t, wmevent.WorkspaceActivated, ev.Kind)
}

func TestActivateWorkspaceUsesVerticalTilingOnPortraitMonitor(t *testing.T) {
	state, _, monB := newMultiMonitorState(t)
	cfg := wmconfig.Default()
	cfg.Workspaces = []wmconfig.WorkspaceDef{{Name: "tall", BindToMonitor: intPtr(1)}}

	_, err := commands.ActivateWorkspace(state, &cfg, strPtr("tall"), nil)
	require.NoError(t, err)

	var ws *containers.Workspace
	for _, c := range monB.Children() {
		n, ok := state.Tree.Get(c)
		require.True(t, ok)
		if w, ok := n.(*containers.Workspace); ok {
			ws = w
		}
	}
	require.NotNil(t, ws)
	assert.Equal(t, geom.Vertical, ws.TilingDirection())
}

func TestActivateWorkspaceRejectsAlreadyActiveName(t *testing.T) {
	state, _, _ := newMultiMonitorState(t)
	cfg := wmconfig.Default()
	cfg.Workspaces = []wmconfig.WorkspaceDef{{Name: "code", BindToMonitor: intPtr(0)}}

	_, err := commands.ActivateWorkspace(state, &cfg, strPtr("code"), nil)
	require.NoError(t, err)

	_, err = commands.ActivateWorkspace(state, &cfg, strPtr("code"), nil)
	require.Error(t, err)
}

func TestActivateWorkspaceFallsBackToFocusedContainerMonitor(t *testing.T) {
	state, _, monB := newMultiMonitorState(t)
	cfg := wmconfig.Default()
	// Unbound workspace config: no bind-to-monitor hint, so resolution
	// must fall back to the focused container's monitor.
	cfg.Workspaces = []wmconfig.WorkspaceDef{{Name: "floating"}}

	existing := containers.NewWorkspace("anchor", nil, geom.Horizontal, containers.GapConfig{})
	require.NoError(t, state.Tree.Attach(existing, monB, nil))
	require.NoError(t, state.Tree.SetFocusedDescendant(existing.ID()))

	_, err := commands.ActivateWorkspace(state, &cfg, strPtr("floating"), nil)
	require.NoError(t, err)

	var found bool
	for _, c := range monB.Children() {
		n, ok := state.Tree.Get(c)
		require.True(t, ok)
		if w, ok := n.(*containers.Workspace); ok && w.Name() == "floating" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestActivateWorkspaceWithNoNameUsesNextInactiveConfig(t *testing.T) {
	state, monA, _ := newMultiMonitorState(t)
	cfg := wmconfig.Default()
	cfg.Workspaces = []wmconfig.WorkspaceDef{
		{Name: "first", BindToMonitor: intPtr(0)},
		{Name: "second", BindToMonitor: intPtr(0)},
	}

	_, err := commands.ActivateWorkspace(state, &cfg, nil, nil)
	require.NoError(t, err)

	var names []string
	for _, c := range monA.Children() {
		n, ok := state.Tree.Get(c)
		require.True(t, ok)
		if w, ok := n.(*containers.Workspace); ok {
			names = append(names, w.Name())
		}
	}
	assert.Equal(t, []string{"first"}, names)
}

func TestActivateWorkspaceErrorsWithNoMonitorResolvable(t *testing.T) {
	state := commands.NewState(wmevent.NewBus(), platform.NewFake(nil))
	cfg := wmconfig.Default()
	cfg.Workspaces = []wmconfig.WorkspaceDef{{Name: "orphan"}}

	_, err := commands.ActivateWorkspace(state, &cfg, strPtr("orphan"), nil)
	require.Error(t, err)
}
