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

func TestRedrawAppliesRectsToPlatform(t *testing.T) {
	state, _, ws := newTestState(t)
	cfg := wmconfig.Default()

	winA := containers.NewTilingWindow(1, 0)
	winB := containers.NewTilingWindow(2, 0)
	_, err := commands.AttachContainer(state, &cfg, winA, ws, nil)
	require.NoError(t, err)
	_, err = commands.AttachContainer(state, &cfg, winB, ws, nil)
	require.NoError(t, err)

	_, err = commands.Redraw(state, &cfg, ws.ID())
	require.NoError(t, err)

	fake := state.Platform.(*platform.Fake)
	assert.Equal(t, geom.NewRect(0, 0, 960, 1080), fake.AppliedRects[winA.Handle()])
	assert.Equal(t, geom.NewRect(960, 0, 960, 1080), fake.AppliedRects[winB.Handle()])
}

func TestSetFocusedDescendantSetsForegroundAndPublishesEvent(t *testing.T) {
	state, _, ws := newTestState(t)
	cfg := wmconfig.Default()

	// other is attached first, so it heads the workspace's focus order
	// and focusing winA changes the resolved focused leaf.
	other := containers.NewTilingWindow(41, 0)
	_, err := commands.AttachContainer(state, &cfg, other, ws, nil)
	require.NoError(t, err)
	winA := containers.NewTilingWindow(42, 0)
	_, err = commands.AttachContainer(state, &cfg, winA, ws, nil)
	require.NoError(t, err)

	events, _ := state.Events.Subscribe()

	_, err = commands.SetFocusedDescendant(state, &cfg, winA.ID())
	require.NoError(t, err)

	fake := state.Platform.(*platform.Fake)
	assert.Equal(t, containers.Handle(42), fake.Foreground)

	focused, ok := state.Tree.FocusedContainer()
	require.True(t, ok)
	assert.Equal(t, winA.ID(), focused.AsBase().ID())

	ev := <-events
	assert.Equal(t, wmevent.FocusChanged, ev.Kind)
	assert.Equal(t, winA.ID(), ev.Container)
}

func TestSetFocusedDescendantIsQuietOnRepeatedFocus(t *testing.T) {
	state, _, ws := newTestState(t)
	cfg := wmconfig.Default()

	winA := containers.NewTilingWindow(42, 0)
	_, err := commands.AttachContainer(state, &cfg, winA, ws, nil)
	require.NoError(t, err)

	_, err = commands.SetFocusedDescendant(state, &cfg, winA.ID())
	require.NoError(t, err)

	events, _ := state.Events.Subscribe()

	_, err = commands.SetFocusedDescendant(state, &cfg, winA.ID())
	require.NoError(t, err)

	select {
	case ev := <-events:
		t.Fatalf("expected no event on a no-op refocus, got %v", ev.Kind)
	default:
	}
}

func TestCenterCursorOnContainerMovesToMidpoint(t *testing.T) {
	state, _, _ := newTestState(t)
	cfg := wmconfig.Default()

	id := containers.NewID()
	_, err := commands.CenterCursorOnContainer(state, &cfg, id, geom.NewRect(100, 200, 400, 300))
	require.NoError(t, err)

	fake := state.Platform.(*platform.Fake)
	assert.Equal(t, 300, fake.CursorX)
	assert.Equal(t, 350, fake.CursorY)
}

func TestSetActiveWindowBorderRecolorsBoth(t *testing.T) {
	state, _, ws := newTestState(t)
	cfg := wmconfig.Default()

	winA := containers.NewTilingWindow(1, 0)
	winB := containers.NewTilingWindow(2, 0)
	_, err := commands.AttachContainer(state, &cfg, winA, ws, nil)
	require.NoError(t, err)
	_, err = commands.AttachContainer(state, &cfg, winB, ws, nil)
	require.NoError(t, err)

	prev := winB.ID()
	_, err = commands.SetActiveWindowBorder(state, &cfg, winA.ID(), &prev)
	require.NoError(t, err)

	fake := state.Platform.(*platform.Fake)
	assert.Equal(t, cfg.ActiveBorderColor, fake.Borders[winA.Handle()])
	assert.Equal(t, cfg.InactiveBorderColor, fake.Borders[winB.Handle()])
}

func TestExecProcessSpawnsThroughPlatform(t *testing.T) {
	state, _, _ := newTestState(t)
	cfg := wmconfig.Default()

	_, err := commands.ExecProcess(state, &cfg, "notepad.exe", []string{"file.txt"})
	require.NoError(t, err)

	fake := state.Platform.(*platform.Fake)
	assert.Equal(t, []string{"notepad.exe", "file.txt"}, fake.SpawnedCommand)
}
