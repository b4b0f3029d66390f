package commands_test

import (
	"testing"

	"cogentcore.org/wm/commands"
	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/geom"
	"cogentcore.org/wm/wmconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetachContainerRedistributesRemainingShare(t *testing.T) {
	state, _, ws := newTestState(t)
	cfg := wmconfig.Default()

	winA := containers.NewTilingWindow(1, 0)
	winB := containers.NewTilingWindow(2, 0)
	winC := containers.NewTilingWindow(3, 0)
	_, err := commands.AttachContainer(state, &cfg, winA, ws, nil)
	require.NoError(t, err)
	_, err = commands.AttachContainer(state, &cfg, winB, ws, nil)
	require.NoError(t, err)
	_, err = commands.AttachContainer(state, &cfg, winC, ws, nil)
	require.NoError(t, err)

	_, err = commands.DetachContainer(state, &cfg, winC)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, winA.SizePercent(), 1e-9)
	assert.InDelta(t, 0.5, winB.SizePercent(), 1e-9)
}

func TestMoveContainerWithinTreeFlattensDegenerateSplit(t *testing.T) {
	state, _, ws := newTestState(t)
	cfg := wmconfig.Default()

	split := containers.NewSplit(geom.Vertical, 1.0)
	require.NoError(t, state.Tree.Attach(split, ws, nil))
	winA := containers.NewTilingWindow(1, 0.5)
	winB := containers.NewTilingWindow(2, 0.5)
	require.NoError(t, state.Tree.Attach(winA, split, nil))
	require.NoError(t, state.Tree.Attach(winB, split, nil))

	other := containers.NewWorkspace("other", nil, geom.Horizontal, containers.GapConfig{})
	mon := state.Tree.ParentMonitor(ws.ID())
	require.NoError(t, state.Tree.Attach(other, mon, nil))

	_, err := commands.MoveContainerWithinTree(state, &cfg, winB, other, nil)
	require.NoError(t, err)

	splitStillThere, ok := state.Tree.Get(split.ID())
	assert.False(t, ok, "degenerate split should have been flattened away")
	_ = splitStillThere

	assert.Equal(t, ws.ID(), winA.ParentID(), "promoted window should now be a direct child of the workspace")
	assert.InDelta(t, 1.0, winA.SizePercent(), 1e-9, "promoted window inherits the split's size-percent share")
}

func TestFlattenSplitContainerPromotesChild(t *testing.T) {
	state, _, ws := newTestState(t)
	cfg := wmconfig.Default()

	split := containers.NewSplit(geom.Vertical, 0.4)
	require.NoError(t, state.Tree.Attach(split, ws, nil))
	win := containers.NewTilingWindow(1, 1.0)
	require.NoError(t, state.Tree.Attach(win, split, nil))

	s, promoted, ok := containers.IsDegenerateSplit(state.Tree, split)
	require.True(t, ok)

	_, err := commands.FlattenSplitContainer(state, &cfg, s, promoted)
	require.NoError(t, err)

	assert.Equal(t, ws.ID(), win.ParentID())
	assert.InDelta(t, 0.4, win.SizePercent(), 1e-9)
	_, stillExists := state.Tree.Get(split.ID())
	assert.False(t, stillExists)
}
