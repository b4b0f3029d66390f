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

func newTestState(t *testing.T) (*commands.State, *containers.Monitor, *containers.Workspace) {
	t.Helper()
	fake := platform.NewFake([]platform.MonitorInfo{{Index: 0, Rect: geom.NewRect(0, 0, 1920, 1080), DPI: 96}})
	state := commands.NewState(wmevent.NewBus(), fake)

	mon := containers.NewMonitor(geom.NewRect(0, 0, 1920, 1080), 0, 96)
	require.NoError(t, state.Tree.Attach(mon, state.Tree.Root(), nil))
	ws := containers.NewWorkspace("main", nil, geom.Horizontal, containers.GapConfig{})
	require.NoError(t, state.Tree.Attach(ws, mon, nil))
	return state, mon, ws
}

func tilingSum(t *testing.T, siblings []containers.Tiling) float64 {
	t.Helper()
	sum := 0.0
	for _, s := range siblings {
		sum += s.SizePercent()
	}
	return sum
}

func TestAttachContainerRedistributesEqualShare(t *testing.T) {
	state, _, ws := newTestState(t)
	cfg := wmconfig.Default()

	winA := containers.NewTilingWindow(1, 1.0)
	_, err := commands.AttachContainer(state, &cfg, winA, ws, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, winA.SizePercent(), 1e-9)

	winB := containers.NewTilingWindow(2, 0)
	_, err = commands.AttachContainer(state, &cfg, winB, ws, nil)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, winA.SizePercent(), 1e-9)
	assert.InDelta(t, 0.5, winB.SizePercent(), 1e-9)

	winC := containers.NewTilingWindow(3, 0)
	_, err = commands.AttachContainer(state, &cfg, winC, ws, nil)
	require.NoError(t, err)

	siblings := state.Tree.SelfAndTilingSiblings(winC.ID())
	assert.InDelta(t, 1.0, tilingSum(t, siblings), 1e-9)
	assert.InDelta(t, 1.0/3.0, winC.SizePercent(), 1e-9)
}

func TestResizeTilingContainerPreservesSum(t *testing.T) {
	state, _, ws := newTestState(t)
	cfg := wmconfig.Default()

	winA := containers.NewTilingWindow(1, 0)
	winB := containers.NewTilingWindow(2, 0)
	_, err := commands.AttachContainer(state, &cfg, winA, ws, nil)
	require.NoError(t, err)
	_, err = commands.AttachContainer(state, &cfg, winB, ws, nil)
	require.NoError(t, err)

	_, err = commands.ResizeTilingContainer(state, &cfg, winA, 0.2)
	require.NoError(t, err)

	assert.InDelta(t, 0.7, winA.SizePercent(), 1e-9)
	assert.InDelta(t, 0.3, winB.SizePercent(), 1e-9)
}

func TestResizeTilingContainerRejectsBelowMinimum(t *testing.T) {
	state, _, ws := newTestState(t)
	cfg := wmconfig.Default()

	winA := containers.NewTilingWindow(1, 0)
	winB := containers.NewTilingWindow(2, 0)
	_, err := commands.AttachContainer(state, &cfg, winA, ws, nil)
	require.NoError(t, err)
	_, err = commands.AttachContainer(state, &cfg, winB, ws, nil)
	require.NoError(t, err)

	_, err = commands.ResizeTilingContainer(state, &cfg, winA, -0.6)
	assert.Error(t, err)
	assert.InDelta(t, 0.5, winA.SizePercent(), 1e-9)
	assert.InDelta(t, 0.5, winB.SizePercent(), 1e-9)
}
