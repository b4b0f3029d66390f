package containers_test

import (
	"testing"

	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMonitor(t *testing.T, tr *containers.Tree) *containers.Monitor {
	t.Helper()
	m := containers.NewMonitor(geom.NewRect(0, 0, 1920, 1080), 0, 96)
	require.NoError(t, tr.Attach(m, tr.Root(), nil))
	return m
}

func TestAttachSetsParentAndChildOrder(t *testing.T) {
	tr := containers.NewTree()
	mon := containers.NewMonitor(geom.NewRect(0, 0, 1920, 1080), 0, 96)

	require.NoError(t, tr.Attach(mon, tr.Root(), nil))
	assert.Equal(t, tr.Root().ID(), mon.ParentID())
	assert.Equal(t, []containers.ID{mon.ID()}, tr.Root().Children())
	assert.Equal(t, []containers.ID{mon.ID()}, tr.Root().FocusOrder())
}

func TestAttachRejectsCycle(t *testing.T) {
	tr := containers.NewTree()
	mon := newTestMonitor(t, tr)

	ws := containers.NewWorkspace("1", nil, geom.Horizontal, containers.GapConfig{})
	require.NoError(t, tr.Attach(ws, mon, nil))

	// Detach mon first so the rejection comes from the cycle check,
	// not from mon already having a parent.
	require.NoError(t, tr.Detach(mon))
	err := tr.Attach(mon, ws, nil)
	assert.Error(t, err)
}

func TestDetachRestoresTree(t *testing.T) {
	tr := containers.NewTree()
	mon := newTestMonitor(t, tr)
	other := containers.NewMonitor(geom.NewRect(1920, 0, 1920, 1080), 1, 96)
	require.NoError(t, tr.Attach(other, tr.Root(), nil))

	before := append([]containers.ID{}, tr.Root().Children()...)

	require.NoError(t, tr.Detach(mon))
	require.NoError(t, tr.Attach(mon, tr.Root(), nil))

	assert.ElementsMatch(t, before, tr.Root().Children())
}

func TestIsDescendantOfAndCommonAncestor(t *testing.T) {
	tr := containers.NewTree()
	mon := newTestMonitor(t, tr)
	ws := containers.NewWorkspace("1", nil, geom.Horizontal, containers.GapConfig{})
	require.NoError(t, tr.Attach(ws, mon, nil))
	split := containers.NewSplit(geom.Horizontal, 1.0)
	require.NoError(t, tr.Attach(split, ws, nil))
	winA := containers.NewTilingWindow(1, 0.5)
	winB := containers.NewTilingWindow(2, 0.5)
	require.NoError(t, tr.Attach(winA, split, nil))
	require.NoError(t, tr.Attach(winB, split, nil))

	assert.True(t, tr.IsDescendantOf(winA.ID(), mon.ID()))
	assert.False(t, tr.IsDescendantOf(mon.ID(), winA.ID()))

	ancestor, ok := tr.CommonAncestor(winA.ID(), winB.ID())
	require.True(t, ok)
	assert.Equal(t, split.ID(), ancestor.AsBase().ID())
}

func TestSetFocusedDescendantIsIdempotentAndUpdatesEveryAncestor(t *testing.T) {
	tr := containers.NewTree()
	mon := newTestMonitor(t, tr)
	ws := containers.NewWorkspace("1", nil, geom.Horizontal, containers.GapConfig{})
	require.NoError(t, tr.Attach(ws, mon, nil))
	winA := containers.NewTilingWindow(1, 0.5)
	winB := containers.NewTilingWindow(2, 0.5)
	require.NoError(t, tr.Attach(winA, ws, nil))
	require.NoError(t, tr.Attach(winB, ws, nil))

	require.NoError(t, tr.SetFocusedDescendant(winA.ID()))
	focused, ok := tr.FocusedContainer()
	require.True(t, ok)
	assert.Equal(t, winA.ID(), focused.AsBase().ID())

	require.NoError(t, tr.SetFocusedDescendant(winA.ID()))
	focused, ok = tr.FocusedContainer()
	require.True(t, ok)
	assert.Equal(t, winA.ID(), focused.AsBase().ID())
}

func TestDescendantsPreOrder(t *testing.T) {
	tr := containers.NewTree()
	mon := newTestMonitor(t, tr)
	ws := containers.NewWorkspace("1", nil, geom.Horizontal, containers.GapConfig{})
	require.NoError(t, tr.Attach(ws, mon, nil))
	split := containers.NewSplit(geom.Horizontal, 1.0)
	require.NoError(t, tr.Attach(split, ws, nil))
	win := containers.NewTilingWindow(1, 1.0)
	require.NoError(t, tr.Attach(win, split, nil))

	descendants := tr.Descendants(mon.ID())
	require.Len(t, descendants, 3)
	assert.Equal(t, ws.ID(), descendants[0].AsBase().ID())
	assert.Equal(t, split.ID(), descendants[1].AsBase().ID())
	assert.Equal(t, win.ID(), descendants[2].AsBase().ID())
}
