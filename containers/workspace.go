package containers

import "cogentcore.org/wm/geom"

// GapConfig is a workspace's gap settings: the outer gap between the
// workspace and its monitor's border, and the inner gap between
// adjacent tiling siblings (spec §4.2).
type GapConfig struct {
	Outer geom.LengthDelta
	Inner geom.Length
}

// Workspace owns a split-or-window subtree and is itself a direction
// container: its children are tiled along its tiling direction
// unless reparented under a nested split.
type Workspace struct {
	Base

	name            string
	boundMonitor    *int // monitor index hint from config, nil if unbound
	tilingDirection geom.TilingDirection
	gaps            GapConfig
}

// NewWorkspace constructs a workspace with the given name, bound
// monitor hint, initial tiling direction, and gap configuration.
func NewWorkspace(name string, boundMonitor *int, tilingDirection geom.TilingDirection, gaps GapConfig) *Workspace {
	return &Workspace{
		Base:            newBase(KindWorkspace),
		name:            name,
		boundMonitor:    boundMonitor,
		tilingDirection: tilingDirection,
		gaps:            gaps,
	}
}

// Name returns the workspace's configured name.
func (w *Workspace) Name() string { return w.name }

// BoundMonitor returns the monitor index this workspace is bound to,
// or nil if it floats to whichever monitor it is activated on.
func (w *Workspace) BoundMonitor() *int { return w.boundMonitor }

// TilingDirection returns the axis children are tiled along,
// implementing [DirectionContainer].
func (w *Workspace) TilingDirection() geom.TilingDirection { return w.tilingDirection }

// SetTilingDirection changes the tiling axis, implementing
// [DirectionContainer].
func (w *Workspace) SetTilingDirection(d geom.TilingDirection) { w.tilingDirection = d }

// Gaps returns the workspace's gap configuration.
func (w *Workspace) Gaps() GapConfig { return w.gaps }

// SetGaps replaces the workspace's gap configuration.
func (w *Workspace) SetGaps(g GapConfig) { w.gaps = g }
