package commands

import (
	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/geom"
	"cogentcore.org/wm/wmconfig"
)

// CenterCursorOnContainer moves the mouse cursor to the midpoint of
// rect, the container's current on-screen rectangle as computed by
// package layout (spec §4.3). The rectangle is passed in rather than
// recomputed here, since the caller (the wm task, just after a
// redraw) already has it.
func CenterCursorOnContainer(state *State, cfg *wmconfig.Config, target containers.ID, rect geom.Rect) (Summary, error) {
	x := rect.X + rect.Width/2
	y := rect.Y + rect.Height/2
	if err := state.Platform.CenterCursor(x, y); err != nil {
		return Summary{}, err
	}
	return Summary{SubjectContainerID: target}, nil
}
