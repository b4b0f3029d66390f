package commands

import (
	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/layout"
	"cogentcore.org/wm/wmconfig"
	"cogentcore.org/wm/wmlog"
)

// Redraw recomputes the layout of the given workspace and submits
// every resulting window rectangle to the platform facade — the
// smallest covering subtree for a dirty workspace (spec §4.3,
// "redraw(dirty_set) invokes the layout engine over the smallest
// covering subtree").
func Redraw(state *State, cfg *wmconfig.Config, workspaceID containers.ID) (Summary, error) {
	rects, err := layout.ComputeWorkspace(state.Tree, workspaceID)
	if err != nil {
		return Summary{}, err
	}

	for id, rect := range rects {
		n, ok := state.Tree.Get(id)
		if !ok {
			continue
		}
		win, ok := n.(*containers.Window)
		if !ok {
			continue
		}
		if err := state.Platform.ApplyRect(win.Handle(), rect); err != nil {
			wmlog.Log("redraw.apply_rect", err)
		}
	}

	return Summary{SubjectContainerID: workspaceID}, nil
}
