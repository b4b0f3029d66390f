package commands

import (
	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/wmconfig"
)

// SetActiveWindowBorder recolors active's border to the configured
// active color and, if previouslyActive is non-nil, recolors it back
// to the inactive color (spec §4.3).
func SetActiveWindowBorder(state *State, cfg *wmconfig.Config, active containers.ID, previouslyActive *containers.ID) (Summary, error) {
	if n, ok := state.Tree.Get(active); ok {
		if win, ok := n.(*containers.Window); ok {
			if err := state.Platform.SetBorder(win.Handle(), cfg.ActiveBorderColor); err != nil {
				return Summary{}, err
			}
		}
	}

	if previouslyActive != nil {
		if n, ok := state.Tree.Get(*previouslyActive); ok {
			if win, ok := n.(*containers.Window); ok {
				if err := state.Platform.SetBorder(win.Handle(), cfg.InactiveBorderColor); err != nil {
					return Summary{}, err
				}
			}
		}
	}

	return Summary{SubjectContainerID: active}, nil
}
