package commands

import (
	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/wmconfig"
	"cogentcore.org/wm/wmevent"
)

// SetFocusedDescendant moves target to the head of the focus order at
// every one of its ancestors, gives it input focus through the
// platform facade if it is a window, and publishes FocusChanged only
// if the process-wide focused leaf (resolved from the root) changed
// (spec §4.1, §4.3, §4.4).
func SetFocusedDescendant(state *State, cfg *wmconfig.Config, target containers.ID) (Summary, error) {
	before, _ := state.Tree.FocusedContainer()

	if err := state.Tree.SetFocusedDescendant(target); err != nil {
		return Summary{}, err
	}

	if n, ok := state.Tree.Get(target); ok {
		if win, ok := n.(*containers.Window); ok {
			if err := state.Platform.SetForeground(win.Handle()); err != nil {
				return Summary{}, err
			}
		}
	}

	after, _ := state.Tree.FocusedContainer()
	if before == nil || after == nil || before.AsBase().ID() != after.AsBase().ID() {
		state.Events.Publish(wmevent.Event{Kind: wmevent.FocusChanged, Container: target})
	}
	return Summary{SubjectContainerID: target}, nil
}
