package commands

import (
	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/wmconfig"
	"cogentcore.org/wm/wmevent"
)

// DetachContainer detaches child from its parent, redistributing its
// vacated size-percent share among the remaining tiling siblings
// (spec invariant 2), then destroys it. If the former parent is a
// split left with exactly one tiling child, it is flattened (spec
// §4.1's degenerate-split rule).
func DetachContainer(state *State, cfg *wmconfig.Config, child containers.Node) (Summary, error) {
	parentID := child.AsBase().ParentID()
	tl := containers.AsTiling(child)

	var remaining []containers.Tiling
	var snap map[containers.ID]float64
	if tl != nil {
		remaining = state.Tree.TilingSiblings(child.AsBase().ID())
		snap = snapshotSizePercents(remaining)
	}

	if err := state.Tree.Detach(child); err != nil {
		return Summary{}, err
	}
	if err := state.Tree.Destroy(child); err != nil {
		return Summary{}, err
	}

	if tl != nil && len(remaining) > 0 {
		redistributeRemovedSibling(remaining, tl.SizePercent())
		if err := checkSizePercentSum(remaining); err != nil {
			restoreSizePercents(remaining, snap)
			return Summary{}, err
		}
	}

	if w := containers.AsWindow(child); w != nil {
		state.Events.Publish(wmevent.Event{Kind: wmevent.WindowUnmanaged, Container: child.AsBase().ID()})
	}

	if parent, ok := state.Tree.Get(parentID); ok {
		if split, promoted, ok := containers.IsDegenerateSplit(state.Tree, parent); ok {
			if _, err := FlattenSplitContainer(state, cfg, split, promoted); err != nil {
				return Summary{}, err
			}
		}
	}

	return Summary{SubjectContainerID: parentID}, nil
}
