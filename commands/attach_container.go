package commands

import (
	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/wmconfig"
	"cogentcore.org/wm/wmevent"
)

// AttachContainer attaches child to parent at index (appended if
// nil), and, if child is a tiling container, redistributes
// size-percent among its new tiling siblings so the sum stays 1.0
// (spec §4.1 invariant 2, §4.3).
func AttachContainer(state *State, cfg *wmconfig.Config, child, parent containers.Node, index *int) (Summary, error) {
	tl := containers.AsTiling(child)
	var snap map[containers.ID]float64
	var siblingsAfter []containers.Tiling
	if tl != nil {
		siblingsAfter = append(siblingsAfter, tl)
		for _, c := range parent.AsBase().Children() {
			if n, ok := state.Tree.Get(c); ok {
				if other := containers.AsTiling(n); other != nil {
					siblingsAfter = append(siblingsAfter, other)
				}
			}
		}
		snap = snapshotSizePercents(siblingsAfter)
	}

	if err := state.Tree.Attach(child, parent, index); err != nil {
		return Summary{}, err
	}

	if tl != nil {
		distributeNewSibling(siblingsAfter, tl)
		if err := checkSizePercentSum(siblingsAfter); err != nil {
			restoreSizePercents(siblingsAfter, snap)
			if unErr := state.Tree.Detach(child); unErr != nil {
				return Summary{}, unErr
			}
			return Summary{}, err
		}
	}

	if w := containers.AsWindow(child); w != nil {
		state.Events.Publish(wmevent.Event{Kind: wmevent.WindowManaged, Container: child.AsBase().ID()})
	}

	return Summary{SubjectContainerID: child.AsBase().ID()}, nil
}
