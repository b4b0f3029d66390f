package commands

import (
	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/wmconfig"
)

// ReplaceContainer swaps old for newNode in old's parent, copying
// old's size-percent onto newNode if both are tiling containers
// (spec §4.3; [containers.Tree.Replace] deliberately leaves that
// copy to the command layer).
func ReplaceContainer(state *State, cfg *wmconfig.Config, old, newNode containers.Node) (Summary, error) {
	if oldTl := containers.AsTiling(old); oldTl != nil {
		if newTl := containers.AsTiling(newNode); newTl != nil {
			newTl.SetSizePercent(oldTl.SizePercent())
		}
	}

	if err := state.Tree.Replace(old, newNode); err != nil {
		return Summary{}, err
	}
	if err := state.Tree.Destroy(old); err != nil {
		return Summary{}, err
	}

	return Summary{SubjectContainerID: newNode.AsBase().ID()}, nil
}
