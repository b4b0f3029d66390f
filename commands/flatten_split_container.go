package commands

import (
	"fmt"

	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/wmconfig"
)

// FlattenSplitContainer promotes split's sole tiling child into
// split's position in its own parent, inheriting split's size-percent
// share, then destroys the now-empty split (spec §4.1's degenerate-
// split rule: a split is removed once only one tiling child remains).
// Callers that already know child is split's sole tiling child (e.g.
// [DetachContainer], which just confirmed it via
// [containers.IsDegenerateSplit]) pass it directly.
func FlattenSplitContainer(state *State, cfg *wmconfig.Config, split *containers.Split, child containers.Node) (Summary, error) {
	if tl := containers.AsTiling(child); tl != nil {
		tl.SetSizePercent(split.SizePercent())
	}

	if err := state.Tree.Detach(child); err != nil {
		return Summary{}, err
	}
	if err := state.Tree.Replace(split, child); err != nil {
		return Summary{}, err
	}
	if err := state.Tree.Destroy(split); err != nil {
		return Summary{}, fmt.Errorf("commands: flatten: %w", err)
	}

	return Summary{SubjectContainerID: child.AsBase().ID()}, nil
}
