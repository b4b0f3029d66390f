package commands

import (
	"fmt"

	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/wmconfig"
)

// ResizeTilingContainer changes target's size-percent by delta
// (positive grows it), taking the difference from its tiling
// siblings proportionally to their current shares so the sum stays
// at 1.0 (spec invariant 2, §8 scenario: attach/resize example).
// target is never resized below [minSizePercent], and the siblings'
// combined share is never driven negative; either case is rejected
// without mutating anything.
func ResizeTilingContainer(state *State, cfg *wmconfig.Config, target containers.Node, delta float64) (Summary, error) {
	tl := containers.AsTiling(target)
	if tl == nil {
		return Summary{}, fmt.Errorf("commands: resize: %s is not a tiling container", target.AsBase().ID())
	}

	siblings := state.Tree.TilingSiblings(target.AsBase().ID())
	newTarget := tl.SizePercent() + delta
	if newTarget < minSizePercent {
		return Summary{}, fmt.Errorf("commands: resize: target would shrink below minimum size")
	}
	if len(siblings) == 0 {
		return Summary{}, fmt.Errorf("commands: resize: no siblings to take space from")
	}

	siblingShareBefore := 1.0 - tl.SizePercent()
	if siblingShareBefore <= 0 {
		return Summary{}, fmt.Errorf("commands: resize: siblings have no remaining share")
	}
	siblingShareAfter := siblingShareBefore - delta
	if siblingShareAfter < minSizePercent*float64(len(siblings)) {
		return Summary{}, fmt.Errorf("commands: resize: siblings would shrink below minimum size")
	}

	all := append([]containers.Tiling{tl}, siblings...)
	snap := snapshotSizePercents(all)

	scale := siblingShareAfter / siblingShareBefore
	for _, s := range siblings {
		s.SetSizePercent(s.SizePercent() * scale)
	}
	tl.SetSizePercent(newTarget)

	if err := checkSizePercentSum(all); err != nil {
		restoreSizePercents(all, snap)
		return Summary{}, err
	}

	return Summary{SubjectContainerID: target.AsBase().ID()}, nil
}
