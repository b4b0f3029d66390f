package commands

import (
	"fmt"
	"math"

	"cogentcore.org/wm/containers"
)

// sizePercentEpsilon is the tolerance the sum-of-1.0 invariant is
// checked against (spec invariant 2 allows a small float64 slop).
const sizePercentEpsilon = 1e-4

// minSizePercent is the fixed floor below which a tiling container is
// never shrunk; it guards against a pathological zero-sized container.
// There is no configuration setting for it: wmconfig.Config has no
// minimum-size field.
const minSizePercent = 0.01

// snapshotSizePercents records every tiling sibling's current share,
// so a failed redistribution can be undone without re-deriving it.
// This is the scope of spec §7's "snapshot before mutation, restore
// on invariant failure": structural mutations are already validated
// atomically by [containers.Tree]'s own checks, so only the
// size-percent invariant needs an explicit rollback path.
func snapshotSizePercents(siblings []containers.Tiling) map[containers.ID]float64 {
	snap := make(map[containers.ID]float64, len(siblings))
	for _, s := range siblings {
		snap[s.AsBase().ID()] = s.SizePercent()
	}
	return snap
}

func restoreSizePercents(siblings []containers.Tiling, snap map[containers.ID]float64) {
	for _, s := range siblings {
		if p, ok := snap[s.AsBase().ID()]; ok {
			s.SetSizePercent(p)
		}
	}
}

// checkSizePercentSum returns an error if siblings' size percents do
// not sum to 1.0 within [sizePercentEpsilon].
func checkSizePercentSum(siblings []containers.Tiling) error {
	if len(siblings) == 0 {
		return nil
	}
	sum := 0.0
	for _, s := range siblings {
		sum += s.SizePercent()
	}
	if math.Abs(sum-1.0) > sizePercentEpsilon {
		return fmt.Errorf("commands: size-percent sum invariant violated: got %f, want 1.0", sum)
	}
	return nil
}

// distributeNewSibling gives a freshly attached tiling sibling an
// equal share of the parent's extent and shrinks the existing
// siblings proportionally so the sum stays 1.0 (spec invariant 2).
// siblings is the full post-attach set, including newSibling itself,
// so equalShare is 1/n over the new total rather than the old count.
func distributeNewSibling(siblings []containers.Tiling, newSibling containers.Tiling) {
	n := len(siblings)
	if n == 0 {
		newSibling.SetSizePercent(1.0)
		return
	}
	equalShare := 1.0 / float64(n)
	shrink := 1.0 - equalShare
	for _, s := range siblings {
		if s.AsBase().ID() == newSibling.AsBase().ID() {
			continue
		}
		s.SetSizePercent(s.SizePercent() * shrink)
	}
	newSibling.SetSizePercent(equalShare)
}

// redistributeRemovedSibling scales up the remaining tiling siblings
// proportionally to absorb removedPercent, keeping their relative
// ratios and the sum at 1.0 (spec invariant 2).
func redistributeRemovedSibling(remaining []containers.Tiling, removedPercent float64) {
	if len(remaining) == 0 {
		return
	}
	keep := 1.0 - removedPercent
	if keep <= 0 {
		equalShare := 1.0 / float64(len(remaining))
		for _, s := range remaining {
			s.SetSizePercent(equalShare)
		}
		return
	}
	for _, s := range remaining {
		s.SetSizePercent(s.SizePercent() / keep)
	}
}
