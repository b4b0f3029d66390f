package containers

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// SetFocusedDescendant walks from target up to the root, and at
// every ancestor moves target's subtree to the head of that
// ancestor's focus-order list (spec §4.1). It is idempotent: calling
// it twice in a row with the same target leaves the tree unchanged
// the second time, since target's subtree is already at every
// ancestor's focus-order head.
func (t *Tree) SetFocusedDescendant(target ID) error {
	if _, ok := t.Get(target); !ok {
		return fmt.Errorf("containers: set-focused-descendant: %s not found", target)
	}

	cur := target
	for {
		n, ok := t.Get(cur)
		if !ok {
			return fmt.Errorf("containers: set-focused-descendant: %s not found", cur)
		}
		parentID := n.AsBase().ParentID()
		if parentID == uuid.Nil {
			return nil
		}
		parent, ok := t.Get(parentID)
		if !ok {
			return fmt.Errorf("containers: set-focused-descendant: parent %s not found", parentID)
		}
		moveToFocusHead(parent.AsBase(), cur)
		cur = parentID
	}
}

// moveToFocusHead moves childID to the front of parentBase's focus
// order, preserving the relative order of the rest.
func moveToFocusHead(parentBase *Base, childID ID) {
	idx := slices.Index(parentBase.focusOrder, childID)
	if idx < 0 {
		// Not tracked yet (shouldn't happen given invariant 4, but
		// keep the list a valid permutation rather than panicking).
		parentBase.focusOrder = append([]ID{childID}, parentBase.focusOrder...)
		return
	}
	if idx == 0 {
		return
	}
	parentBase.focusOrder = slices.Delete(parentBase.focusOrder, idx, idx+1)
	parentBase.focusOrder = slices.Insert(parentBase.focusOrder, 0, childID)
}

// FocusedDescendant resolves the focused leaf reachable from from by
// walking focus-order heads downward until a container with no
// children is reached (spec §4.1). It returns from itself if from is
// already a leaf.
func (t *Tree) FocusedDescendant(from ID) (Node, bool) {
	cur, ok := t.Get(from)
	if !ok {
		return nil, false
	}
	for {
		base := cur.AsBase()
		if !base.HasChildren() {
			return cur, true
		}
		if len(base.focusOrder) == 0 {
			return cur, true
		}
		head, ok := t.Get(base.focusOrder[0])
		if !ok {
			return cur, true
		}
		cur = head
	}
}

// FocusedContainer resolves the process-wide focused leaf starting
// from the root.
func (t *Tree) FocusedContainer() (Node, bool) {
	return t.FocusedDescendant(t.root.ID())
}
