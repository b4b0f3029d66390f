package containers

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Tree is the node arena: the single owner of every live container.
// Parent/child links are [ID] keys resolved through this map, so
// detaching a subtree from its parent does not by itself make the
// nodes unreachable by the Go garbage collector. [Tree.Destroy]
// (called by the command pipeline on a detached container, spec §3.3)
// removes only that one container from the map; its descendants stay
// registered.
type Tree struct {
	nodes map[ID]Node
	root  *Root
}

// NewTree creates the root container and the arena that owns it.
// The root exists for the entire process (spec §3.3).
func NewTree() *Tree {
	root := NewRoot()
	return &Tree{
		nodes: map[ID]Node{root.ID(): root},
		root:  root,
	}
}

// Root returns the tree's singleton root container.
func (t *Tree) Root() *Root { return t.root }

// Get resolves an [ID] to its container, or reports false if no
// container with that identifier is currently live.
func (t *Tree) Get(id ID) (Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Register adds a freshly constructed, not-yet-attached container to
// the arena so it can be resolved by ID. [Tree.Attach] registers its
// child automatically if it has not been registered yet.
func (t *Tree) Register(n Node) {
	t.nodes[n.AsBase().ID()] = n
}

// Destroy removes a detached container from the arena. Calling it on
// a container that still has a parent is a programmer error.
func (t *Tree) Destroy(n Node) error {
	b := n.AsBase()
	if b.parent != uuid.Nil {
		return fmt.Errorf("containers: cannot destroy %s: still attached to parent %s", b.id, b.parent)
	}
	delete(t.nodes, b.id)
	return nil
}

// Attach inserts child into parent's child list at index (appended
// at the end if index is nil), sets child's parent back-reference,
// and appends child to parent's focus order. It is the tree's raw
// structural primitive; it does not redistribute size-percent among
// tiling siblings or emit events — see package commands for the
// invariant-preserving command of the same name (spec §4.1 vs §4.3).
func (t *Tree) Attach(child, parent Node, index *int) error {
	if parent == nil {
		return fmt.Errorf("containers: attach: parent is nil")
	}
	parentBase := parent.AsBase()
	if _, ok := t.Get(parentBase.ID()); !ok {
		return fmt.Errorf("containers: attach: parent %s is not in this tree", parentBase.ID())
	}
	childBase := child.AsBase()
	if childBase.parent != uuid.Nil {
		return fmt.Errorf("containers: attach: child %s already has a parent", childBase.ID())
	}
	if childBase.ID() == parentBase.ID() {
		return fmt.Errorf("containers: attach: a container cannot be its own parent")
	}
	if t.IsDescendantOf(parentBase.ID(), childBase.ID()) {
		return fmt.Errorf("containers: attach: %s is an ancestor of %s", childBase.ID(), parentBase.ID())
	}

	t.Register(child)

	pos := len(parentBase.children)
	if index != nil && *index >= 0 && *index <= len(parentBase.children) {
		pos = *index
	}
	parentBase.children = slices.Insert(parentBase.children, pos, childBase.ID())
	parentBase.focusOrder = append(parentBase.focusOrder, childBase.ID())
	childBase.parent = parentBase.ID()
	return nil
}

// Detach removes child from its parent's child list and focus order
// and clears its parent back-reference. The child remains registered
// in the arena (it is not destroyed) so that a command can relocate
// it with a subsequent [Tree.Attach] before deciding whether to
// destroy it.
func (t *Tree) Detach(child Node) error {
	childBase := child.AsBase()
	if childBase.parent == uuid.Nil {
		return fmt.Errorf("containers: detach: %s has no parent", childBase.ID())
	}
	parentNode, ok := t.Get(childBase.parent)
	if !ok {
		return fmt.Errorf("containers: detach: parent %s not found", childBase.parent)
	}
	parentBase := parentNode.AsBase()

	idx := slices.Index(parentBase.children, childBase.ID())
	if idx < 0 {
		return fmt.Errorf("containers: detach: %s not found in parent %s's children", childBase.ID(), parentBase.ID())
	}
	parentBase.children = slices.Delete(parentBase.children, idx, idx+1)

	if fidx := slices.Index(parentBase.focusOrder, childBase.ID()); fidx >= 0 {
		parentBase.focusOrder = slices.Delete(parentBase.focusOrder, fidx, fidx+1)
	}
	childBase.parent = uuid.Nil
	return nil
}

// Replace swaps old's position in its parent's child list (and
// focus order) for newNode, without touching size-percent — the
// command pipeline's ReplaceContainer is responsible for copying
// old's size-percent onto newNode (spec §4.3). old is left detached
// (parent cleared) for the caller to destroy.
func (t *Tree) Replace(old, newNode Node) error {
	oldBase := old.AsBase()
	if oldBase.parent == uuid.Nil {
		return fmt.Errorf("containers: replace: %s has no parent", oldBase.ID())
	}
	parentNode, ok := t.Get(oldBase.parent)
	if !ok {
		return fmt.Errorf("containers: replace: parent %s not found", oldBase.parent)
	}
	parentBase := parentNode.AsBase()

	idx := slices.Index(parentBase.children, oldBase.ID())
	if idx < 0 {
		return fmt.Errorf("containers: replace: %s not found in parent %s's children", oldBase.ID(), parentBase.ID())
	}

	t.Register(newNode)
	newBase := newNode.AsBase()
	parentBase.children[idx] = newBase.ID()
	newBase.parent = parentBase.ID()

	if fidx := slices.Index(parentBase.focusOrder, oldBase.ID()); fidx >= 0 {
		parentBase.focusOrder[fidx] = newBase.ID()
	} else {
		parentBase.focusOrder = append(parentBase.focusOrder, newBase.ID())
	}

	oldBase.parent = uuid.Nil
	return nil
}
