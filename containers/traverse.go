package containers

import "github.com/google/uuid"

// Ancestors returns id's ancestors, nearest first, ending at the
// root. id itself is not included.
func (t *Tree) Ancestors(id ID) []Node {
	var out []Node
	n, ok := t.Get(id)
	if !ok {
		return nil
	}
	cur := n.AsBase().ParentID()
	for cur != uuid.Nil {
		p, ok := t.Get(cur)
		if !ok {
			break
		}
		out = append(out, p)
		cur = p.AsBase().ParentID()
	}
	return out
}

// IsDescendantOf reports whether id is a descendant of potentialAncestor
// (or equal to it).
func (t *Tree) IsDescendantOf(id, potentialAncestor ID) bool {
	if id == potentialAncestor {
		return true
	}
	n, ok := t.Get(id)
	if !ok {
		return false
	}
	cur := n.AsBase().ParentID()
	for cur != uuid.Nil {
		if cur == potentialAncestor {
			return true
		}
		p, ok := t.Get(cur)
		if !ok {
			return false
		}
		cur = p.AsBase().ParentID()
	}
	return false
}

// CommonAncestor returns the nearest container that is an ancestor
// of (or equal to) both a and b, or false if the tree is malformed
// and none exists (should not happen given invariant 1).
func (t *Tree) CommonAncestor(a, b ID) (Node, bool) {
	ancestorsOf := func(id ID) []ID {
		chain := []ID{id}
		n, ok := t.Get(id)
		if !ok {
			return chain
		}
		cur := n.AsBase().ParentID()
		for cur != uuid.Nil {
			chain = append(chain, cur)
			p, ok := t.Get(cur)
			if !ok {
				break
			}
			cur = p.AsBase().ParentID()
		}
		return chain
	}

	aChain := ancestorsOf(a)
	bSet := make(map[ID]bool, len(ancestorsOf(b)))
	for _, id := range ancestorsOf(b) {
		bSet[id] = true
	}
	for _, id := range aChain {
		if bSet[id] {
			return t.Get(id)
		}
	}
	return nil, false
}

// Descendants returns id's descendants in pre-order (each node
// before its children, children in child order).
func (t *Tree) Descendants(id ID) []Node {
	var out []Node
	n, ok := t.Get(id)
	if !ok {
		return nil
	}
	var walk func(Node)
	walk = func(cur Node) {
		for _, childID := range cur.AsBase().Children() {
			child, ok := t.Get(childID)
			if !ok {
				continue
			}
			out = append(out, child)
			walk(child)
		}
	}
	walk(n)
	return out
}

// Siblings returns id's siblings in child order, not including id
// itself. It returns nil for the root, which has no parent.
func (t *Tree) Siblings(id ID) []Node {
	return t.selfAndSiblings(id, false)
}

// SelfAndSiblings returns id and its siblings in child order. It
// returns just id for the root.
func (t *Tree) SelfAndSiblings(id ID) []Node {
	return t.selfAndSiblings(id, true)
}

func (t *Tree) selfAndSiblings(id ID, includeSelf bool) []Node {
	n, ok := t.Get(id)
	if !ok {
		return nil
	}
	parentID := n.AsBase().ParentID()
	if parentID == uuid.Nil {
		if includeSelf {
			return []Node{n}
		}
		return nil
	}
	parent, ok := t.Get(parentID)
	if !ok {
		return nil
	}
	var out []Node
	for _, childID := range parent.AsBase().Children() {
		if !includeSelf && childID == id {
			continue
		}
		if child, ok := t.Get(childID); ok {
			out = append(out, child)
		}
	}
	return out
}

// SelfAndSiblingsInFocusOrder returns id and its siblings ordered by
// the parent's focus order (most-recently-focused first). It returns
// just id for the root.
func (t *Tree) SelfAndSiblingsInFocusOrder(id ID) []Node {
	n, ok := t.Get(id)
	if !ok {
		return nil
	}
	parentID := n.AsBase().ParentID()
	if parentID == uuid.Nil {
		return []Node{n}
	}
	parent, ok := t.Get(parentID)
	if !ok {
		return nil
	}
	var out []Node
	for _, childID := range parent.AsBase().FocusOrder() {
		if child, ok := t.Get(childID); ok {
			out = append(out, child)
		}
	}
	return out
}

// TilingSiblings returns id's tiling siblings (split containers and
// tiling windows sharing id's parent), not including id itself.
func (t *Tree) TilingSiblings(id ID) []Tiling {
	var out []Tiling
	for _, n := range t.Siblings(id) {
		if tl := AsTiling(n); tl != nil {
			out = append(out, tl)
		}
	}
	return out
}

// SelfAndTilingSiblings returns id (if tiling) and its tiling
// siblings sharing id's parent.
func (t *Tree) SelfAndTilingSiblings(id ID) []Tiling {
	var out []Tiling
	for _, n := range t.SelfAndSiblings(id) {
		if tl := AsTiling(n); tl != nil {
			out = append(out, tl)
		}
	}
	return out
}

// ParentMonitor walks up from id to find the owning [Monitor], or
// nil if id is not (yet) attached under one.
func (t *Tree) ParentMonitor(id ID) *Monitor {
	if n, ok := t.Get(id); ok {
		if m, ok := n.(*Monitor); ok {
			return m
		}
	}
	for _, a := range t.Ancestors(id) {
		if m, ok := a.(*Monitor); ok {
			return m
		}
	}
	return nil
}

// ParentWorkspace walks up from id to find the owning [Workspace],
// or nil if id is not (yet) attached under one.
func (t *Tree) ParentWorkspace(id ID) *Workspace {
	if n, ok := t.Get(id); ok {
		if w, ok := n.(*Workspace); ok {
			return w
		}
	}
	for _, a := range t.Ancestors(id) {
		if w, ok := a.(*Workspace); ok {
			return w
		}
	}
	return nil
}

// ParentDirectionContainer returns the nearest ancestor that is a
// [DirectionContainer] (a workspace or split), or nil. A window's
// parent is always a direction container (invariant 3); this walks
// past any non-direction-container node defensively.
func (t *Tree) ParentDirectionContainer(id ID) DirectionContainer {
	n, ok := t.Get(id)
	if !ok {
		return nil
	}
	parentID := n.AsBase().ParentID()
	for parentID != uuid.Nil {
		p, ok := t.Get(parentID)
		if !ok {
			return nil
		}
		if dc := AsDirectionContainer(p); dc != nil {
			return dc
		}
		parentID = p.AsBase().ParentID()
	}
	return nil
}
