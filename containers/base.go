package containers

import "cogentcore.org/wm/geom"

// Base holds the fields and behavior common to every container
// variant: identity, parent back-reference, child order, and focus
// order (spec invariants 1, 4, and 6). Every variant struct embeds
// Base.
//
// Parent and child links are stored as [ID] keys into a [Tree]'s
// arena rather than as direct struct pointers, so the tree has no
// owning cycles: a child's back-reference to its parent does not
// keep the parent subtree artificially alive and is always resolved
// through the arena (spec §3.4, §9).
type Base struct {
	id     ID
	kind   Kind
	parent ID // zero value (uuid.Nil) means no parent (root, or detached)

	// children is the canonical child order.
	children []ID

	// focusOrder is a permutation of children, most-recently-focused
	// subtree first (spec invariant 4).
	focusOrder []ID
}

func newBase(kind Kind) Base {
	return Base{id: NewID(), kind: kind}
}

// ID returns the container's stable identifier.
func (b *Base) ID() ID { return b.id }

// Kind returns the container's variant tag.
func (b *Base) Kind() Kind { return b.kind }

// ParentID returns the identifier of the container's parent, or
// uuid.Nil if it has none (only true for the root, or a container
// that has been detached and not yet destroyed).
func (b *Base) ParentID() ID { return b.parent }

// Children returns the child order. Callers must not mutate the
// returned slice; use [Tree] mutation operations instead.
func (b *Base) Children() []ID { return b.children }

// FocusOrder returns the focus order, most-recently-focused first.
// Callers must not mutate the returned slice.
func (b *Base) FocusOrder() []ID { return b.focusOrder }

// HasChildren reports whether the container has any children.
func (b *Base) HasChildren() bool { return len(b.children) > 0 }

// Node is the capability every container variant supports
// regardless of kind: identity, structure, and access back to its
// own [Base]. Algorithms that only need common behavior accept a
// Node; algorithms that need variant-specific behavior type-assert
// to a narrower capability interface such as [Tiling] or
// [DirectionContainer], following the teacher's AsFrame/AsCoreTree
// accessor-per-capability pattern rather than a type switch at every
// call site.
type Node interface {
	AsBase() *Base
}

// AsBase implements [Node] for every variant, via the embedded Base.
func (b *Base) AsBase() *Base { return b }

// Tiling is the capability of containers that hold a share of their
// parent's extent along the parent's tiling axis: split containers
// and tiling windows (spec §3.1).
type Tiling interface {
	Node
	SizePercent() float64
	SetSizePercent(float64)
}

// AsTiling returns n as a [Tiling] if its kind supports it, or nil.
func AsTiling(n Node) Tiling {
	if t, ok := n.(Tiling); ok && t.AsBase().Kind().IsTiling() {
		return t
	}
	return nil
}

// DirectionContainer is the capability of containers that define a
// tiling axis for their children: workspaces and split containers
// (spec §3.1, invariant 3).
type DirectionContainer interface {
	Node
	TilingDirection() geom.TilingDirection
	SetTilingDirection(geom.TilingDirection)
}

// AsDirectionContainer returns n as a [DirectionContainer] if its
// kind supports it, or nil.
func AsDirectionContainer(n Node) DirectionContainer {
	if d, ok := n.(DirectionContainer); ok && d.AsBase().Kind().IsDirectionContainer() {
		return d
	}
	return nil
}

// WindowLike is the capability common to every window variant:
// tiling, floating, fullscreen, and minimized (spec §3.1).
type WindowLike interface {
	Node
	Handle() Handle
	BorderDelta() geom.RectDelta
	InnerGap() geom.Length
	FocusMode() geom.FocusMode
}

// AsWindow returns n as a [WindowLike] if its kind is a window
// variant, or nil.
func AsWindow(n Node) WindowLike {
	if w, ok := n.(WindowLike); ok && w.AsBase().Kind().IsWindow() {
		return w
	}
	return nil
}
