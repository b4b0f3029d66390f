// Package layout translates the container tree plus per-node sizing
// state into absolute pixel rectangles for every visible window
// (spec §4.2). It is pure: it never touches the platform facade
// itself, only produces the rectangles the command pipeline's
// redraw command then submits through it (spec §5).
package layout

import (
	"fmt"
	"math"

	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/geom"
)

// Rects maps every positioned container to its computed rectangle.
// Minimized windows are never present (spec §4.2, "not drawn").
type Rects map[containers.ID]geom.Rect

// ComputeMonitor lays out the given monitor, using its focused
// workspace (the head of its focus order) as the one currently
// visible.
func ComputeMonitor(t *containers.Tree, monitorID containers.ID) (Rects, error) {
	n, ok := t.Get(monitorID)
	if !ok {
		return nil, fmt.Errorf("layout: monitor %s not found", monitorID)
	}
	monitor, ok := n.(*containers.Monitor)
	if !ok {
		return nil, fmt.Errorf("layout: %s is not a monitor", monitorID)
	}
	focusOrder := monitor.FocusOrder()
	if len(focusOrder) == 0 {
		return Rects{}, nil
	}
	active, ok := t.Get(focusOrder[0])
	if !ok {
		return Rects{}, nil
	}
	ws, ok := active.(*containers.Workspace)
	if !ok {
		return Rects{}, nil
	}
	return ComputeWorkspace(t, ws.ID())
}

// ComputeWorkspace lays out a single workspace subtree: the smallest
// covering subtree redraw(dirty_set) needs when only one workspace
// changed (spec §4.3's redraw command).
func ComputeWorkspace(t *containers.Tree, workspaceID containers.ID) (Rects, error) {
	n, ok := t.Get(workspaceID)
	if !ok {
		return nil, fmt.Errorf("layout: workspace %s not found", workspaceID)
	}
	ws, ok := n.(*containers.Workspace)
	if !ok {
		return nil, fmt.Errorf("layout: %s is not a workspace", workspaceID)
	}
	monitor := t.ParentMonitor(workspaceID)
	if monitor == nil {
		return nil, fmt.Errorf("layout: workspace %s has no parent monitor", workspaceID)
	}

	monitorRect := monitor.Rect()
	outer := ws.Gaps().Outer.Resolve(monitorRect.Width, monitorRect.Height)
	contentRect := monitorRect.Inset(outer)

	out := Rects{}
	layoutChildren(t, ws, contentRect, ws.TilingDirection(), ws, monitorRect, out)
	return out, nil
}

// layoutChildren positions parent's children within parentRect along
// tilingDirection, then recurses into any child that is itself a
// direction container.
func layoutChildren(
	t *containers.Tree,
	parent containers.Node,
	parentRect geom.Rect,
	tilingDirection geom.TilingDirection,
	workspace *containers.Workspace,
	monitorRect geom.Rect,
	out Rects,
) {
	var tilingChildren []containers.Node
	var nonTiling []containers.Node
	for _, childID := range parent.AsBase().Children() {
		child, ok := t.Get(childID)
		if !ok {
			continue
		}
		if containers.AsTiling(child) != nil {
			tilingChildren = append(tilingChildren, child)
		} else {
			nonTiling = append(nonTiling, child)
		}
	}

	layoutTilingSiblings(tilingChildren, parentRect, tilingDirection, workspace, monitorRect, out)
	for _, child := range tilingChildren {
		if split, ok := child.(*containers.Split); ok {
			rect := out[split.ID()]
			layoutChildren(t, split, rect, split.TilingDirection(), workspace, monitorRect, out)
		}
	}

	for _, child := range nonTiling {
		layoutNonTiling(child, monitorRect, workspace, out)
	}
}

// layoutTilingSiblings implements spec §4.2's per-child size formula
// once, over a capability view ([containers.Tiling]), so split
// containers and tiling windows share a single implementation
// instead of one each (spec §9's macro-replicated-geometry note).
func layoutTilingSiblings(
	children []containers.Node,
	parentRect geom.Rect,
	direction geom.TilingDirection,
	workspace *containers.Workspace,
	monitorRect geom.Rect,
	out Rects,
) {
	n := len(children)
	if n == 0 {
		return
	}

	gaps := make([]int, n) // gaps[i] is the gap following child i
	for i, c := range children {
		gaps[i] = effectiveInnerGap(c, workspace).ToPixels(monitorRect.Width)
	}
	totalGap := 0
	for i := 0; i < n-1; i++ {
		totalGap += gaps[i]
	}

	var parentExtent, crossExtent, parentOrigin, crossOrigin int
	if direction == geom.Horizontal {
		parentExtent, crossExtent = parentRect.Width, parentRect.Height
		parentOrigin, crossOrigin = parentRect.X, parentRect.Y
	} else {
		parentExtent, crossExtent = parentRect.Height, parentRect.Width
		parentOrigin, crossOrigin = parentRect.Y, parentRect.X
	}

	usable := parentExtent - totalGap
	extents := make([]int, n)
	sumExceptLast := 0
	for i, c := range children {
		if i == n-1 {
			continue
		}
		tl := containers.AsTiling(c)
		extents[i] = int(math.RoundToEven(tl.SizePercent() * float64(usable)))
		sumExceptLast += extents[i]
	}
	extents[n-1] = usable - sumExceptLast

	offset := 0
	for i, c := range children {
		axisPos := parentOrigin + offset
		rect := makeRect(direction, axisPos, crossOrigin, extents[i], crossExtent)

		if win, ok := c.(*containers.Window); ok {
			out[c.AsBase().ID()] = rect.Expand(win.BorderDelta())
		} else {
			out[c.AsBase().ID()] = rect
		}

		offset += extents[i]
		if i < n-1 {
			offset += gaps[i]
		}
	}
}

func makeRect(direction geom.TilingDirection, axisPos, crossPos, axisExtent, crossExtent int) geom.Rect {
	if direction == geom.Horizontal {
		return geom.NewRect(axisPos, crossPos, axisExtent, crossExtent)
	}
	return geom.NewRect(crossPos, axisPos, crossExtent, axisExtent)
}

// effectiveInnerGap returns a window's own inner-gap override if it
// has one, or the owning workspace's default otherwise. Split
// containers have no override field and always use the workspace
// default (spec §4.1, §4.2).
func effectiveInnerGap(n containers.Node, workspace *containers.Workspace) geom.Length {
	if win, ok := n.(*containers.Window); ok {
		if override := win.InnerGapOverride(); override != nil {
			return *override
		}
	}
	return workspace.Gaps().Inner
}

// layoutNonTiling positions a floating, fullscreen, or minimized
// window (spec §4.2). Minimized windows are omitted from out.
func layoutNonTiling(n containers.Node, monitorRect geom.Rect, workspace *containers.Workspace, out Rects) {
	win, ok := n.(*containers.Window)
	if !ok {
		return
	}
	switch n.AsBase().Kind() {
	case containers.KindFullscreenWindow:
		out[win.ID()] = monitorRect.Expand(win.BorderDelta())
	case containers.KindFloatingWindow:
		clamped := ClampFloating(win.Rect(), monitorRect, DefaultMinVisibleArea)
		out[win.ID()] = clamped.Expand(win.BorderDelta())
	case containers.KindMinimizedWindow:
		// not drawn
	}
}

// DefaultMinVisibleArea is the minimum visible pixel area the layout
// engine passes to [ClampFloating] for every floating window. It is
// always used; the layout engine does not read a configured value.
const DefaultMinVisibleArea = 48 * 48

// ClampFloating nudges rect back toward monitorRect without changing
// its size. If rect already overlaps monitorRect by at least minArea,
// it is returned unchanged. Otherwise each axis is clamped on its own
// so that rect overlaps monitorRect by at least minSide pixels on that
// axis, where minSide is ceil(sqrt(minArea)) capped at rect's width
// and height. The visible area therefore reaches minArea only when
// rect is at least minSide wide and tall; for a narrower or shorter
// rect it can stay below minArea even where a larger overlap would
// fit.
func ClampFloating(rect, monitorRect geom.Rect, minArea int) geom.Rect {
	if rect.Intersect(monitorRect).Area() >= minArea {
		return rect
	}

	minSide := int(math.Ceil(math.Sqrt(float64(minArea))))
	minSide = min(minSide, rect.Width, rect.Height)

	x := clampAxis(rect.X, rect.Width, monitorRect.X, monitorRect.Width, minSide)
	y := clampAxis(rect.Y, rect.Height, monitorRect.Y, monitorRect.Height, minSide)
	return geom.NewRect(x, y, rect.Width, rect.Height)
}

// clampAxis moves a 1-D span [pos, pos+extent) so that it overlaps
// [boundsPos, boundsPos+boundsExtent) by at least minOverlap pixels.
func clampAxis(pos, extent, boundsPos, boundsExtent, minOverlap int) int {
	lowest := boundsPos - extent + minOverlap
	highest := boundsPos + boundsExtent - minOverlap
	return int(clampInt(int64(pos), int64(min(lowest, highest)), int64(max(lowest, highest))))
}

func clampInt(v, lo, hi int64) int64 {
	return max(lo, min(v, hi))
}
