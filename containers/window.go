package containers

import "cogentcore.org/wm/geom"

// PreviousState records the kind and rectangle a window should be
// restored to after it leaves fullscreen or minimized display state
// (spec §3.1, "previous state for restoring").
type PreviousState struct {
	Kind Kind
	Rect geom.Rect
}

// Window is the shared representation for every window variant
// (tiling, floating, fullscreen, minimized). The spec's §9 design
// note calls for one shared geometry implementation across tiling
// leaves rather than a duplicated one per variant; using a single
// struct tagged by [Kind] extends that to the window fields
// themselves, since all four variants carry the same platform
// handle, border delta, gap override, focus mode, and previous-state
// bookkeeping and differ only in how the layout engine (package
// layout) positions them.
type Window struct {
	Base

	handle      Handle
	borderDelta geom.RectDelta
	innerGap    *geom.Length // override of the workspace's inner gap; nil uses the workspace default
	focusMode   geom.FocusMode

	// sizePercent is only meaningful while Kind == KindTilingWindow.
	sizePercent float64

	// rect is the absolute rectangle for a floating window, or the
	// restored rectangle to apply when a fullscreen/minimized window
	// returns to floating display.
	rect geom.Rect

	previous *PreviousState
}

// NewTilingWindow constructs a window in the tiling display state.
func NewTilingWindow(handle Handle, sizePercent float64) *Window {
	return &Window{Base: newBase(KindTilingWindow), handle: handle, sizePercent: sizePercent}
}

// NewFloatingWindow constructs a window in the floating display
// state with the given absolute rectangle.
func NewFloatingWindow(handle Handle, rect geom.Rect) *Window {
	return &Window{Base: newBase(KindFloatingWindow), handle: handle, rect: rect}
}

// NewFullscreenWindow constructs a window in the fullscreen display
// state, remembering the rect it should restore to.
func NewFullscreenWindow(handle Handle, restoreRect geom.Rect) *Window {
	return &Window{
		Base:     newBase(KindFullscreenWindow),
		handle:   handle,
		previous: &PreviousState{Kind: KindFloatingWindow, Rect: restoreRect},
	}
}

// NewMinimizedWindow constructs a window in the minimized display
// state, remembering the kind and rect it should restore to.
func NewMinimizedWindow(handle Handle, restore PreviousState) *Window {
	return &Window{
		Base:     newBase(KindMinimizedWindow),
		handle:   handle,
		previous: &restore,
	}
}

// Handle implements [WindowLike].
func (w *Window) Handle() Handle { return w.handle }

// BorderDelta implements [WindowLike].
func (w *Window) BorderDelta() geom.RectDelta { return w.borderDelta }

// SetBorderDelta sets the per-side pixel compensation applied before
// a rectangle is submitted to the platform facade (spec §4.2).
func (w *Window) SetBorderDelta(d geom.RectDelta) { w.borderDelta = d }

// InnerGap implements [WindowLike]. If no override was set, it
// returns the zero [geom.Length] and callers should fall back to the
// owning workspace's gap configuration.
func (w *Window) InnerGap() geom.Length {
	if w.innerGap == nil {
		return geom.Length{}
	}
	return *w.innerGap
}

// InnerGapOverride returns the window's inner-gap override, or nil
// if it uses the workspace default.
func (w *Window) InnerGapOverride() *geom.Length { return w.innerGap }

// SetInnerGapOverride sets a per-window inner-gap override.
func (w *Window) SetInnerGapOverride(l *geom.Length) { w.innerGap = l }

// FocusMode implements [WindowLike].
func (w *Window) FocusMode() geom.FocusMode { return w.focusMode }

// SetFocusMode sets the window's focus mode.
func (w *Window) SetFocusMode(m geom.FocusMode) { w.focusMode = m }

// SizePercent implements [Tiling]. It is meaningful only while the
// window's kind is [KindTilingWindow].
func (w *Window) SizePercent() float64 { return w.sizePercent }

// SetSizePercent implements [Tiling].
func (w *Window) SetSizePercent(p float64) { w.sizePercent = p }

// Rect returns the window's absolute or restore rectangle, as
// applicable to its current kind.
func (w *Window) Rect() geom.Rect { return w.rect }

// SetRect sets the window's absolute or restore rectangle.
func (w *Window) SetRect(r geom.Rect) { w.rect = r }

// Previous returns the display state the window should return to
// when it leaves fullscreen or minimized, or nil if it is already
// floating or tiling.
func (w *Window) Previous() *PreviousState { return w.previous }

// SetPrevious records the display state to restore to.
func (w *Window) SetPrevious(p *PreviousState) { w.previous = p }

// SetKind changes the window's display-state kind in place, used by
// the command pipeline's fullscreen/minimize/restore transitions
// (spec §4.3, §7 "Platform error" retries operate on the same node).
func (w *Window) SetKind(k Kind) { w.kind = k }
