// Package platform is the narrow interface the core talks to the
// host operating system through (spec §4.6). Its shape is grounded
// on how the teacher's own (externally vendored) system package is
// consumed in core/renderwindow.go: a TheApp-like singleton that
// enumerates screens, per-window query/command methods, and a
// Minimized-style display-state enum, rather than on that package's
// own source (which was not retrieved).
package platform

import (
	"context"

	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/geom"
)

// MonitorInfo is a physical monitor as reported by the host.
type MonitorInfo struct {
	Index int
	Rect  geom.Rect
	DPI   float64
}

// WindowInfo is a native window as reported by the host, supplied
// when the facade is asked to enumerate already-open windows at
// startup (spec §4.6's "enumerate windows").
type WindowInfo struct {
	Handle    containers.Handle
	Rect      geom.Rect
	Title     string
	Floating  bool
	Minimized bool
}

// NativeEventKind identifies the kind of unsolicited event the host
// can push through [Facade.Subscribe].
type NativeEventKind int32

const (
	WindowOpened NativeEventKind = iota
	WindowClosed
	WindowFocused
	WindowMinimized
	WindowRestored
	MonitorsChanged
)

// NativeEvent is a single occurrence read from the host's event
// stream, translated by the wm task into tree mutations and
// [cogentcore.org/wm/wmevent] publications.
type NativeEvent struct {
	Kind   NativeEventKind
	Handle containers.Handle
}

// Facade is everything the command pipeline and the wm task need
// from the host operating system. A real implementation wraps the
// native windowing APIs; tests use a fake satisfying the same
// interface (spec §4.6, §8 "Non-goals: no mandated OS windowing
// backend").
type Facade interface {
	// EnumerateMonitors returns every currently connected monitor.
	EnumerateMonitors() ([]MonitorInfo, error)

	// EnumerateWindows returns every currently open top-level window,
	// used to populate the tree on startup.
	EnumerateWindows() ([]WindowInfo, error)

	// Subscribe streams native events until ctx is canceled.
	Subscribe(ctx context.Context) (<-chan NativeEvent, error)

	// ApplyRect moves and resizes the window identified by handle.
	ApplyRect(handle containers.Handle, rect geom.Rect) error

	// SetForeground gives the window identified by handle input focus.
	SetForeground(handle containers.Handle) error

	// CenterCursor moves the mouse cursor to the given screen point.
	CenterCursor(x, y int) error

	// SetBorder recolors the window's border to signal active/inactive
	// state (spec §4.3's set_active_window_border).
	SetBorder(handle containers.Handle, colorHex string) error

	// SpawnProcess launches a detached process, used by the
	// exec_process command.
	SpawnProcess(command string, args []string) error
}
