package platform

import (
	"context"
	"sync"

	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/geom"
)

// Fake is an in-memory [Facade] used by command pipeline tests and
// by cmd/wm when no real backend is wired up. It records every call
// it receives so tests can assert on them.
type Fake struct {
	mu sync.Mutex

	Monitors []MonitorInfo
	Windows  []WindowInfo

	AppliedRects   map[containers.Handle]geom.Rect
	Foreground     containers.Handle
	CursorX        int
	CursorY        int
	Borders        map[containers.Handle]string
	SpawnedCommand []string

	events chan NativeEvent
}

// NewFake constructs a fake facade reporting the given monitors.
func NewFake(monitors []MonitorInfo) *Fake {
	return &Fake{
		Monitors:     monitors,
		AppliedRects: make(map[containers.Handle]geom.Rect),
		Borders:      make(map[containers.Handle]string),
		events:       make(chan NativeEvent, 64),
	}
}

func (f *Fake) EnumerateMonitors() ([]MonitorInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]MonitorInfo{}, f.Monitors...), nil
}

func (f *Fake) EnumerateWindows() ([]WindowInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]WindowInfo{}, f.Windows...), nil
}

func (f *Fake) Subscribe(ctx context.Context) (<-chan NativeEvent, error) {
	go func() {
		<-ctx.Done()
	}()
	return f.events, nil
}

// Emit pushes a native event, as a real backend would in response to
// an OS notification. Used by tests to simulate host activity.
func (f *Fake) Emit(ev NativeEvent) {
	f.events <- ev
}

func (f *Fake) ApplyRect(handle containers.Handle, rect geom.Rect) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.AppliedRects[handle] = rect
	return nil
}

func (f *Fake) SetForeground(handle containers.Handle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Foreground = handle
	return nil
}

func (f *Fake) CenterCursor(x, y int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CursorX, f.CursorY = x, y
	return nil
}

func (f *Fake) SetBorder(handle containers.Handle, colorHex string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Borders[handle] = colorHex
	return nil
}

func (f *Fake) SpawnProcess(command string, args []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SpawnedCommand = append([]string{command}, args...)
	return nil
}
