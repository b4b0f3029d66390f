package containers

import "cogentcore.org/wm/geom"

// Monitor owns a list of workspaces and knows its physical rectangle
// and index, as reported by the platform facade's monitor
// enumeration.
type Monitor struct {
	Base

	rect  geom.Rect
	index int
	dpi   float64
}

// NewMonitor constructs a monitor container for the given physical
// rectangle, index, and DPI (spec §4.6's "enumerate monitors").
func NewMonitor(rect geom.Rect, index int, dpi float64) *Monitor {
	return &Monitor{
		Base:  newBase(KindMonitor),
		rect:  rect,
		index: index,
		dpi:   dpi,
	}
}

// Rect returns the monitor's physical rectangle.
func (m *Monitor) Rect() geom.Rect { return m.rect }

// SetRect updates the monitor's physical rectangle, e.g. in response
// to a monitor-updated platform event.
func (m *Monitor) SetRect(r geom.Rect) { m.rect = r }

// Index returns the monitor's platform-reported index.
func (m *Monitor) Index() int { return m.index }

// DPI returns the monitor's reported DPI.
func (m *Monitor) DPI() float64 { return m.dpi }
