// Package wmevent is the non-blocking event bus that decouples the
// command pipeline from the IPC server's subscription tasks (spec
// §4.4). It mirrors the teacher's channel-based event delivery in
// core/events.go: a single owner publishes, independent readers each
// get their own buffered channel and a slow reader only ever drops
// its own events rather than stalling the publisher.
package wmevent

import "cogentcore.org/wm/containers"

// Kind identifies one of the closed set of events the core emits.
type Kind int32

const (
	BindingModesChanged Kind = iota
	FocusChanged
	FocusedContainerMoved
	MonitorAdded
	MonitorUpdated
	MonitorRemoved
	TilingDirectionChanged
	UserConfigChanged
	WindowManaged
	WindowUnmanaged
	WorkspaceActivated
	WorkspaceDeactivated
	WorkspaceMoved
)

func (k Kind) String() string {
	switch k {
	case BindingModesChanged:
		return "binding_modes_changed"
	case FocusChanged:
		return "focus_changed"
	case FocusedContainerMoved:
		return "focused_container_moved"
	case MonitorAdded:
		return "monitor_added"
	case MonitorUpdated:
		return "monitor_updated"
	case MonitorRemoved:
		return "monitor_removed"
	case TilingDirectionChanged:
		return "tiling_direction_changed"
	case UserConfigChanged:
		return "user_config_changed"
	case WindowManaged:
		return "window_managed"
	case WindowUnmanaged:
		return "window_unmanaged"
	case WorkspaceActivated:
		return "workspace_activated"
	case WorkspaceDeactivated:
		return "workspace_deactivated"
	case WorkspaceMoved:
		return "workspace_moved"
	default:
		return "unknown"
	}
}

// Event is a single occurrence published on the bus. Data carries the
// event-specific payload, serialized to JSON as-is for IPC
// subscribers (spec §6).
type Event struct {
	Kind      Kind          `json:"kind"`
	Container containers.ID `json:"containerId,omitempty"`
	Data      any           `json:"data,omitempty"`
}
