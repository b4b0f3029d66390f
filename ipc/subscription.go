package ipc

import (
	"fmt"
	"strings"
	"sync"

	"cogentcore.org/wm/wmevent"
	"github.com/google/uuid"
)

// subscriptionSet tracks the live event subscriptions on one
// connection, keyed by the id handed back to the client, so that
// unsubscribe and connection teardown can cancel them (spec §4.5).
type subscriptionSet struct {
	mu   sync.Mutex
	byID map[uuid.UUID]func()
}

func newSubscriptionSet() *subscriptionSet {
	return &subscriptionSet{byID: make(map[uuid.UUID]func())}
}

func (s *subscriptionSet) add(id uuid.UUID, cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[id] = cancel
}

// remove drops the bookkeeping entry for id without invoking its
// cancel function. The subscription goroutine calls it on exit; it is
// a no-op if cancel or cancelAll already removed the entry.
func (s *subscriptionSet) remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
}

// cancel unsubscribes id from the bus and removes it, reporting
// whether it was found.
func (s *subscriptionSet) cancel(id uuid.UUID) bool {
	s.mu.Lock()
	cancel, ok := s.byID[id]
	if ok {
		delete(s.byID, id)
	}
	s.mu.Unlock()
	if ok {
		cancel()
	}
	return ok
}

// cancelAll unsubscribes every live subscription, called once when a
// connection closes.
func (s *subscriptionSet) cancelAll() {
	s.mu.Lock()
	cancels := make([]func(), 0, len(s.byID))
	for id, cancel := range s.byID {
		cancels = append(cancels, cancel)
		delete(s.byID, id)
	}
	s.mu.Unlock()
	for _, cancel := range cancels {
		cancel()
	}
}

var eventKindNames = map[string]wmevent.Kind{
	"binding_modes_changed":    wmevent.BindingModesChanged,
	"focus_changed":            wmevent.FocusChanged,
	"focused_container_moved":  wmevent.FocusedContainerMoved,
	"monitor_added":            wmevent.MonitorAdded,
	"monitor_updated":          wmevent.MonitorUpdated,
	"monitor_removed":          wmevent.MonitorRemoved,
	"tiling_direction_changed": wmevent.TilingDirectionChanged,
	"user_config_changed":      wmevent.UserConfigChanged,
	"window_managed":           wmevent.WindowManaged,
	"window_unmanaged":         wmevent.WindowUnmanaged,
	"workspace_activated":      wmevent.WorkspaceActivated,
	"workspace_deactivated":    wmevent.WorkspaceDeactivated,
	"workspace_moved":          wmevent.WorkspaceMoved,
}

// parseEventKinds turns a comma-separated list of event names (as used
// by the subscribe command's --events flag) into their Kind values. A
// single "*" subscribes to every kind.
func parseEventKinds(raw string) ([]wmevent.Kind, error) {
	if raw == "*" {
		all := make([]wmevent.Kind, 0, len(eventKindNames))
		for _, k := range eventKindNames {
			all = append(all, k)
		}
		return all, nil
	}

	var kinds []wmevent.Kind
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		k, ok := eventKindNames[name]
		if !ok {
			return nil, fmt.Errorf("ipc: unknown event kind %q", name)
		}
		kinds = append(kinds, k)
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("ipc: --events requires at least one kind")
	}
	return kinds, nil
}

// kindMatches reports whether k is one of the subscribed kinds.
func kindMatches(kinds []wmevent.Kind, k wmevent.Kind) bool {
	for _, want := range kinds {
		if want == k {
			return true
		}
	}
	return false
}
