package commands

import (
	"fmt"

	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/geom"
	"cogentcore.org/wm/wmconfig"
	"cogentcore.org/wm/wmevent"
)

// ActivateWorkspace activates a configured workspace on a target
// monitor, creating it if it isn't already part of the tree. If
// workspaceName is nil, the first suitable inactive config is used
// (scoped to targetMonitorID when given). If targetMonitorID is nil,
// the workspace's own bound-monitor config wins, falling back to the
// currently focused container's monitor, grounded on
// original_source/packages/wm/src/workspaces/commands/
// activate_workspace.rs.
func ActivateWorkspace(state *State, cfg *wmconfig.Config, workspaceName *string, targetMonitorID *containers.ID) (Summary, error) {
	var targetMonitor *containers.Monitor
	if targetMonitorID != nil {
		n, ok := state.Tree.Get(*targetMonitorID)
		if !ok {
			return Summary{}, fmt.Errorf("commands: unknown container %s", *targetMonitorID)
		}
		mon, ok := n.(*containers.Monitor)
		if !ok {
			return Summary{}, fmt.Errorf("commands: %s is not a monitor", *targetMonitorID)
		}
		targetMonitor = mon
	}

	wsConfig, err := resolveWorkspaceConfig(state, cfg, workspaceName, targetMonitor)
	if err != nil {
		return Summary{}, err
	}

	if targetMonitor == nil {
		targetMonitor = resolveTargetMonitor(state, wsConfig)
		if targetMonitor == nil {
			return Summary{}, fmt.Errorf("commands: failed to get a target monitor for workspace %q", wsConfig.Name)
		}
	}

	rect := targetMonitor.Rect()
	tilingDirection := geom.Horizontal
	if rect.Height > rect.Width {
		tilingDirection = geom.Vertical
	}

	ws := containers.NewWorkspace(wsConfig.Name, wsConfig.BindToMonitor, tilingDirection, cfg.Gaps())
	if _, err := AttachContainer(state, cfg, ws, targetMonitor, nil); err != nil {
		return Summary{}, err
	}

	state.Events.Publish(wmevent.Event{
		Kind:      wmevent.WorkspaceActivated,
		Container: ws.ID(),
		Data:      containers.ToDTO(state.Tree, ws, true),
	})

	return Summary{SubjectContainerID: ws.ID()}, nil
}

// resolveWorkspaceConfig picks the [wmconfig.WorkspaceDef] to
// activate: an explicitly named one (which must exist and not already
// be active), or, when no name is given, one bound to targetMonitor,
// or else the first config with no active workspace of that name.
func resolveWorkspaceConfig(state *State, cfg *wmconfig.Config, workspaceName *string, targetMonitor *containers.Monitor) (wmconfig.WorkspaceDef, error) {
	active := activeWorkspaceNames(state.Tree)

	if workspaceName != nil {
		for _, def := range cfg.Workspaces {
			if def.Name == *workspaceName {
				if active[def.Name] {
					return wmconfig.WorkspaceDef{}, fmt.Errorf("commands: workspace %q is already active", def.Name)
				}
				return def, nil
			}
		}
		return wmconfig.WorkspaceDef{}, fmt.Errorf("commands: workspace %q doesn't exist", *workspaceName)
	}

	if targetMonitor != nil {
		for _, def := range cfg.Workspaces {
			if active[def.Name] {
				continue
			}
			if def.BindToMonitor != nil && *def.BindToMonitor == targetMonitor.Index() {
				return def, nil
			}
		}
	}

	for _, def := range cfg.Workspaces {
		if !active[def.Name] {
			return def, nil
		}
	}

	return wmconfig.WorkspaceDef{}, fmt.Errorf("commands: no workspace config available to activate")
}

// resolveTargetMonitor finds the monitor a newly chosen workspace
// config should be activated on: its own bound-monitor hint, or else
// the monitor of the currently focused container.
func resolveTargetMonitor(state *State, wsConfig wmconfig.WorkspaceDef) *containers.Monitor {
	if wsConfig.BindToMonitor != nil {
		for _, n := range state.Tree.Descendants(state.Tree.Root().ID()) {
			if mon, ok := n.(*containers.Monitor); ok && mon.Index() == *wsConfig.BindToMonitor {
				return mon
			}
		}
	}

	if focused, ok := state.Tree.FocusedContainer(); ok {
		if mon := state.Tree.ParentMonitor(focused.AsBase().ID()); mon != nil {
			return mon
		}
	}

	return nil
}

// activeWorkspaceNames returns the name of every workspace currently
// attached to the tree.
func activeWorkspaceNames(t *containers.Tree) map[string]bool {
	active := make(map[string]bool)
	for _, n := range t.Descendants(t.Root().ID()) {
		if ws, ok := n.(*containers.Workspace); ok {
			active[ws.Name()] = true
		}
	}
	return active
}
