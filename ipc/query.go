package ipc

import "cogentcore.org/wm/containers"

// queryMonitors returns every monitor in the tree, as DTOs.
func queryMonitors(t *containers.Tree) []containers.DTO {
	var out []containers.DTO
	for _, n := range t.Descendants(t.Root().ID()) {
		if _, ok := n.(*containers.Monitor); ok {
			out = append(out, containers.ToDTO(t, n, false))
		}
	}
	return out
}

// queryWorkspaces returns every workspace in the tree, as DTOs.
func queryWorkspaces(t *containers.Tree) []containers.DTO {
	var out []containers.DTO
	for _, n := range t.Descendants(t.Root().ID()) {
		if _, ok := n.(*containers.Workspace); ok {
			out = append(out, containers.ToDTO(t, n, true))
		}
	}
	return out
}

// queryWindows returns every window in the tree, as DTOs.
func queryWindows(t *containers.Tree) []containers.DTO {
	var out []containers.DTO
	for _, n := range t.Descendants(t.Root().ID()) {
		if containers.AsWindow(n) != nil {
			out = append(out, containers.ToDTO(t, n, false))
		}
	}
	return out
}

// queryFocused returns the process-wide focused container, if any.
func queryFocused(t *containers.Tree) *containers.DTO {
	n, ok := t.FocusedContainer()
	if !ok {
		return nil
	}
	dto := containers.ToDTO(t, n, false)
	return &dto
}
