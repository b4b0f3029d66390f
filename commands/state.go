// Package commands is the command pipeline: the only part of the
// core allowed to mutate the container tree once it has left
// construction (spec §4.3). Every command is a function over
// *[State] and a *[cogentcore.org/wm/wmconfig.Config], matching the
// teacher's preference for small top-level functions (core/tree.go's
// free AsTree/AsFrame-style helpers) over a single god-object, and
// the original source's one-file-per-command layout
// (containers/commands/mod.rs).
package commands

import (
	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/platform"
	"cogentcore.org/wm/wmevent"
)

// State is the mutable process state the command pipeline operates
// on: the container tree, the event bus commands publish to, and the
// platform facade commands that touch the host go through.
type State struct {
	Tree     *containers.Tree
	Events   *wmevent.Bus
	Platform platform.Facade
}

// NewState constructs process state around a freshly created tree.
func NewState(events *wmevent.Bus, plat platform.Facade) *State {
	return &State{
		Tree:     containers.NewTree(),
		Events:   events,
		Platform: plat,
	}
}

// Summary is what every command returns on success: the id of the
// container the IPC server reports back to the client as
// subjectContainerId (spec §6's CommandData).
type Summary struct {
	SubjectContainerID containers.ID
}
