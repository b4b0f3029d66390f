package commands

import (
	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/wmconfig"
)

// MoveContainerWithinTree relocates container from its current parent
// to newParent at index, redistributing size-percent on both sides of
// the move (spec §4.1, §8 scenario: move-with-flatten). DetachContainer
// already flattens the old parent if it becomes a degenerate split, so
// this only needs to reattach container under its new parent; since
// Tree.Attach re-registers the node, the same in-memory value can be
// reused after DetachContainer destroys its old tree registration.
func MoveContainerWithinTree(state *State, cfg *wmconfig.Config, container containers.Node, newParent containers.Node, index *int) (Summary, error) {
	if _, err := DetachContainer(state, cfg, container); err != nil {
		return Summary{}, err
	}
	if _, err := AttachContainer(state, cfg, container, newParent, index); err != nil {
		return Summary{}, err
	}
	return Summary{SubjectContainerID: container.AsBase().ID()}, nil
}
