package commands

import (
	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/wmconfig"
)

// ExecProcess launches command with args as a detached process
// through the platform facade (spec §4.3).
func ExecProcess(state *State, cfg *wmconfig.Config, command string, args []string) (Summary, error) {
	if err := state.Platform.SpawnProcess(command, args); err != nil {
		return Summary{}, err
	}
	return Summary{SubjectContainerID: containers.ID{}}, nil
}
