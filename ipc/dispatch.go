package ipc

import (
	"fmt"
	"strconv"

	"cogentcore.org/wm/commands"
	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/wmconfig"
	"github.com/google/uuid"
)

// dispatchCmd resolves subjectID and runs the named command-pipeline
// action against it, translating the small IPC action grammar into
// calls onto package commands (spec §4.3, §6). It supports a
// representative subset of the full command set: focus, close,
// resize, move, and exec.
func dispatchCmd(state *commands.State, cfg *wmconfig.Config, subjectID containers.ID, action string, rest []string) (commands.Summary, error) {
	switch action {
	case "focus":
		return commands.SetFocusedDescendant(state, cfg, subjectID)

	case "close":
		n, ok := state.Tree.Get(subjectID)
		if !ok {
			return commands.Summary{}, fmt.Errorf("ipc: unknown container %s", subjectID)
		}
		return commands.DetachContainer(state, cfg, n)

	case "resize":
		n, ok := state.Tree.Get(subjectID)
		if !ok {
			return commands.Summary{}, fmt.Errorf("ipc: unknown container %s", subjectID)
		}
		raw, ok := flagValue(rest, "--by")
		if !ok {
			return commands.Summary{}, fmt.Errorf("ipc: resize requires --by <delta>")
		}
		delta, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return commands.Summary{}, fmt.Errorf("ipc: invalid --by value %q: %w", raw, err)
		}
		return commands.ResizeTilingContainer(state, cfg, n, delta)

	case "move":
		n, ok := state.Tree.Get(subjectID)
		if !ok {
			return commands.Summary{}, fmt.Errorf("ipc: unknown container %s", subjectID)
		}
		raw, ok := flagValue(rest, "--to")
		if !ok {
			return commands.Summary{}, fmt.Errorf("ipc: move requires --to <uuid>")
		}
		targetID, err := uuid.Parse(raw)
		if err != nil {
			return commands.Summary{}, fmt.Errorf("ipc: invalid --to value %q: %w", raw, err)
		}
		newParent, ok := state.Tree.Get(targetID)
		if !ok {
			return commands.Summary{}, fmt.Errorf("ipc: unknown container %s", targetID)
		}
		return commands.MoveContainerWithinTree(state, cfg, n, newParent, nil)

	case "exec":
		args := afterSeparator(rest)
		if len(args) == 0 {
			return commands.Summary{}, fmt.Errorf("ipc: exec requires a command after --")
		}
		return commands.ExecProcess(state, cfg, args[0], args[1:])

	default:
		return commands.Summary{}, fmt.Errorf("ipc: unsupported command %q", action)
	}
}

// flagValue returns the token following a "--name" flag in args.
func flagValue(args []string, name string) (string, bool) {
	for i, a := range args {
		if a == name && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}

// afterSeparator returns the tokens following a bare "--" separator,
// used by exec to pass through an arbitrary argv.
func afterSeparator(args []string) []string {
	for i, a := range args {
		if a == "--" {
			return args[i+1:]
		}
	}
	return nil
}
