// Package wmlog is the shared log/slog setup used by every binary and
// the IPC server, in the teacher's style (base/errors's errors.Log,
// core/events.go's direct slog.Error/slog.Warn calls).
package wmlog

import (
	"log/slog"
	"os"
)

// Setup installs a text handler at the given level as the default
// slog logger. Called once from cmd/wm's main.
func Setup(level slog.Level) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// Log logs err at error level, tagged with op, if it is non-nil, and
// returns it unchanged — the command pipeline's equivalent of
// base/errors's errors.Log. Its callers are the redraw command (a
// failed rectangle apply) and cmd/wm's native-event handler.
func Log(op string, err error) error {
	if err != nil {
		slog.Error(err.Error(), "op", op)
	}
	return err
}
