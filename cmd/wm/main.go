// Command wm is the process entry point: it loads configuration,
// enumerates the host through the platform facade, starts the IPC
// server, and runs the single-threaded wm task that turns native
// events into tree mutations until it receives an interrupt (spec §5,
// §6).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cogentcore.org/wm/commands"
	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/geom"
	"cogentcore.org/wm/ipc"
	"cogentcore.org/wm/platform"
	"cogentcore.org/wm/wmconfig"
	"cogentcore.org/wm/wmevent"
	"cogentcore.org/wm/wmlog"
)

// Exit codes, matching the process contract in spec §6: 0 is a clean
// shutdown, 1 is a fatal startup failure (a configuration that cannot
// be loaded, a tree that cannot be seeded, or an IPC listener that
// cannot bind), 2 is a failure of the platform facade.
const (
	exitOK            = 0
	exitStartupError  = 1
	exitPlatformError = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a TOML configuration file")
	port := flag.Int("port", ipc.DefaultPort, "IPC server port")
	flag.Parse()

	wmlog.Setup(slog.LevelInfo)

	cfg := wmconfig.Default()
	if *configPath != "" {
		loaded, err := wmconfig.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "path", *configPath, "err", err)
			return exitStartupError
		}
		cfg = loaded
	}

	// No OS windowing backend is mandated (spec §9 Non-goals); the
	// runtime facade is the same in-memory fake the command pipeline
	// tests use, seeded from nothing until a real backend is wired in.
	fake := platform.NewFake(nil)
	plat := platform.Facade(fake)

	monitors, err := plat.EnumerateMonitors()
	if err != nil {
		slog.Error("failed to enumerate monitors", "err", err)
		return exitPlatformError
	}

	state := commands.NewState(wmevent.NewBus(), plat)
	if err := seedTree(state, &cfg, monitors); err != nil {
		slog.Error("failed to seed container tree", "err", err)
		return exitStartupError
	}

	server := ipc.NewServer(state, &cfg)
	if err := server.Start(*port); err != nil {
		slog.Error("failed to start ipc server", "err", err)
		return exitStartupError
	}
	defer server.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events, err := plat.Subscribe(ctx)
	if err != nil {
		slog.Error("failed to subscribe to platform events", "err", err)
		return exitPlatformError
	}

	runWMTask(ctx, state, &cfg, events)
	return exitOK
}

// seedTree attaches a monitor container for every monitor the
// platform reports, plus a workspace for each statically configured
// workspace bound to it, then triggers an initial redraw (spec §4.1's
// startup sequence).
func seedTree(state *commands.State, cfg *wmconfig.Config, monitors []platform.MonitorInfo) error {
	for _, mi := range monitors {
		mon := containers.NewMonitor(mi.Rect, mi.Index, mi.DPI)
		if err := state.Tree.Attach(mon, state.Tree.Root(), nil); err != nil {
			return fmt.Errorf("attach monitor %d: %w", mi.Index, err)
		}

		for _, def := range cfg.Workspaces {
			if def.BindToMonitor == nil || *def.BindToMonitor != mi.Index {
				continue
			}
			ws := containers.NewWorkspace(def.Name, def.BindToMonitor, geom.Horizontal, cfg.Gaps())
			if err := state.Tree.Attach(ws, mon, nil); err != nil {
				return fmt.Errorf("attach workspace %q: %w", def.Name, err)
			}
			if _, err := commands.Redraw(state, cfg, ws.ID()); err != nil {
				return fmt.Errorf("initial redraw of %q: %w", def.Name, err)
			}
		}
	}
	return nil
}

// runWMTask is the single-threaded core: it owns the tree and drains
// native events until ctx is canceled, matching spec §5's requirement
// that command-pipeline mutations never run concurrently with each
// other (the IPC server's own command dispatch is serialized against
// this same state via its own lock).
func runWMTask(ctx context.Context, state *commands.State, cfg *wmconfig.Config, events <-chan platform.NativeEvent) {
	for {
		select {
		case <-ctx.Done():
			slog.Info("wm task shutting down")
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			handleNativeEvent(state, cfg, ev)
		}
	}
}

func handleNativeEvent(state *commands.State, cfg *wmconfig.Config, ev platform.NativeEvent) {
	switch ev.Kind {
	case platform.WindowFocused:
		target, ok := findWindowByHandle(state.Tree, ev.Handle)
		if !ok {
			return
		}
		if _, err := commands.SetFocusedDescendant(state, cfg, target); err != nil {
			wmlog.Log("handle_native_event.focus", err)
		}
	case platform.WindowClosed:
		n, ok := findNodeByHandle(state.Tree, ev.Handle)
		if !ok {
			return
		}
		if _, err := commands.DetachContainer(state, cfg, n); err != nil {
			wmlog.Log("handle_native_event.close", err)
		}
	default:
		slog.Debug("unhandled native event", "kind", ev.Kind)
	}
}

func findWindowByHandle(t *containers.Tree, handle containers.Handle) (containers.ID, bool) {
	n, ok := findNodeByHandle(t, handle)
	if !ok {
		return containers.ID{}, false
	}
	return n.AsBase().ID(), true
}

func findNodeByHandle(t *containers.Tree, handle containers.Handle) (containers.Node, bool) {
	for _, n := range t.Descendants(t.Root().ID()) {
		if win := containers.AsWindow(n); win != nil && win.Handle() == handle {
			return n, true
		}
	}
	return nil, false
}
