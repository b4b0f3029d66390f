// Package wmconfig is the resolved, read-only configuration value
// consumed by the rest of the core (spec §6 treats config loading as
// an external concern feeding a single resolved value in). Loading
// is TOML via github.com/pelletier/go-toml/v2, a direct teacher
// dependency already used for the teacher's own settings files.
package wmconfig

import (
	"os"

	"cogentcore.org/wm/containers"
	"cogentcore.org/wm/geom"
	"github.com/pelletier/go-toml/v2"
)

// WorkspaceDef is one statically configured workspace.
type WorkspaceDef struct {
	Name          string `toml:"name"`
	BindToMonitor *int   `toml:"bind_to_monitor"`
}

// Config is the fully resolved configuration the wm task and command
// pipeline read from. It is not modified after [Load]; nothing in this
// module reloads it or publishes wmevent.UserConfigChanged.
type Config struct {
	// OuterGap and InnerGap are the workspace defaults applied when a
	// workspace's own [containers.GapConfig] is not overridden.
	OuterGap string `toml:"outer_gap"`
	InnerGap string `toml:"inner_gap"`

	// Workspaces are the statically defined workspaces activated on
	// startup or via the activate_workspace extension command.
	Workspaces []WorkspaceDef `toml:"workspaces"`

	// MinFloatingVisibleArea is the configured minimum pixel area of a
	// floating window that should remain visible on its monitor. The
	// layout engine does not read it; it clamps floating windows with
	// layout.DefaultMinVisibleArea.
	MinFloatingVisibleArea int `toml:"min_floating_visible_area"`

	// DefaultBorderDelta is the configured border delta, resolved by
	// [Config.BorderDelta]. Nothing applies it to windows: the layout
	// engine expands each rectangle by the window's own border delta,
	// which is zero unless set with containers.Window.SetBorderDelta.
	DefaultBorderDelta string `toml:"default_border_delta"`

	// ActiveBorderColor and InactiveBorderColor are hex colors applied
	// by set_active_window_border (spec §4.3).
	ActiveBorderColor   string `toml:"active_border_color"`
	InactiveBorderColor string `toml:"inactive_border_color"`

	// BindingModes is the set of named keybinding modes a client can
	// query via the IPC server's binding-modes query (spec §6).
	BindingModes []string `toml:"binding_modes"`
}

// Default returns a configuration with the spec's documented
// defaults: no outer or inner gap, a 48x48 minimum floating visible
// area, and no border delta.
func Default() Config {
	return Config{
		OuterGap:               "0px",
		InnerGap:               "0px",
		MinFloatingVisibleArea: 48 * 48,
		DefaultBorderDelta:     "0px",
		ActiveBorderColor:      "#0078d4",
		InactiveBorderColor:    "#808080",
		BindingModes:           []string{"default"},
	}
}

// Load reads and parses a TOML configuration file, applying
// [Default] first so a partial file only overrides what it sets.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Gaps resolves the configured outer/inner gap strings into a
// [containers.GapConfig], falling back to zero-valued lengths on a
// parse failure rather than rejecting the whole config.
func (c Config) Gaps() containers.GapConfig {
	outer, err := geom.ParseLengthDelta(c.OuterGap)
	if err != nil {
		outer = geom.LengthDelta{}
	}
	inner, err := geom.ParseLength(c.InnerGap)
	if err != nil {
		inner = geom.Length{}
	}
	return containers.GapConfig{Outer: outer, Inner: inner}
}

// BorderDelta resolves the configured default border delta against
// the given reference extents.
func (c Config) BorderDelta(widthReference, heightReference int) geom.RectDelta {
	delta, err := geom.ParseLengthDelta(c.DefaultBorderDelta)
	if err != nil {
		return geom.RectDelta{}
	}
	return delta.Resolve(widthReference, heightReference)
}
