package app

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/chatter/shortkey/internal/config"
	"github.com/chatter/shortkey/internal/shortcut"
	"github.com/chatter/shortkey/internal/ui/help"
)

// Shortcut names. They double as keys of the [shortcuts] config table.
const (
	ActionOpenModal       = "open_modal"
	ActionClearLog        = "clear_log"
	ActionApply           = "apply"
	ActionSelectAll       = "select_all"
	ActionCloseModal      = "close_modal"
	ActionToggleShortcuts = "toggle_shortcuts"
	ActionArrowUp         = "arrow_up"
	ActionArrowDown       = "arrow_down"
	ActionArrowLeft       = "arrow_left"
	ActionArrowRight      = "arrow_right"
)

// Scopes group shortcuts by the screen that owns them.
const (
	ScopeHome  = "home"
	ScopeModal = "modal"
)

// demoShortcut is one built-in shortcut before config overrides.
type demoShortcut struct {
	name     string
	feature  string
	keys     shortcut.Spec
	disabled bool
	focus    shortcut.Suppression
}

// homeShortcuts live as long as the program.
var homeShortcuts = []demoShortcut{
	{name: ActionOpenModal, feature: "Open Modal", keys: shortcut.PlatformKeys("Ctrl O", "Command O")},
	{name: ActionClearLog, feature: "Clear Log", keys: shortcut.PlatformKeys("Ctrl K", "Command K")},
}

// modalShortcuts are registered when the modal opens and removed when it
// closes, in this order.
var modalShortcuts = []demoShortcut{
	{name: ActionApply, feature: "Apply", keys: shortcut.Keys("Enter"), disabled: true},
	{name: ActionSelectAll, feature: "Select All", keys: shortcut.PlatformKeys("Ctrl A", "Command A"), disabled: true},
	{name: ActionCloseModal, feature: "Close Modal", keys: shortcut.Keys("Escape")},
	{name: ActionToggleShortcuts, feature: "Enable / Disable Shortcuts", keys: shortcut.PlatformKeys("Ctrl L", "Command L")},
	{
		name: ActionArrowUp, feature: "Arrow Up", keys: shortcut.Keys("ArrowUp"),
		focus: shortcut.SuppressOn(shortcut.FocusOptions{Input: true}),
	},
	{
		name: ActionArrowDown, feature: "Arrow Down", keys: shortcut.Keys("ArrowDown"),
		focus: shortcut.SuppressOn(shortcut.FocusOptions{Textarea: true}),
	},
	{
		name: ActionArrowLeft, feature: "Arrow Left", keys: shortcut.Keys("ArrowLeft"),
		focus: shortcut.SuppressOn(shortcut.FocusOptions{Select: true}),
	},
	{
		name: ActionArrowRight, feature: "Arrow Right", keys: shortcut.Keys("ArrowRight"),
		focus: shortcut.SuppressOn(shortcut.FocusOptions{Button: true}),
	},
}

func findShortcut(name string) (demoShortcut, bool) {
	for _, defs := range [][]demoShortcut{homeShortcuts, modalShortcuts} {
		for _, d := range defs {
			if d.name == name {
				return d, true
			}
		}
	}

	return demoShortcut{}, false
}

// feature returns the display text for a shortcut name.
func feature(name string) string {
	if d, ok := findShortcut(name); ok {
		return d.feature
	}

	return name
}

// registerAll registers defs in order with config overrides applied.
// callback supplies the function run for each name.
func registerAll(d *shortcut.Dispatcher, cfg config.Config, defs []demoShortcut, callback func(name string) func()) []*shortcut.Handle {
	hs := make([]*shortcut.Handle, 0, len(defs))

	for _, def := range defs {
		hs = append(hs, d.Register(shortcut.Options{
			Name:             def.name,
			Keys:             cfg.Spec(def.name, def.keys),
			Disabled:         def.disabled,
			DisallowFocusing: def.focus,
			Callback:         callback(def.name),
		}))
	}

	return hs
}

// handleNamed returns the live handle called name, nil if none.
func handleNamed(hs []*shortcut.Handle, name string) *shortcut.Handle {
	for _, h := range hs {
		if h.Name() == name && h.Live() {
			return h
		}
	}

	return nil
}

// rebind applies cfg to every handle, falling back to built-in specs.
func rebind(hs []*shortcut.Handle, cfg config.Config) {
	for _, h := range hs {
		def, ok := findShortcut(h.Name())
		if !ok {
			continue
		}

		h.Rebind(cfg.Spec(def.name, def.keys))
	}
}

// shortcutHelp turns handles into help entries. Disabled handles give
// disabled bindings so the help can grey them out.
func shortcutHelp(hs []*shortcut.Handle, category help.Category, alternate bool, order int) []help.HelpBinding {
	out := make([]help.HelpBinding, 0, len(hs))

	for i, h := range hs {
		if !h.Live() {
			continue
		}

		label := strings.Join(shortcut.Label(h.Spec(), alternate), " ")
		if label == "" {
			label = "(unbound)"
		}

		b := key.NewBinding(
			key.WithKeys(h.Descriptor().String()),
			key.WithHelp(label, strings.ToLower(feature(h.Name()))),
		)
		b.SetEnabled(h.Enabled())

		out = append(out, help.HelpBinding{
			Binding:  b,
			Category: category,
			Order:    order + i,
		})
	}

	return out
}

// ShortcutInfo describes one demo shortcut as resolved for this platform.
type ShortcutInfo struct {
	Scope      string
	Name       string
	Feature    string
	Label      []string
	Descriptor shortcut.Descriptor
	Enabled    bool
	Focus      shortcut.Suppression
}

// DescribeShortcuts resolves every demo shortcut under cfg without running
// the TUI. Order follows registration order, home first.
func DescribeShortcuts(cfg config.Config) []ShortcutInfo {
	d := shortcut.NewDispatcher(shortcut.WithAlternatePlatform(cfg.Alternate()))
	noop := func(string) func() { return func() {} }

	var infos []ShortcutInfo

	for _, scope := range []struct {
		name string
		defs []demoShortcut
	}{
		{ScopeHome, homeShortcuts},
		{ScopeModal, modalShortcuts},
	} {
		for _, h := range registerAll(d, cfg, scope.defs, noop) {
			infos = append(infos, ShortcutInfo{
				Scope:      scope.name,
				Name:       h.Name(),
				Feature:    feature(h.Name()),
				Label:      shortcut.Label(h.Spec(), d.Alternate()),
				Descriptor: h.Descriptor(),
				Enabled:    h.Enabled(),
				Focus:      h.Suppression(),
			})
		}
	}

	return infos
}
