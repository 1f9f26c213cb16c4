package app

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/chatter/shortkey/internal/ui/help"
)

// Action is a function that executes a keybinding's behavior
type Action func(m *Model) tea.Cmd

// ActionBinding combines a display binding with its action for dispatch.
type ActionBinding struct {
	help.HelpBinding        // embedded for display (Binding, Category, Order)
	Action           Action // nil = display-only (no action)
}

// dispatchKey runs the first enabled binding matching msg. It reports
// whether any binding handled the key.
func dispatchKey(m *Model, msg tea.KeyPressMsg, bindings []ActionBinding) (bool, tea.Cmd) {
	for _, ab := range bindings {
		if ab.Action != nil && key.Matches(msg, ab.Binding) {
			return true, ab.Action(m)
		}
	}

	return false, nil
}

// ToHelpBindings extracts display-only bindings from action bindings.
func ToHelpBindings(abs []ActionBinding) []help.HelpBinding {
	result := make([]help.HelpBinding, len(abs))
	for i, ab := range abs {
		result[i] = ab.HelpBinding
	}

	return result
}

// KeyMap holds the terminal-level bindings. They only see keys that no
// registered shortcut claimed.
type KeyMap struct {
	NextFocus key.Binding
	PrevFocus key.Binding
	Help      key.Binding
	CloseHelp key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("⇥", "focus"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("⇧⇥", "focus back"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		CloseHelp: key.NewBinding(
			key.WithKeys("f1", "esc"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("^C", "quit"),
		),
	}
}
