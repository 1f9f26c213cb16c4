// Package keyinput turns bubbletea key presses into shortcut events and
// provides the single listener slot the shortcut dispatcher subscribes to.
package keyinput

import (
	tea "charm.land/bubbletea/v2"

	"github.com/chatter/shortkey/internal/shortcut"
)

// keyNames maps special key codes to the key values a browser reports,
// lower-cased.
var keyNames = map[rune]string{
	tea.KeyEnter:     "enter",
	tea.KeyEscape:    "escape",
	tea.KeyTab:       "tab",
	tea.KeyBackspace: "backspace",
	tea.KeyDelete:    "delete",
	tea.KeyInsert:    "insert",
	tea.KeySpace:     "space",
	tea.KeyUp:        "arrowup",
	tea.KeyDown:      "arrowdown",
	tea.KeyLeft:      "arrowleft",
	tea.KeyRight:     "arrowright",
	tea.KeyHome:      "home",
	tea.KeyEnd:       "end",
	tea.KeyPgUp:      "pageup",
	tea.KeyPgDown:    "pagedown",
	tea.KeyF1:        "f1",
	tea.KeyF2:        "f2",
	tea.KeyF3:        "f3",
	tea.KeyF4:        "f4",
	tea.KeyF5:        "f5",
	tea.KeyF6:        "f6",
	tea.KeyF7:        "f7",
	tea.KeyF8:        "f8",
	tea.KeyF9:        "f9",
	tea.KeyF10:       "f10",
	tea.KeyF11:       "f11",
	tea.KeyF12:       "f12",
}

// Name returns the key value for k without modifiers.
func Name(k tea.Key) string {
	if name, ok := keyNames[k.Code]; ok {
		return name
	}

	// Text is empty when ctrl or alt is held.
	if k.Text != "" {
		return k.Text
	}

	return string(k.Code)
}

// FromKeyPress converts a key press. Meta and Super (the Command key under
// the kitty keyboard protocol) both set Meta.
func FromKeyPress(msg tea.KeyPressMsg) shortcut.KeyEvent {
	k := tea.Key(msg)

	return shortcut.KeyEvent{
		Key:   Name(k),
		Ctrl:  k.Mod&tea.ModCtrl != 0,
		Alt:   k.Mod&tea.ModAlt != 0,
		Shift: k.Mod&tea.ModShift != 0,
		Meta:  k.Mod&(tea.ModMeta|tea.ModSuper) != 0,
	}
}

// Source is a shortcut.Source fed from a bubbletea Update loop. It holds at
// most one listener.
type Source struct {
	listener shortcut.Listener
	gen      uint64
}

// NewSource returns a source with no listener.
func NewSource() *Source {
	return &Source{}
}

// Subscribe installs l, replacing any previous listener. The returned
// function removes l; it does nothing once l has been replaced.
func (s *Source) Subscribe(l shortcut.Listener) func() {
	s.gen++
	s.listener = l
	gen := s.gen

	return func() {
		if s.gen == gen {
			s.listener = nil
		}
	}
}

// Subscribed reports whether a listener is installed.
func (s *Source) Subscribed() bool {
	return s.listener != nil
}

// Deliver hands one key press to the listener. It reports whether a
// shortcut claimed the key; unclaimed keys belong to the focused widget.
func (s *Source) Deliver(msg tea.KeyPressMsg) (shortcut.KeyEvent, bool) {
	ev := FromKeyPress(msg)
	if s.listener != nil {
		s.listener(&ev)
	}

	return ev, ev.DefaultPrevented()
}
