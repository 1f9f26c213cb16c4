package shortcut

import "strings"

// KeyEvent is one physical key press as delivered by the environment.
// Key is the textual key value ("a", "enter", "arrowup").
type KeyEvent struct {
	Key   string
	Ctrl  bool
	Alt   bool
	Shift bool
	Meta  bool

	defaultPrevented bool
}

// PreventDefault tells the environment not to apply its own handling of the
// key, e.g. not to forward it to the focused widget.
func (e *KeyEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a shortcut claimed the event.
func (e *KeyEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Descriptor returns the normalized (lower-cased) descriptor of the event.
func (e *KeyEvent) Descriptor() Descriptor {
	return Descriptor{
		Key:   strings.ToLower(e.Key),
		Ctrl:  e.Ctrl,
		Alt:   e.Alt,
		Shift: e.Shift,
		Meta:  e.Meta,
	}
}

// Listener receives key events from a Source.
type Listener func(ev *KeyEvent)

// Source is a keyboard input source. Subscribe registers a listener and
// returns the function that removes it.
type Source interface {
	Subscribe(l Listener) (unsubscribe func())
}

// Element is the category of the currently focused element.
type Element int

const (
	ElementNone Element = iota // nothing focused (the document body)
	ElementInput
	ElementTextarea
	ElementSelect
	ElementButton
	ElementOther
)

var elementNames = [...]string{
	ElementNone:     "none",
	ElementInput:    "input",
	ElementTextarea: "textarea",
	ElementSelect:   "select",
	ElementButton:   "button",
	ElementOther:    "other",
}

func (e Element) String() string {
	if e < 0 || int(e) >= len(elementNames) {
		return "other"
	}

	return elementNames[e]
}

// FocusReporter answers which kind of element currently has focus.
type FocusReporter interface {
	FocusedElement() Element
}

// FocusFunc adapts a function to FocusReporter.
type FocusFunc func() Element

// FocusedElement implements FocusReporter.
func (f FocusFunc) FocusedElement() Element {
	return f()
}

type noFocus struct{}

func (noFocus) FocusedElement() Element { return ElementNone }
