package shortcut

import "strings"

// FocusOptions selects the element categories whose focus blocks a shortcut.
type FocusOptions struct {
	Input    bool
	Textarea bool
	Select   bool
	Button   bool
}

// Suppression is a shortcut's focus-suppression policy. The zero value never
// suppresses.
type Suppression struct {
	all      bool
	elements FocusOptions
}

// SuppressAll blocks the shortcut while any element other than the document
// body has focus.
func SuppressAll() Suppression {
	return Suppression{all: true}
}

// SuppressOn blocks the shortcut only while an element of a selected
// category has focus.
func SuppressOn(opts FocusOptions) Suppression {
	return Suppression{elements: opts}
}

// IsZero reports whether the policy never suppresses.
func (s Suppression) IsZero() bool {
	return !s.all && s.elements == FocusOptions{}
}

// Suppresses reports whether focus on an element of category el blocks the
// shortcut.
func (s Suppression) Suppresses(el Element) bool {
	if el == ElementNone {
		return false
	}

	if s.all {
		return true
	}

	switch el {
	case ElementInput:
		return s.elements.Input
	case ElementTextarea:
		return s.elements.Textarea
	case ElementSelect:
		return s.elements.Select
	case ElementButton:
		return s.elements.Button
	default:
		return false
	}
}

// String names the blocking categories, e.g. "input, select". SuppressAll
// reads "any", the zero policy reads "".
func (s Suppression) String() string {
	if s.all {
		return "any"
	}

	var names []string

	for _, el := range []Element{ElementInput, ElementTextarea, ElementSelect, ElementButton} {
		if s.Suppresses(el) {
			names = append(names, el.String())
		}
	}

	return strings.Join(names, ", ")
}
