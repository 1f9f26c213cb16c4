package ui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/chatter/shortkey/internal/shortcut"
)

// noFocus is the ring index when nothing has focus.
const noFocus = -1

// FocusRing cycles focus over a fixed list of widgets. It starts with
// nothing focused.
type FocusRing struct {
	widgets []Widget
	index   int
}

// NewFocusRing creates a ring over widgets in tab order.
func NewFocusRing(widgets ...Widget) *FocusRing {
	return &FocusRing{widgets: widgets, index: noFocus}
}

// Widgets returns the widgets in tab order.
func (r *FocusRing) Widgets() []Widget {
	return r.widgets
}

// Index returns the focused position, -1 if none.
func (r *FocusRing) Index() int {
	return r.index
}

// Focused returns the focused widget, nil if none.
func (r *FocusRing) Focused() Widget {
	if r.index == noFocus {
		return nil
	}

	return r.widgets[r.index]
}

// FocusedElement implements shortcut.FocusReporter.
func (r *FocusRing) FocusedElement() shortcut.Element {
	if w := r.Focused(); w != nil {
		return w.Element()
	}

	return shortcut.ElementNone
}

// Next moves focus forward, wrapping. From no focus it lands on the first
// widget.
func (r *FocusRing) Next() tea.Cmd {
	if len(r.widgets) == 0 {
		return nil
	}

	return r.FocusAt((r.index + 1) % len(r.widgets))
}

// Prev moves focus backward, wrapping. From no focus it lands on the last
// widget.
func (r *FocusRing) Prev() tea.Cmd {
	if len(r.widgets) == 0 {
		return nil
	}

	if r.index <= 0 {
		return r.FocusAt(len(r.widgets) - 1)
	}

	return r.FocusAt(r.index - 1)
}

// FocusAt focuses the widget at i. Out-of-range i clears focus.
func (r *FocusRing) FocusAt(i int) tea.Cmd {
	if w := r.Focused(); w != nil {
		w.Blur()
	}

	if i < 0 || i >= len(r.widgets) {
		r.index = noFocus
		return nil
	}

	r.index = i

	return r.widgets[i].Focus()
}

// Blur clears focus.
func (r *FocusRing) Blur() {
	r.FocusAt(noFocus)
}

// Update forwards msg to the focused widget.
func (r *FocusRing) Update(msg tea.Msg) tea.Cmd {
	if w := r.Focused(); w != nil {
		return w.Update(msg)
	}

	return nil
}

// SetWidth sizes every widget.
func (r *FocusRing) SetWidth(width int) {
	for _, w := range r.widgets {
		w.SetWidth(width)
	}
}
