package help

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBar renders one line of enabled key hints with the version
// right-aligned.
type StatusBar struct {
	width    int
	version  string
	bindings []HelpBinding

	// Styles
	keyStyle  lipgloss.Style
	descStyle lipgloss.Style
	sepStyle  lipgloss.Style
}

// NewStatusBar creates a new status bar that displays the given version string.
func NewStatusBar(version string) *StatusBar {
	return &StatusBar{
		version:   version,
		keyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#999999")),
		descStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#777777")),
		sepStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")),
	}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// SetBindings sets the hints to show. Disabled bindings are skipped.
func (s *StatusBar) SetBindings(bindings []HelpBinding) {
	s.bindings = bindings
}

// View renders the status bar. Pinned hints come first; unpinned hints are
// dropped from the end when space runs out and an ellipsis marks the cut.
// The version stays right-aligned whenever it fits at all.
func (s *StatusBar) View() string {
	if s.width <= 0 {
		return ""
	}

	const minGap = 1

	sep := s.sepStyle.Render(" • ")
	sepWidth := lipgloss.Width(sep)
	ellipsis := s.sepStyle.Render(" …")

	var pinned, rest []HelpBinding

	for _, hb := range s.bindings {
		if !hb.Binding.Enabled() {
			continue
		}

		if hb.Pinned {
			pinned = append(pinned, hb)
		} else {
			rest = append(rest, hb)
		}
	}

	sortBindings(pinned)
	sortBindings(rest)

	versionWidth := lipgloss.Width(s.version)
	if versionWidth >= s.width {
		return lipgloss.NewStyle().MaxWidth(s.width).Render(s.version)
	}

	budget := s.width - versionWidth - minGap

	var parts []string

	used := 0

	add := func(part string) {
		if len(parts) > 0 {
			used += sepWidth
		}

		used += lipgloss.Width(part)
		parts = append(parts, part)
	}

	for _, hb := range pinned {
		add(s.render(hb))
	}

	truncated := false

	for _, hb := range rest {
		part := s.render(hb)

		w := lipgloss.Width(part)
		if len(parts) > 0 {
			w += sepWidth
		}

		if used+w > budget {
			truncated = true
			break
		}

		add(part)
	}

	left := strings.Join(parts, sep)
	if truncated && used+lipgloss.Width(ellipsis) <= budget {
		left += ellipsis
	}

	// Pinned hints alone may overflow a very narrow bar.
	switch {
	case budget <= 0:
		left = ""
	case lipgloss.Width(left) > budget:
		left = lipgloss.NewStyle().MaxWidth(budget).Render(left)
	}

	padding := s.width - lipgloss.Width(left) - versionWidth

	return left + strings.Repeat(" ", padding) + s.version
}

func (s *StatusBar) render(hb HelpBinding) string {
	h := hb.Binding.Help()

	return s.keyStyle.Render(h.Key) + " " + s.descStyle.Render(h.Desc)
}
