package ui

import (
	"charm.land/lipgloss/v2"
)

// Layout constants shared by panels.
const (
	// PanelBorderWidth is the horizontal space taken by a panel's border.
	PanelBorderWidth = 2

	// PanelBorderHeight is the vertical space taken by a panel's border.
	PanelBorderHeight = 2

	// PanelChromeHeight is border plus the title line.
	PanelChromeHeight = 3
)

// Status bar ordering for hints contributed by the UI.
const (
	PanelOrderPrimary   = 10
	PanelOrderSecondary = 20
)

// Colors
var (
	primaryColor   = lipgloss.Color("62")  // Purple
	secondaryColor = lipgloss.Color("241") // Gray
	accentColor    = lipgloss.Color("86")  // Cyan
	borderColor    = lipgloss.Color("240") // Dark gray
	warnColor      = lipgloss.Color("214") // Orange
	capColor       = lipgloss.Color("252") // Light gray
)

// Styles holds every style the UI renders with.
type Styles struct {
	Panel        lipgloss.Style
	FocusedPanel lipgloss.Style
	Title        lipgloss.Style
	FocusedTitle lipgloss.Style
	Section      lipgloss.Style
	Dim          lipgloss.Style

	// Keycaps
	KeyCap         lipgloss.Style
	DisabledKeyCap lipgloss.Style
	Feature        lipgloss.Style
	Disabled       lipgloss.Style
	Disallowed     lipgloss.Style

	// Widgets
	Widget        lipgloss.Style
	FocusedWidget lipgloss.Style
	Button        lipgloss.Style
	FocusedButton lipgloss.Style
}

// DefaultStyles returns the built-in theme.
func DefaultStyles() *Styles {
	return &Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor),
		FocusedPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1),
		FocusedTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			Padding(0, 1),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor),
		Dim: lipgloss.NewStyle().
			Foreground(secondaryColor),

		KeyCap: lipgloss.NewStyle().
			Foreground(capColor).
			Background(lipgloss.Color("237")).
			Padding(0, 1),
		DisabledKeyCap: lipgloss.NewStyle().
			Foreground(secondaryColor).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		Feature: lipgloss.NewStyle().
			Foreground(capColor),
		Disabled: lipgloss.NewStyle().
			Foreground(secondaryColor).
			Strikethrough(true),
		Disallowed: lipgloss.NewStyle().
			Foreground(warnColor).
			Italic(true),

		Widget: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(borderColor),
		FocusedWidget: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(accentColor),
		Button: lipgloss.NewStyle().
			Foreground(capColor).
			Background(lipgloss.Color("238")).
			Padding(0, 2),
		FocusedButton: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(primaryColor).
			Padding(0, 2),
	}
}

// PanelTitle returns a formatted panel title with optional focus indicator.
func (s *Styles) PanelTitle(title string, focused bool) string {
	if focused {
		return s.FocusedTitle.Render("● " + title)
	}

	return s.Title.Render(title)
}

// PanelBorder picks the border style for a panel.
func (s *Styles) PanelBorder(focused bool) lipgloss.Style {
	if focused {
		return s.FocusedPanel
	}

	return s.Panel
}
