package help

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// FloatingHelp renders a modal listing every binding by category. Disabled
// bindings are listed dimmed and marked "off".
type FloatingHelp struct {
	width    int
	height   int
	bindings []HelpBinding

	// Styles (cached for frame size calculations)
	borderStyle lipgloss.Style
	titleStyle  lipgloss.Style
	footerStyle lipgloss.Style
}

// NewFloatingHelp creates a new floating help modal.
func NewFloatingHelp() *FloatingHelp {
	return &FloatingHelp{
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2),
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")),
		footerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

// SetSize sets the available size for the modal.
func (f *FloatingHelp) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// SetBindings sets the keybindings to display.
func (f *FloatingHelp) SetBindings(bindings []HelpBinding) {
	f.bindings = bindings
}

// View renders the floating help modal.
func (f *FloatingHelp) View() string {
	if f.width <= 0 || f.height <= 0 {
		return ""
	}

	frameWidth := f.borderStyle.GetHorizontalFrameSize()
	frameHeight := f.borderStyle.GetVerticalFrameSize()

	innerWidth := f.width - frameWidth
	innerHeight := f.height - frameHeight

	if innerWidth < 20 || innerHeight < 5 {
		return f.borderStyle.Width(max(innerWidth, 10)).Render("...")
	}

	title := f.titleStyle.Render("Shortcuts")
	footer := f.footerStyle.Render("F1 to close")

	// title line + footer line
	contentHeight := innerHeight - 2

	lines := f.renderLines(innerWidth)
	if len(lines) > contentHeight {
		lines = lines[:contentHeight]
	}

	body := lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n"))

	inner := lipgloss.Place(
		innerWidth, innerHeight-1,
		lipgloss.Left, lipgloss.Top,
		body,
	)

	footerLine := lipgloss.PlaceHorizontal(innerWidth, lipgloss.Right, footer)

	return f.borderStyle.Render(inner + "\n" + footerLine)
}

// categoryOrder defines the display order of categories
var categoryOrder = []Category{
	CategoryPage,
	CategoryModal,
	CategoryNavigation,
}

// groupByCategory groups bindings by category, sorted by order.
func (f *FloatingHelp) groupByCategory() map[Category][]HelpBinding {
	groups := make(map[Category][]HelpBinding)

	for _, hb := range f.bindings {
		groups[hb.Category] = append(groups[hb.Category], hb)
	}

	for cat := range groups {
		sortBindings(groups[cat])
	}

	return groups
}

// renderLines renders category headers and one line per binding.
func (f *FloatingHelp) renderLines(availableWidth int) []string {
	if len(f.bindings) == 0 {
		return []string{"No shortcuts registered"}
	}

	groups := f.groupByCategory()

	maxKeyWidth := 0
	for _, hb := range f.bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(hb.Binding.Help().Key))
	}

	// Key column: key + gap (2)
	keyColumnWidth := maxKeyWidth + 2
	descMaxWidth := max(availableWidth-2-keyColumnWidth, 10) // 2 for indent

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("86")).
		Width(keyColumnWidth)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		MaxWidth(descMaxWidth)

	offStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Strikethrough(true)

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("62"))

	var lines []string

	for _, cat := range categoryOrder {
		bindings := groups[cat]
		if len(bindings) == 0 {
			continue
		}

		if len(lines) > 0 {
			lines = append(lines, "")
		}

		lines = append(lines, headerStyle.Render(string(cat)))

		for _, hb := range bindings {
			h := hb.Binding.Help()

			if hb.Binding.Enabled() {
				lines = append(lines, "  "+keyStyle.Render(h.Key)+descStyle.Render(h.Desc))
				continue
			}

			desc := lipgloss.NewStyle().MaxWidth(descMaxWidth).Render(h.Desc + " (off)")
			lines = append(lines, "  "+offStyle.Width(keyColumnWidth).Render(h.Key)+offStyle.Render(desc))
		}
	}

	return lines
}
