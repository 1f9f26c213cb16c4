package ui

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/viewport"
	"charm.land/lipgloss/v2"
)

// EventLog is a scrolling list of demo events, newest at the bottom.
type EventLog struct {
	viewport viewport.Model
	styles   *Styles
	entries  []string
	width    int
	height   int
}

// NewEventLog creates an empty log panel.
func NewEventLog(styles *Styles) *EventLog {
	p := &EventLog{
		viewport: viewport.New(),
		styles:   styles,
	}
	p.updateContent()

	return p
}

// SetSize sets the panel dimensions.
func (p *EventLog) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.viewport.SetWidth(max(width-PanelBorderWidth, 0))
	p.viewport.SetHeight(max(height-PanelChromeHeight, 0))
	p.updateContent()
}

// Append adds an entry and scrolls to it.
func (p *EventLog) Append(entry string) {
	p.entries = append(p.entries, entry)
	p.updateContent()
}

// Clear removes every entry.
func (p *EventLog) Clear() {
	p.entries = nil
	p.updateContent()
}

// Entries returns the entries oldest first.
func (p *EventLog) Entries() []string {
	return p.entries
}

// Len returns the number of entries.
func (p *EventLog) Len() int {
	return len(p.entries)
}

func (p *EventLog) updateContent() {
	if len(p.entries) == 0 {
		p.viewport.SetContent(p.styles.Dim.Render("No events yet"))
		return
	}

	// Numbers are right-aligned to the widest one.
	numWidth := len(strconv.Itoa(len(p.entries)))

	var b strings.Builder

	for i, e := range p.entries {
		if i > 0 {
			b.WriteString("\n")
		}

		num := strconv.Itoa(i + 1)
		b.WriteString(p.styles.Dim.Render(strings.Repeat(" ", numWidth-len(num)) + num + "."))
		b.WriteString(" ")
		b.WriteString(e)
	}

	p.viewport.SetContent(b.String())
	p.viewport.GotoBottom()
}

// View renders the panel.
func (p *EventLog) View() string {
	title := p.styles.PanelTitle("Log", false)

	style := p.styles.Panel
	if p.width > PanelBorderWidth {
		style = style.Width(p.width - PanelBorderWidth)
	}

	if p.height > PanelChromeHeight {
		style = style.Height(p.height - PanelBorderHeight)
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, p.viewport.View()))
}
