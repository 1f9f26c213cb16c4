package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const (
	// modalHorizontalPadding is the horizontal padding inside the modal border.
	modalHorizontalPadding = 2

	// modalChrome is border (1) plus padding on each side.
	modalChrome = (1 + modalHorizontalPadding) * 2

	// minModalWidth is the floor width for the modal content.
	minModalWidth = 30
)

// ModalButtonID identifies the modal's demo button in ButtonPressedMsg.
const ModalButtonID = "modal-button"

// Modal is the shortcut demo dialog: a list of shortcuts with their state
// and one focusable widget per element category.
type Modal struct {
	title  string
	rows   []ShortcutRow
	ring   *FocusRing
	width  int
	height int
	styles *Styles

	input    *Input
	textarea *TextArea
	sel      *Select
	button   *Button

	borderStyle lipgloss.Style
	hintStyle   lipgloss.Style
}

// NewModal creates the dialog with nothing focused.
func NewModal(styles *Styles, title string) *Modal {
	m := &Modal{
		title:    title,
		styles:   styles,
		input:    NewInput(styles, "Input: Disallow 'arrow up' shortcut"),
		textarea: NewTextArea(styles, "Textarea: Disallow 'arrow down' shortcut"),
		sel: NewSelect(styles,
			"Select: Disallow 'arrow left' shortcut (1)",
			"Select: Disallow 'arrow left' shortcut (2)",
			"Select: Disallow 'arrow left' shortcut (3)",
		),
		button: NewButton(styles, ModalButtonID, "Button: Disallow 'arrow right' shortcut"),
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, modalHorizontalPadding),
		hintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}

	m.ring = NewFocusRing(m.input, m.textarea, m.sel, m.button)

	return m
}

// Title returns the dialog title.
func (m *Modal) Title() string {
	return m.title
}

// Ring returns the focus ring over the dialog's widgets.
func (m *Modal) Ring() *FocusRing {
	return m.ring
}

// Input returns the text field.
func (m *Modal) Input() *Input { return m.input }

// TextArea returns the text area.
func (m *Modal) TextArea() *TextArea { return m.textarea }

// Select returns the select.
func (m *Modal) Select() *Select { return m.sel }

// Button returns the button.
func (m *Modal) Button() *Button { return m.button }

// SetRows replaces the shortcut listing.
func (m *Modal) SetRows(rows []ShortcutRow) {
	m.rows = rows
}

// SetSize sets the available size for the dialog.
func (m *Modal) SetSize(width, height int) {
	m.width = width
	m.height = height

	m.ring.SetWidth(max(width-modalChrome, minModalWidth))
}

// Update forwards msg to the focused widget.
func (m *Modal) Update(msg tea.Msg) tea.Cmd {
	return m.ring.Update(msg)
}

// View renders the dialog.
func (m *Modal) View() string {
	var shortcuts []string
	for _, r := range m.rows {
		shortcuts = append(shortcuts, m.styles.ShortcutLine(r))
	}

	widgets := make([]string, 0, len(m.ring.Widgets()))
	for _, w := range m.ring.Widgets() {
		widgets = append(widgets, w.View())
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Section.Render(m.title),
		"",
		m.styles.Section.Render("Shortcuts"),
		strings.Join(shortcuts, "\n"),
		"",
		m.styles.Section.Render("Focusable Elements"),
		strings.Join(widgets, "\n"),
		"",
		m.hintStyle.Render("tab focus • shift+tab back"),
	)

	return m.borderStyle.Render(content)
}

// Width returns the rendered width of the dialog.
func (m *Modal) Width() int {
	return lipgloss.Width(m.View())
}

// Height returns the rendered height of the dialog.
func (m *Modal) Height() int {
	return lipgloss.Height(m.View())
}
