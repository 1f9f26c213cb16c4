package ui

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chatter/shortkey/internal/shortcut"
)

const (
	// widgetChrome is the horizontal space taken by a widget's border.
	widgetChrome = 2

	// minWidgetWidth is the floor for inner widget width.
	minWidgetWidth = 10

	textareaHeight = 3
)

// Widget is a focusable control. Element reports the category the shortcut
// engine uses for focus suppression.
type Widget interface {
	Element() shortcut.Element
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetWidth(width int)
}

// Input is a single-line text field.
type Input struct {
	model  textinput.Model
	styles *Styles
}

// NewInput creates a text field holding value.
func NewInput(styles *Styles, value string) *Input {
	m := textinput.New()
	m.Prompt = ""
	m.CharLimit = 256
	m.SetValue(value)

	return &Input{model: m, styles: styles}
}

func (i *Input) Element() shortcut.Element { return shortcut.ElementInput }

func (i *Input) Focus() tea.Cmd { return i.model.Focus() }

func (i *Input) Blur() { i.model.Blur() }

func (i *Input) Focused() bool { return i.model.Focused() }

// Value returns the current text.
func (i *Input) Value() string { return i.model.Value() }

func (i *Input) SetWidth(width int) {
	i.model.SetWidth(max(width-widgetChrome, minWidgetWidth))
}

func (i *Input) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	i.model, cmd = i.model.Update(msg)

	return cmd
}

func (i *Input) View() string {
	return widgetFrame(i.styles, i.Focused()).Render(i.model.View())
}

// TextArea is a multi-line text field.
type TextArea struct {
	model  textarea.Model
	styles *Styles
}

// NewTextArea creates a text area holding value.
func NewTextArea(styles *Styles, value string) *TextArea {
	m := textarea.New()
	m.ShowLineNumbers = false
	m.Prompt = ""
	m.SetHeight(textareaHeight)
	m.SetValue(value)

	return &TextArea{model: m, styles: styles}
}

func (t *TextArea) Element() shortcut.Element { return shortcut.ElementTextarea }

func (t *TextArea) Focus() tea.Cmd { return t.model.Focus() }

func (t *TextArea) Blur() { t.model.Blur() }

func (t *TextArea) Focused() bool { return t.model.Focused() }

// Value returns the current text.
func (t *TextArea) Value() string { return t.model.Value() }

func (t *TextArea) SetWidth(width int) {
	t.model.SetWidth(max(width-widgetChrome, minWidgetWidth))
}

func (t *TextArea) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	t.model, cmd = t.model.Update(msg)

	return cmd
}

func (t *TextArea) View() string {
	return widgetFrame(t.styles, t.Focused()).Render(t.model.View())
}

// Select is a drop-down stand-in: arrows and space cycle through options.
type Select struct {
	options []string
	index   int
	focused bool
	width   int
	styles  *Styles

	prev key.Binding
	next key.Binding
}

// NewSelect creates a select over options with the first one chosen.
func NewSelect(styles *Styles, options ...string) *Select {
	return &Select{
		options: options,
		styles:  styles,
		prev:    key.NewBinding(key.WithKeys("up", "left")),
		next:    key.NewBinding(key.WithKeys("down", "right", "space")),
	}
}

func (s *Select) Element() shortcut.Element { return shortcut.ElementSelect }

func (s *Select) Focus() tea.Cmd {
	s.focused = true
	return nil
}

func (s *Select) Blur() { s.focused = false }

func (s *Select) Focused() bool { return s.focused }

func (s *Select) SetWidth(width int) { s.width = width }

// Index returns the chosen option index.
func (s *Select) Index() int { return s.index }

// Value returns the chosen option, "" when there are none.
func (s *Select) Value() string {
	if len(s.options) == 0 {
		return ""
	}

	return s.options[s.index]
}

func (s *Select) Update(msg tea.Msg) tea.Cmd {
	kp, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.focused || len(s.options) == 0 {
		return nil
	}

	switch {
	case key.Matches(kp, s.prev):
		s.index = (s.index - 1 + len(s.options)) % len(s.options)
	case key.Matches(kp, s.next):
		s.index = (s.index + 1) % len(s.options)
	}

	return nil
}

func (s *Select) View() string {
	text := "▾ " + s.Value()

	style := widgetFrame(s.styles, s.focused)
	if s.width > 0 {
		style = style.Width(s.width)
	}

	return style.Render(text)
}

// ButtonPressedMsg is sent when a focused button is activated.
type ButtonPressedMsg struct {
	ID string
}

// Button activates on Enter or Space while focused.
type Button struct {
	id      string
	label   string
	focused bool
	styles  *Styles

	press key.Binding
}

// NewButton creates a button. id is echoed in ButtonPressedMsg.
func NewButton(styles *Styles, id, label string) *Button {
	return &Button{
		id:     id,
		label:  label,
		styles: styles,
		press:  key.NewBinding(key.WithKeys("enter", "space")),
	}
}

func (b *Button) Element() shortcut.Element { return shortcut.ElementButton }

func (b *Button) Focus() tea.Cmd {
	b.focused = true
	return nil
}

func (b *Button) Blur() { b.focused = false }

func (b *Button) Focused() bool { return b.focused }

func (b *Button) SetWidth(int) {}

// ID returns the button identifier.
func (b *Button) ID() string { return b.id }

// Label returns the button text.
func (b *Button) Label() string { return b.label }

func (b *Button) Update(msg tea.Msg) tea.Cmd {
	kp, ok := msg.(tea.KeyPressMsg)
	if !ok || !b.focused || !key.Matches(kp, b.press) {
		return nil
	}

	id := b.id

	return func() tea.Msg {
		return ButtonPressedMsg{ID: id}
	}
}

func (b *Button) View() string {
	if b.focused {
		return b.styles.FocusedButton.Render(b.label)
	}

	return b.styles.Button.Render(b.label)
}

func widgetFrame(s *Styles, focused bool) lipgloss.Style {
	if focused {
		return s.FocusedWidget
	}

	return s.Widget
}
