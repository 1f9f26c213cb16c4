// Package app wires the shortcut engine into the bubbletea demo: a home
// screen with an event log and a modal dialog whose shortcuts live exactly
// as long as it is open.
package app

import (
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chatter/shortkey/internal/config"
	"github.com/chatter/shortkey/internal/config/watch"
	"github.com/chatter/shortkey/internal/keyinput"
	"github.com/chatter/shortkey/internal/logger"
	"github.com/chatter/shortkey/internal/shortcut"
	"github.com/chatter/shortkey/internal/ui"
	"github.com/chatter/shortkey/internal/ui/help"
)

// Home screen button IDs.
const (
	ButtonOpenModal = "open-modal"
	ButtonClearLog  = "clear-log"
)

// reloadDebounce gives editors time to finish writing before a reload.
const reloadDebounce = 100 * time.Millisecond

// Model is the main application model. It is used through a pointer so
// shortcut callbacks can change it while a key is being dispatched.
type Model struct {
	version string
	keys    KeyMap
	styles  *ui.Styles
	log     *logger.Logger

	// Configuration
	cfg    config.Config
	loader *config.Loader

	// Shortcut engine
	dispatcher   *shortcut.Dispatcher
	source       *keyinput.Source
	homeHandles  []*shortcut.Handle
	modalHandles []*shortcut.Handle

	// Screens
	homeRing *ui.FocusRing
	modal    *ui.Modal
	eventLog *ui.EventLog
	showHelp bool

	// Help
	statusBar    *help.StatusBar
	floatingHelp *help.FloatingHelp

	watcher *watch.Watcher

	// Window size
	width  int
	height int

	// Error state
	lastError string
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used by the model and its dispatcher.
func WithLogger(l *logger.Logger) Option {
	return func(m *Model) {
		m.log = l
	}
}

// WithLoader enables reloading cfg when files in the loader's directory
// change.
func WithLoader(l *config.Loader) Option {
	return func(m *Model) {
		m.loader = l
	}
}

// New creates the application model and registers the home shortcuts.
func New(version string, cfg config.Config, opts ...Option) *Model {
	styles := ui.DefaultStyles()

	m := &Model{
		version: version,
		keys:    DefaultKeyMap(),
		styles:  styles,
		log:     logger.Discard(),
		cfg:     cfg,
		source:  keyinput.NewSource(),
		homeRing: ui.NewFocusRing(
			ui.NewButton(styles, ButtonOpenModal, "Open modal"),
			ui.NewButton(styles, ButtonClearLog, "Clear log"),
		),
		eventLog:     ui.NewEventLog(styles),
		statusBar:    help.NewStatusBar("shortkey " + version),
		floatingHelp: help.NewFloatingHelp(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.dispatcher = shortcut.NewDispatcher(
		shortcut.WithSource(m.source),
		shortcut.WithFocus(shortcut.FocusFunc(m.focusedElement)),
		shortcut.WithAlternatePlatform(cfg.Alternate()),
		shortcut.WithLogger(m.log.With("component", "shortcut")),
	)

	m.homeHandles = registerAll(m.dispatcher, cfg, homeShortcuts, m.callback)

	for _, w := range cfg.Warnings {
		m.log.Warn("ignoring shortcut config entry", "entry", w)
	}

	return m
}

// Dispatcher returns the shortcut dispatcher.
func (m *Model) Dispatcher() *shortcut.Dispatcher {
	return m.dispatcher
}

// EventLog returns the event log panel.
func (m *Model) EventLog() *ui.EventLog {
	return m.eventLog
}

// Modal returns the open modal, nil when closed.
func (m *Model) Modal() *ui.Modal {
	return m.modal
}

// Init initializes the application
func (m *Model) Init() tea.Cmd {
	if m.loader == nil {
		return nil
	}

	return m.startWatcher()
}

// startWatcher starts the config directory watcher
func (m *Model) startWatcher() tea.Cmd {
	dir := m.loader.Dir()
	log := m.log

	return func() tea.Msg {
		w, err := watch.New(dir, log)

		// Don't fail if watcher can't start, just disable reloads
		return watcherStartedMsg{watcher: w, err: err}
	}
}

// waitForChange waits for the next config change
func (m *Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}

	events := m.watcher.Events()

	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}

		time.Sleep(reloadDebounce)

		return watch.ChangedMsg{Path: ev.Name}
	}
}

// Message types
type watcherStartedMsg struct {
	watcher *watch.Watcher
	err     error
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case ui.ButtonPressedMsg:
		m.handleButton(msg.ID)

	case watcherStartedMsg:
		if msg.err != nil {
			m.log.Warn("config reload disabled", "err", msg.err)
			break
		}

		m.watcher = msg.watcher
		cmds = append(cmds, m.waitForChange())

	case watch.ChangedMsg:
		m.reload(msg.Path)
		cmds = append(cmds, m.waitForChange())
	}

	return m, tea.Batch(cmds...)
}

// handleKey offers the key to the shortcut engine first. Keys no shortcut
// claimed go to the terminal bindings, then to the focused widget.
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	// When help is open, only the close keys work
	if m.showHelp {
		if key.Matches(msg, m.keys.CloseHelp) {
			m.showHelp = false
		}

		return nil
	}

	if _, claimed := m.source.Deliver(msg); claimed {
		return nil
	}

	if handled, cmd := dispatchKey(m, msg, m.globalBindings()); handled {
		return cmd
	}

	return m.focusRing().Update(msg)
}

func (m *Model) handleButton(id string) {
	switch id {
	case ButtonOpenModal:
		m.openModal()
	case ButtonClearLog:
		m.clearLog()
	case ui.ModalButtonID:
		m.addLog("Button Pressed")
	}
}

// callback returns the function run when the shortcut called name fires.
func (m *Model) callback(name string) func() {
	switch name {
	case ActionOpenModal:
		return m.openModal
	case ActionClearLog:
		return m.clearLog
	case ActionCloseModal:
		return func() {
			m.closeModal()
			m.addLog(feature(name))
		}
	case ActionToggleShortcuts:
		return m.toggleShortcuts
	default:
		return func() {
			m.addLog(feature(name))
		}
	}
}

func (m *Model) addLog(entry string) {
	m.log.Info("feature", "name", entry)
	m.eventLog.Append(entry)
}

func (m *Model) clearLog() {
	m.log.Info("log cleared", "entries", m.eventLog.Len())
	m.eventLog.Clear()
}

// openModal mounts the modal and its shortcuts. Focus leaves the home
// screen and nothing in the modal is focused.
func (m *Model) openModal() {
	if m.modal != nil {
		return
	}

	m.homeRing.Blur()

	m.modal = ui.NewModal(m.styles, "Shortcut Demo")
	m.modal.SetSize(m.modalSize())
	m.modalHandles = registerAll(m.dispatcher, m.cfg, modalShortcuts, m.callback)

	m.addLog("Open Modal")
}

// closeModal unmounts the modal; its shortcuts go with it.
func (m *Model) closeModal() {
	if m.modal == nil {
		return
	}

	for _, h := range m.modalHandles {
		h.Unregister()
	}

	m.modalHandles = nil
	m.modal = nil
}

// toggleShortcuts enables Apply and Select All when both are disabled and
// disables both otherwise.
func (m *Model) toggleShortcuts() {
	apply := handleNamed(m.modalHandles, ActionApply)
	selectAll := handleNamed(m.modalHandles, ActionSelectAll)

	if shortcut.ToggleAll(apply, selectAll) {
		m.addLog("Enable Shortcuts")
	} else {
		m.addLog("Disable Shortcuts")
	}
}

// reload re-reads the config and rebinds every live shortcut. A failed
// reload keeps the previous bindings.
func (m *Model) reload(path string) {
	m.log.Info("config changed", "path", path)

	cfg, err := m.loader.Load()
	if err != nil {
		m.lastError = err.Error()
		m.log.Error("config reload failed", "err", err)

		return
	}

	m.lastError = ""
	m.cfg = cfg

	rebind(m.homeHandles, cfg)
	rebind(m.modalHandles, cfg)

	for _, w := range cfg.Warnings {
		m.log.Warn("ignoring shortcut config entry", "entry", w)
	}

	m.addLog("Config Reloaded")
}

// focusRing returns the ring of the topmost screen.
func (m *Model) focusRing() *ui.FocusRing {
	if m.modal != nil {
		return m.modal.Ring()
	}

	return m.homeRing
}

// focusedElement is the dispatcher's focus reporter.
func (m *Model) focusedElement() shortcut.Element {
	return m.focusRing().FocusedElement()
}

// Action methods for keybindings

func (m *Model) actionQuit() tea.Cmd {
	if m.watcher != nil {
		m.watcher.Close()
	}

	return tea.Quit
}

func (m *Model) actionNextFocus() tea.Cmd {
	return m.focusRing().Next()
}

func (m *Model) actionPrevFocus() tea.Cmd {
	return m.focusRing().Prev()
}

func (m *Model) actionToggleHelp() tea.Cmd {
	m.showHelp = !m.showHelp
	return nil
}

// globalBindings returns the terminal-level keybindings with their actions.
func (m *Model) globalBindings() []ActionBinding {
	return []ActionBinding{
		{
			HelpBinding: help.HelpBinding{
				Binding:  m.keys.NextFocus,
				Category: help.CategoryNavigation,
				Order:    ui.PanelOrderPrimary,
			},
			Action: (*Model).actionNextFocus,
		},
		{
			HelpBinding: help.HelpBinding{
				Binding:  m.keys.PrevFocus,
				Category: help.CategoryNavigation,
				Order:    ui.PanelOrderSecondary,
			},
			Action: (*Model).actionPrevFocus,
		},
		// Help toggle - pinned, always visible
		{
			HelpBinding: help.HelpBinding{
				Binding:  m.keys.Help,
				Category: help.CategoryNavigation,
				Order:    98,
				Pinned:   true,
			},
			Action: (*Model).actionToggleHelp,
		},
		{
			HelpBinding: help.HelpBinding{
				Binding:  m.keys.Quit,
				Category: help.CategoryNavigation,
				Order:    99,
				Pinned:   true,
			},
			Action: (*Model).actionQuit,
		},
	}
}

// activeHelpBindings returns the engine shortcuts currently registered
// followed by the terminal bindings.
func (m *Model) activeHelpBindings() []help.HelpBinding {
	alt := m.dispatcher.Alternate()

	bindings := shortcutHelp(m.homeHandles, help.CategoryPage, alt, 0)
	bindings = append(bindings, shortcutHelp(m.modalHandles, help.CategoryModal, alt, len(m.homeHandles))...)

	return append(bindings, ToHelpBindings(m.globalBindings())...)
}

// modalRows describes the modal's shortcuts in registration order.
func (m *Model) modalRows() []ui.ShortcutRow {
	alt := m.dispatcher.Alternate()
	rows := make([]ui.ShortcutRow, 0, len(m.modalHandles))

	for _, h := range m.modalHandles {
		rows = append(rows, ui.RowFor(h, feature(h.Name()), alt))
	}

	return rows
}

func (m *Model) modalSize() (int, int) {
	return min(m.width-4, 80), m.height - 2
}

func (m *Model) updateSizes() {
	// header + buttons + gap + status bar
	const chrome = 4

	m.eventLog.SetSize(m.width, max(m.height-chrome, ui.PanelChromeHeight))
	m.homeRing.SetWidth(m.width)

	if m.modal != nil {
		m.modal.SetSize(m.modalSize())
	}
}

// View renders the application
func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true

	return v
}

func (m *Model) render() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		m.modal.SetRows(m.modalRows())

		return lipgloss.Place(
			m.width, m.height-1,
			lipgloss.Center, lipgloss.Center,
			m.modal.View(),
		) + "\n" + m.renderStatusBar()
	}

	header := m.styles.PanelTitle("shortkey", true)
	if m.lastError != "" {
		header += " " + m.styles.Disallowed.Render(m.lastError)
	}

	buttons := make([]string, 0, len(m.homeRing.Widgets()))
	for _, w := range m.homeRing.Widgets() {
		buttons = append(buttons, w.View(), " ")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
		"",
		m.eventLog.View(),
		m.renderStatusBar(),
	)
}

func (m *Model) renderHelp() string {
	// Calculate modal size (centered, ~80% of screen)
	modalWidth := m.width * 80 / 100
	modalHeight := m.height * 70 / 100

	if modalWidth < 40 {
		modalWidth = min(40, m.width-4)
	}

	if modalHeight < 10 {
		modalHeight = min(10, m.height-4)
	}

	m.floatingHelp.SetSize(modalWidth, modalHeight)
	m.floatingHelp.SetBindings(m.activeHelpBindings())

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		m.floatingHelp.View(),
	)
}

func (m *Model) renderStatusBar() string {
	m.statusBar.SetWidth(m.width)
	m.statusBar.SetBindings(m.activeHelpBindings())

	return m.statusBar.View()
}
