package ui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"switchboard/internal/config"
	"switchboard/internal/control"
	"switchboard/internal/debug"
	"switchboard/internal/ui/theme"
)

const (
	minAppWidth      = 40
	minAppHeight     = 12
	copyToastTimeout = 1500 * time.Millisecond
)

// FocusArea identifies which control owns the keyboard.
type FocusArea int

const (
	FocusTabs FocusArea = iota
	FocusThemeSelect
	FocusStyleSelect
)

// Config configures the demo application.
type Config struct {
	Version        string
	Mode           control.InteractionMode
	MaxVisible     int
	CopyOnCommit   bool
	MarkdownFormat string
	Tabs           []TabItem
}

// App is the Bubble Tea model for the switchboard showcase: a tab bar over
// markdown panels plus two select boxes driving theme and panel rendering.
type App struct {
	width  int
	height int
	ready  bool

	keys        KeyMap
	tabs        TabBar
	themeSelect SelectBox
	styleSelect SelectBox
	focus       FocusArea

	showHelp bool

	toastText  string
	toastStart time.Time

	copyOnCommit bool
	version      string
}

// NewApp creates the application model from configuration.
func NewApp(cfg Config) *App {
	if len(cfg.Tabs) == 0 {
		cfg.Tabs = defaultTabs()
	}
	if cfg.MaxVisible <= 0 {
		cfg.MaxVisible = config.DefaultMaxVisible
	}

	themeOptions := make([]SelectOption, 0, len(theme.Available()))
	for _, name := range theme.Available() {
		themeOptions = append(themeOptions, SelectOption{Value: name, Label: name})
	}
	themeSelect := NewSelectBox("theme", themeOptions, cfg.Mode).
		WithPlaceholder("Pick a theme…").
		WithMaxVisible(cfg.MaxVisible)
	themeSelect.SetValue(theme.CurrentName())

	styleOptions := []SelectOption{
		{Value: "dark", Label: "dark"},
		{Value: "light", Label: "light"},
		{Value: "notty", Label: "notty"},
		{Value: "plain", Label: "plain"},
	}
	styleSelect := NewSelectBox("markdown", styleOptions, cfg.Mode).
		WithPlaceholder("Markdown style…").
		WithMaxVisible(cfg.MaxVisible)
	if cfg.MarkdownFormat != "" {
		styleSelect.SetValue(cfg.MarkdownFormat)
	}

	tabs := NewTabBar(cfg.Tabs)
	if cfg.MarkdownFormat != "" {
		tabs.SetMarkdownFormat(cfg.MarkdownFormat)
	}
	tabs.Focus()

	return &App{
		keys:         DefaultKeyMap(),
		tabs:         tabs,
		themeSelect:  themeSelect,
		styleSelect:  styleSelect,
		focus:        FocusTabs,
		copyOnCommit: cfg.CopyOnCommit,
		version:      cfg.Version,
	}
}

// Init implements tea.Model.
func (m *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SelectCommittedMsg:
		return m, m.handleCommit(msg)

	case SelectOpenedMsg, SelectClosedMsg:
		return m, nil

	case TabChangedMsg:
		debug.Logf("tab changed: %d (%s)", msg.Index, msg.Title)
		return m, nil

	case copyToastTickMsg:
		if m.toastText == "" {
			return m, nil
		}
		if time.Since(m.toastStart) >= copyToastTimeout {
			m.toastText = ""
			return m, nil
		}
		return m, scheduleCopyToastTick()
	}
	return m, nil
}

func (m *App) resize(width, height int) {
	if width < minAppWidth {
		width = minAppWidth
	}
	if height < minAppHeight {
		height = minAppHeight
	}
	m.width = width
	m.height = height

	tabsHeight := height - 9 // header, spacing, selects row, footer
	if tabsHeight < 5 {
		tabsHeight = 5
	}
	m.tabs.SetSize(width-2, tabsHeight)

	selectWidth := (width - 8) / 2
	if selectWidth > 36 {
		selectWidth = 36
	}
	if selectWidth < 16 {
		selectWidth = 16
	}
	m.themeSelect = m.themeSelect.WithWidth(selectWidth)
	m.styleSelect = m.styleSelect.WithWidth(selectWidth)

	m.ready = true
}

func (m *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Escape) ||
			key.Matches(msg, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	// Ctrl+C always quits; plain q only outside the select boxes, where
	// letters belong to typeahead.
	if key.Matches(msg, m.keys.Quit) {
		if msg.String() == "ctrl+c" || m.focus == FocusTabs {
			return m, tea.Quit
		}
	}

	switch {
	case key.Matches(msg, m.keys.Theme):
		name := theme.CycleTheme()
		m.themeSelect.SetValue(name)
		return m, m.saveTheme(name)

	case key.Matches(msg, m.keys.Copy):
		return m, m.copySelection()

	case key.Matches(msg, m.keys.Help):
		if m.focus == FocusTabs {
			m.showHelp = true
			return m, nil
		}

	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
		// An open dropdown sees Tab first (it closes, uncommitted), then
		// focus moves on regardless.
		var cmd tea.Cmd
		switch m.focus {
		case FocusThemeSelect:
			m.themeSelect, cmd = m.themeSelect.Update(msg)
		case FocusStyleSelect:
			m.styleSelect, cmd = m.styleSelect.Update(msg)
		}
		m.cycleFocus(key.Matches(msg, m.keys.ShiftTab))
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.focus {
	case FocusTabs:
		m.tabs, cmd = m.tabs.Update(msg)
	case FocusThemeSelect:
		m.themeSelect, cmd = m.themeSelect.Update(msg)
	case FocusStyleSelect:
		m.styleSelect, cmd = m.styleSelect.Update(msg)
	}
	return m, cmd
}

func (m *App) cycleFocus(reverse bool) {
	order := []FocusArea{FocusTabs, FocusThemeSelect, FocusStyleSelect}
	current := 0
	for i, f := range order {
		if f == m.focus {
			current = i
			break
		}
	}
	next := (current + 1) % len(order)
	if reverse {
		next = (current + len(order) - 1) % len(order)
	}
	m.setFocus(order[next])
}

func (m *App) setFocus(f FocusArea) {
	m.tabs.Blur()
	m.themeSelect.Blur()
	m.styleSelect.Blur()
	m.focus = f
	switch f {
	case FocusTabs:
		m.tabs.Focus()
	case FocusThemeSelect:
		m.themeSelect.Focus()
	case FocusStyleSelect:
		m.styleSelect.Focus()
	}
}

func (m *App) handleCommit(msg SelectCommittedMsg) tea.Cmd {
	var cmds []tea.Cmd

	switch msg.ID {
	case "theme":
		if theme.SetTheme(msg.Value) {
			cmds = append(cmds, m.saveTheme(msg.Value))
		}
	case "markdown":
		m.tabs.SetMarkdownFormat(msg.Value)
	}

	if m.copyOnCommit {
		if err := clipboard.WriteAll(msg.Value); err != nil {
			debug.Logf("clipboard write failed: %v", err)
		} else {
			cmds = append(cmds, m.showToast("Copied: "+msg.Value))
		}
	}
	return tea.Batch(cmds...)
}

func (m *App) saveTheme(name string) tea.Cmd {
	if err := config.SaveTheme(name); err != nil {
		debug.Logf("saving theme: %v", err)
	}
	return m.showToast("Theme: " + name)
}

// copySelection copies the focused select box's committed value.
func (m *App) copySelection() tea.Cmd {
	var value string
	switch m.focus {
	case FocusThemeSelect:
		value = m.themeSelect.Value()
	case FocusStyleSelect:
		value = m.styleSelect.Value()
	default:
		return nil
	}
	if value == "" {
		return nil
	}
	if err := clipboard.WriteAll(value); err != nil {
		debug.Logf("clipboard write failed: %v", err)
		return nil
	}
	return m.showToast("Copied: " + value)
}

func (m *App) showToast(text string) tea.Cmd {
	m.toastText = text
	m.toastStart = time.Now()
	return scheduleCopyToastTick()
}

// View implements tea.Model. The base frame is drawn first; the open
// dropdown, help modal, and toast are composited on top as layers.
func (m *App) View() string {
	if !m.ready {
		return "Loading…"
	}

	header := styleAppHeader().Render("SWITCHBOARD") +
		" " + styleHeaderHint().Render(m.version)

	tabsView := m.tabs.View()
	tabsHeight := lipgloss.Height(tabsView)

	themeLabel := styleHeaderHint().Render("Theme")
	styleLabel := styleHeaderHint().Render("Markdown")
	labelRow := "  " + padCell(themeLabel, m.themeSelect.Width+4) + styleLabel
	invokerRow := lipgloss.JoinHorizontal(lipgloss.Top,
		"  ",
		m.themeSelect.ViewInvoker(),
		"    ",
		m.styleSelect.ViewInvoker(),
	)

	footer := renderFooter(m.contextHints(), theme.CurrentName(), m.width)

	base := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		tabsView,
		"",
		labelRow,
		invokerRow,
		"",
		footer,
	)
	base = fillBackground(base)

	var layers []Layer

	if dropdown, x := m.openDropdown(); dropdown != "" {
		y := 2 + tabsHeight + 2 + 3 // header block, tabs, labels, invoker box
		layers = append(layers, newAnchoredLayer(dropdown, m.width, m.height, x, y))
	}
	if m.showHelp {
		layers = append(layers, newCenteredLayer(renderHelpOverlay(m.keys), m.width, m.height, 1, 1))
	}
	if m.toastText != "" {
		layers = append(layers, newToastLayer(styleCopyToast().Render(m.toastText), m.width, m.height, 2))
	}

	if len(layers) == 0 {
		return base
	}
	return CompositeLayers(base, m.width, m.height, layers...)
}

// openDropdown returns the rendered open dropdown panel and its x anchor,
// or "" when both selects are closed.
func (m *App) openDropdown() (string, int) {
	if m.themeSelect.IsOpen() {
		return m.themeSelect.ViewDropdown(), 2
	}
	if m.styleSelect.IsOpen() {
		return m.styleSelect.ViewDropdown(), 2 + m.themeSelect.Width + 4
	}
	return "", 0
}

func (m *App) contextHints() []footerHint {
	if m.focus == FocusTabs {
		return tabsFooterHints
	}
	return selectFooterHints
}

func padCell(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", gap, "")
}

func defaultTabs() []TabItem {
	return []TabItem{
		{Title: "Overview", Body: overviewBody},
		{Title: "Tabs", Body: tabsBody},
		{Title: "Select", Body: selectBody},
		{Title: "About", Body: aboutBody},
	}
}

const overviewBody = `# Switchboard

Accessible selection controls for terminal interfaces.

Two widgets share one pipeline of registry, index state, keyboard
policy, and attribute synchronizer:

- **Tab bar** with wraparound arrow navigation
- **Select box** with deferred or immediate commit semantics

Press ` + "`Tab`" + ` to move focus into the selects below, ` + "`?`" + ` for help.`

const tabsBody = `# Tab bar

- Switch tabs with the arrow keys; navigation wraps at both ends and
  skips disabled tabs.
- ` + "`Home`" + ` and ` + "`End`" + ` jump to the first and last enabled tab.
- Selection commits immediately: the panel below always matches the
  highlighted trigger.`

const selectBody = `# Select box

- On macOS builds, arrows browse the open dropdown without committing;
  ` + "`Enter`" + ` commits and closes. Everywhere else each arrow press
  commits immediately.
- Typing jumps to the first option whose label matches the prefix.
- ` + "`Esc`" + ` closes the dropdown and discards the pending highlight.`

const aboutBody = `# About

Configuration lives in ` + "`.switchboard/config.yaml`" + ` (project or
home directory). Set ` + "`SWB_DEBUG=1`" + ` to write a debug log.`
