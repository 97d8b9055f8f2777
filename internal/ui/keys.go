package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"switchboard/internal/control"
)

// KeyMap defines all keyboard shortcuts for the widgets and the demo app.
// Each binding includes the actual keys and help text for display.
// Note: Related bindings (Up/Down, Left/Right) share identical help text
// since they appear as a single row in the help overlay.
type KeyMap struct {
	// Widget navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Home  key.Binding
	End   key.Binding
	Enter key.Binding
	Space key.Binding

	// App actions
	Tab      key.Binding
	ShiftTab key.Binding
	Escape   key.Binding
	Help     key.Binding
	Theme    key.Binding
	Copy     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Up/Down share help text (displayed as single row)
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓  j/k", "Move through options"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↑/↓  j/k", "Move through options"),
		),
		// Left/Right share help text (displayed as single row)
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→  h/l", "Switch tab"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("←/→  h/l", "Switch tab"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("Home", "First entry"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("End", "Last entry"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("⏎ (Enter)", "Open/commit"),
		),
		Space: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("Space", "Open/commit"),
		),

		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("⇥ (Tab)", "Next control"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("⇧⇥", "Previous control"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Close/cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Help"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("Ctrl+T", "Cycle theme"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("Ctrl+Y", "Copy selection"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// ControlKey translates a key message into the neutral key the selection
// controllers understand. Unmapped keys report false so callers can route
// them elsewhere (typeahead, app shortcuts).
func (k KeyMap) ControlKey(msg tea.KeyMsg) (control.Key, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return control.KeyUp, true
	case key.Matches(msg, k.Down):
		return control.KeyDown, true
	case key.Matches(msg, k.Left):
		return control.KeyLeft, true
	case key.Matches(msg, k.Right):
		return control.KeyRight, true
	case key.Matches(msg, k.Home):
		return control.KeyHome, true
	case key.Matches(msg, k.End):
		return control.KeyEnd, true
	case key.Matches(msg, k.Enter):
		return control.KeyEnter, true
	case key.Matches(msg, k.Space):
		return control.KeySpace, true
	case key.Matches(msg, k.Escape):
		return control.KeyEscape, true
	case key.Matches(msg, k.Tab):
		return control.KeyTab, true
	}
	return control.KeyNone, false
}
