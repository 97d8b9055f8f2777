package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"switchboard/internal/control"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app := NewApp(Config{Version: "test", Mode: control.ModeDeferred})
	model, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return model.(*App)
}

func pressApp(m *App, msg tea.KeyMsg) (*App, tea.Cmd) {
	model, cmd := m.Update(msg)
	return model.(*App), cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestAppFocusCycle(t *testing.T) {
	m := newTestApp(t)
	if m.focus != FocusTabs {
		t.Fatalf("initial focus = %v, want FocusTabs", m.focus)
	}

	m, _ = pressApp(m, keyTab())
	if m.focus != FocusThemeSelect || !m.themeSelect.Focused() || m.tabs.Focused() {
		t.Error("Tab should move focus to the theme select")
	}

	m, _ = pressApp(m, keyTab())
	if m.focus != FocusStyleSelect {
		t.Error("Tab should move focus to the style select")
	}

	m, _ = pressApp(m, keyTab())
	if m.focus != FocusTabs || !m.tabs.Focused() {
		t.Error("Tab should wrap back to the tabs")
	}

	m, _ = pressApp(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != FocusStyleSelect {
		t.Error("Shift+Tab should cycle in reverse")
	}
}

func TestAppTabClosesOpenDropdownThenMovesFocus(t *testing.T) {
	m := newTestApp(t)
	m, _ = pressApp(m, keyTab())  // focus theme select
	m, _ = pressApp(m, keyDown()) // open its dropdown
	if !m.themeSelect.IsOpen() {
		t.Fatal("setup: dropdown should be open")
	}

	m, _ = pressApp(m, keyTab())
	if m.themeSelect.IsOpen() {
		t.Error("Tab should close the open dropdown")
	}
	if m.focus != FocusStyleSelect {
		t.Error("focus should still advance after closing the dropdown")
	}
}

func TestAppHelpToggle(t *testing.T) {
	m := newTestApp(t)

	m, _ = pressApp(m, keyRune('?'))
	if !m.showHelp {
		t.Fatal("? should open the help overlay from the tabs")
	}

	m, _ = pressApp(m, keyRight())
	if m.tabs.Selected() != 0 {
		t.Error("keys must not reach the tabs while help is open")
	}

	m, _ = pressApp(m, keyEsc())
	if m.showHelp {
		t.Error("Esc should close the help overlay")
	}

	// With a select focused, ? belongs to typeahead, not help.
	m, _ = pressApp(m, keyTab())
	m, _ = pressApp(m, keyRune('?'))
	if m.showHelp {
		t.Error("? should not open help while a select is focused")
	}
}

func TestAppQuitKeys(t *testing.T) {
	m := newTestApp(t)

	_, cmd := pressApp(m, keyRune('q'))
	if !isQuit(cmd) {
		t.Error("q should quit while the tabs are focused")
	}

	m, _ = pressApp(m, keyTab())
	_, cmd = pressApp(m, keyRune('q'))
	if isQuit(cmd) {
		t.Error("q should feed typeahead while a select is focused")
	}

	_, cmd = pressApp(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should always quit")
	}
}

func TestAppMarkdownCommitSwitchesRenderer(t *testing.T) {
	m := newTestApp(t)

	model, _ := m.Update(SelectCommittedMsg{ID: "markdown", Index: 2, Value: "notty", Label: "notty"})
	m = model.(*App)
	if m.tabs.mdFormat != "notty" {
		t.Errorf("tab renderer format = %q, want notty", m.tabs.mdFormat)
	}
}

func TestAppViewCompositesDropdown(t *testing.T) {
	m := newTestApp(t)

	base := stripANSI(m.View())
	if !strings.Contains(base, "SWITCHBOARD") {
		t.Error("view should include the header")
	}
	if strings.Contains(base, "▸") {
		t.Error("no dropdown marker expected while closed")
	}

	m, _ = pressApp(m, keyTab())
	m, _ = pressApp(m, keyDown())
	open := stripANSI(m.View())
	if !strings.Contains(open, "▸") {
		t.Error("open dropdown should composite its highlight marker into the frame")
	}
}
