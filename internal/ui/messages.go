package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TabChangedMsg is sent when the tab bar commits a new tab.
type TabChangedMsg struct {
	Index int
	Title string
}

// SelectCommittedMsg is sent when a select box commits an option.
type SelectCommittedMsg struct {
	ID    string // widget identifier, set by the host
	Index int
	Value string
	Label string
}

// SelectOpenedMsg and SelectClosedMsg report overlay transitions so the
// host can reroute keyboard focus.
type SelectOpenedMsg struct{ ID string }
type SelectClosedMsg struct{ ID string }

type copyToastTickMsg struct{}

func scheduleCopyToastTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return copyToastTickMsg{}
	})
}
