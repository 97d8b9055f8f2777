// Demo program to visually test the SelectBox widget in both
// interaction modes side by side.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"switchboard/internal/control"
	"switchboard/internal/ui"
)

type model struct {
	deferred  ui.SelectBox
	immediate ui.SelectBox
	onSecond  bool
	lastValue string
	quit      bool
}

func initialModel() model {
	options := []ui.SelectOption{
		{Value: "red", Label: "Red"},
		{Value: "orange", Label: "Orange"},
		{Value: "yellow", Label: "Yellow", Disabled: true},
		{Value: "green", Label: "Green"},
		{Value: "blue", Label: "Blue"},
		{Value: "indigo", Label: "Indigo"},
		{Value: "violet", Label: "Violet"},
	}

	deferred := ui.NewSelectBox("deferred", options, control.ModeDeferred).
		WithPlaceholder("Deferred commit…").
		WithWidth(30).
		WithMaxVisible(5)
	deferred.Focus()

	immediate := ui.NewSelectBox("immediate", options, control.ModeImmediate).
		WithPlaceholder("Immediate commit…").
		WithWidth(30).
		WithMaxVisible(5)

	return model{
		deferred:  deferred,
		immediate: immediate,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case "tab", "shift+tab":
			var cmd tea.Cmd
			if m.onSecond {
				m.immediate, cmd = m.immediate.Update(msg)
				m.immediate.Blur()
				m.deferred.Focus()
			} else {
				m.deferred, cmd = m.deferred.Update(msg)
				m.deferred.Blur()
				m.immediate.Focus()
			}
			m.onSecond = !m.onSecond
			return m, cmd
		}

	case ui.SelectCommittedMsg:
		m.lastValue = fmt.Sprintf("%s = %s", msg.ID, msg.Value)
	}

	var cmd tea.Cmd
	if m.onSecond {
		m.immediate, cmd = m.immediate.Update(msg)
	} else {
		m.deferred, cmd = m.deferred.Update(msg)
	}
	return m, cmd
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	committedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)
)

func (m model) View() string {
	if m.quit {
		return ""
	}

	s := titleStyle.Render("SelectBox Demo")
	s += "\n\n"
	s += labelStyle.Render("Deferred (arrows browse, Enter commits):") + "\n"
	s += m.deferred.View()
	s += "\n\n"
	s += labelStyle.Render("Immediate (every arrow press commits):") + "\n"
	s += m.immediate.View()
	s += "\n\n"

	if m.lastValue != "" {
		s += "Committed: " + committedStyle.Render(m.lastValue) + "\n"
	}

	s += helpStyle.Render("\n↓ open • type to jump • Enter commit • Esc close • Tab switch • Ctrl+C quit")

	return s
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
