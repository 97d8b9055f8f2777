// Demo program to visually test the TabBar widget, including disabled
// tabs and wraparound navigation.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"switchboard/internal/ui"
)

type model struct {
	tabs    ui.TabBar
	lastTab string
	quit    bool
	resized bool
}

func initialModel() model {
	tabs := ui.NewTabBar([]ui.TabItem{
		{Title: "First", Body: "# First\n\nArrow keys move between tabs and wrap at both ends."},
		{Title: "Second", Body: "# Second\n\nSelection commits immediately on every move."},
		{Title: "Locked", Body: "You should never see this panel.", Disabled: true},
		{Title: "Last", Body: "# Last\n\n`Home` and `End` jump to the first and last enabled tab."},
	})
	tabs.Focus()
	return model{tabs: tabs}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.tabs.SetSize(msg.Width-4, msg.Height-6)
		m.resized = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quit = true
			return m, tea.Quit
		}

	case ui.TabChangedMsg:
		m.lastTab = msg.Title
	}

	var cmd tea.Cmd
	m.tabs, cmd = m.tabs.Update(msg)
	return m, cmd
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

func (m model) View() string {
	if m.quit || !m.resized {
		return ""
	}

	s := titleStyle.Render("TabBar Demo")
	if m.lastTab != "" {
		s += "  (switched to " + m.lastTab + ")"
	}
	s += "\n"
	s += m.tabs.View()
	s += helpStyle.Render("\n←/→ switch • Home/End jump • ↑/↓ scroll panel • q quit")

	return s
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
