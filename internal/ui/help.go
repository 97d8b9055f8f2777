package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// helpSection represents a group of keybindings for display.
type helpSection struct {
	title string
	rows  [][]string // Each row: [keys, description]
}

// getHelpSections returns the help content organized into sections.
// Layout is explicit; text is derived from binding.Help() so the overlay
// and the bindings can't drift apart.
func getHelpSections(keys KeyMap) []helpSection {
	return []helpSection{
		{
			title: "TABS",
			rows: [][]string{
				{keys.Left.Help().Key, keys.Left.Help().Desc},
				{keys.Home.Help().Key, "First tab"},
				{keys.End.Help().Key, "Last tab"},
				{keys.Up.Help().Key, "Scroll panel"},
			},
		},
		{
			title: "SELECT",
			rows: [][]string{
				{keys.Up.Help().Key, keys.Up.Help().Desc},
				{keys.Enter.Help().Key, keys.Enter.Help().Desc},
				{keys.Escape.Help().Key, "Close dropdown"},
				{"a-z", "Jump to option"},
			},
		},
		{
			title: "GENERAL",
			rows: [][]string{
				{keys.Tab.Help().Key, keys.Tab.Help().Desc},
				{keys.Theme.Help().Key, keys.Theme.Help().Desc},
				{keys.Copy.Help().Key, keys.Copy.Help().Desc},
				{keys.Quit.Help().Key, keys.Quit.Help().Desc},
			},
		},
	}
}

// renderHelpOverlay creates the centered help modal content.
func renderHelpOverlay(keys KeyMap) string {
	sections := getHelpSections(keys)

	leftCol := renderHelpSectionTable(sections[0])
	rightCol := lipgloss.JoinVertical(lipgloss.Left,
		renderHelpSectionTable(sections[1]),
		"",
		renderHelpSectionTable(sections[2]),
	)
	columns := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "    ", rightCol)

	title := styleHelpTitle().Render("✦ SWITCHBOARD HELP ✦")
	dividerWidth := lipgloss.Width(columns)
	if dividerWidth < 40 {
		dividerWidth = 40
	}
	divider := styleHelpDivider().Render(strings.Repeat("─", dividerWidth))
	footer := styleHelpFooter().Render("Press ? or Esc to close")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		divider,
		"",
		columns,
		"",
		footer,
	)

	return styleHelpOverlay().Render(content)
}

// renderHelpSectionTable renders a single help section using lipgloss/table.
func renderHelpSectionTable(section helpSection) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return styleHelpKey().Width(14)
			}
			return styleHelpDesc()
		}).
		Rows(section.rows...)

	header := styleHelpSectionHeader().Render(section.title)
	underline := styleHelpDivider().Render(strings.Repeat("─", len(section.title)))

	// Hidden border adds an empty top row
	tableStr := strings.TrimPrefix(t.String(), "\n")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		underline,
		tableStr,
	)
}
