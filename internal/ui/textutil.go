package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// truncateLabel shortens a label to fit within width cells, appending an
// ellipsis when anything was cut.
func truncateLabel(label string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(label) <= width {
		return label
	}
	return truncate.StringWithTail(label, uint(width), "…")
}

func maxLineWidth(lines []string) int {
	max := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > max {
			max = w
		}
	}
	return max
}
