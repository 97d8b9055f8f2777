package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// footerHint defines a key hint for the footer bar.
// These are intentionally shorter than the KeyMap help text.
type footerHint struct {
	key  string
	desc string
}

// Global footer hints (always shown)
var globalFooterHints = []footerHint{
	{"⇥", "Focus"},
	{"^T", "Theme"},
	{"?", "Help"},
	{"q", "Quit"},
}

// Context-specific footer hints
var tabsFooterHints = []footerHint{
	{"←→", "Switch tab"},
	{"↑↓", "Scroll"},
}

var selectFooterHints = []footerHint{
	{"↑↓", "Navigate"},
	{"⏎", "Open/commit"},
	{"Esc", "Close"},
}

// renderFooter renders the footer bar with pill-style key hints plus the
// active theme name on the right.
func renderFooter(contextHints []footerHint, themeName string, width int) string {
	hints := append(append([]footerHint{}, contextHints...), globalFooterHints...)

	right := styleFooterMuted().Render("Theme: " + themeName)
	rightWidth := lipgloss.Width(right)
	availableWidth := width - rightWidth - 4

	hints = trimHintsToFit(hints, availableWidth)

	var parts []string
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}

	left := strings.Join(parts, "  ")
	leftWidth := lipgloss.Width(left)

	spacing := width - leftWidth - rightWidth
	if spacing < 2 {
		spacing = 2
	}

	return left + strings.Repeat(" ", spacing) + right
}

// keyPill renders a single key hint as a pill with description.
func keyPill(key, desc string) string {
	return styleKeyPill().Render(" "+key+" ") + " " + styleKeyDesc().Render(desc)
}

// trimHintsToFit progressively removes hints to fit available width.
// Context-specific hints go first, then globals from the end.
func trimHintsToFit(hints []footerHint, availableWidth int) []footerHint {
	globalCount := len(globalFooterHints)

	for len(hints) > 0 {
		if renderHintsWidth(hints) <= availableWidth {
			break
		}
		if len(hints) > globalCount {
			hints = hints[1:]
		} else {
			hints = hints[:len(hints)-1]
		}
	}
	return hints
}

func renderHintsWidth(hints []footerHint) int {
	var parts []string
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}
	return lipgloss.Width(strings.Join(parts, "  "))
}
