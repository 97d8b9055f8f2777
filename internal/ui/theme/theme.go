// Package theme provides the semantic color system for the switchboard
// widgets. Every widget style pulls its colors from the active theme, so
// swapping themes restyles the whole surface at once.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines the semantic colors used by the widget styles. All
// methods return AdaptiveColor so light and dark terminals both work.
type Theme interface {
	// Base colors
	Primary() lipgloss.AdaptiveColor   // Main accent (selected triggers, focused borders)
	Secondary() lipgloss.AdaptiveColor // Secondary accent (highlights, hints)
	Accent() lipgloss.AdaptiveColor    // Committed values, titles

	// Status colors
	Error() lipgloss.AdaptiveColor
	Warning() lipgloss.AdaptiveColor
	Success() lipgloss.AdaptiveColor

	// Text colors
	Text() lipgloss.AdaptiveColor
	TextMuted() lipgloss.AdaptiveColor

	// Background colors
	Background() lipgloss.AdaptiveColor          // Main surface
	BackgroundSecondary() lipgloss.AdaptiveColor // Overlays, dropdown panels

	// Border colors
	BorderNormal() lipgloss.AdaptiveColor
	BorderFocused() lipgloss.AdaptiveColor
	BorderDim() lipgloss.AdaptiveColor
}

// BackgroundANSI returns the escape sequence that paints the active
// theme's main background, for re-asserting the background after style
// resets inside composed frames.
func BackgroundANSI() string {
	return backgroundSequence(Current().Background())
}

// BackgroundSecondaryANSI is BackgroundANSI for the overlay background.
func BackgroundSecondaryANSI() string {
	return backgroundSequence(Current().BackgroundSecondary())
}

func backgroundSequence(c lipgloss.AdaptiveColor) string {
	hex := c.Dark
	if !lipgloss.HasDarkBackground() {
		hex = c.Light
	}
	col := termenv.TrueColor.Color(hex)
	if col == nil {
		return ""
	}
	return termenv.CSI + col.Sequence(true) + "m"
}
