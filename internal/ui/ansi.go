package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"switchboard/internal/ui/theme"
)

func stripANSI(s string) string {
	return ansi.Strip(s)
}

// fillBackground replaces ANSI reset codes with sequences that preserve the
// theme background, so whitespace between styled segments keeps the correct
// background color.
func fillBackground(s string) string {
	bgSeq := theme.BackgroundANSI()

	// Full reset keeps resetting, but re-asserts the background after it.
	s = strings.ReplaceAll(s, "\x1b[0m", "\x1b[0m"+bgSeq)

	// Background-only reset becomes the theme background.
	s = strings.ReplaceAll(s, "\x1b[49m", bgSeq)

	return s
}
