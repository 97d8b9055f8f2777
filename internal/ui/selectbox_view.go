package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the invoker with the dropdown stacked inline beneath it.
// Hosts that composite the dropdown as an overlay layer instead should use
// ViewInvoker and ViewDropdown separately.
func (s SelectBox) View() string {
	var b strings.Builder
	b.WriteString(s.ViewInvoker())
	if s.IsOpen() {
		b.WriteString("\n")
		b.WriteString(s.ViewDropdown())
	}
	return b.String()
}

// ViewInvoker renders the bordered invoker: committed label or placeholder
// plus the dropdown marker.
func (s SelectBox) ViewInvoker() string {
	textWidth := s.Width - 6 // border, padding, marker
	if textWidth < 4 {
		textWidth = 4
	}

	var text string
	if label := s.Label(); label != "" {
		text = styleSelectValue().Render(truncateLabel(label, textWidth))
	} else {
		placeholder := s.Placeholder
		if placeholder == "" {
			placeholder = "Select…"
		}
		text = styleSelectPlaceholder().Render(truncateLabel(placeholder, textWidth))
	}

	marker := "▾"
	if s.IsOpen() {
		marker = "▴"
	}
	gap := textWidth - lipgloss.Width(text)
	if gap < 1 {
		gap = 1
	}
	line := text + strings.Repeat(" ", gap) + styleSelectHint().Render(marker)

	boxStyle := styleSelectInvoker()
	switch {
	case s.Disabled():
		boxStyle = styleSelectInvokerDisabled()
	case s.focused:
		boxStyle = styleSelectInvokerFocused()
	}
	return boxStyle.Width(s.Width - 2).Render(line)
}

// ViewDropdown renders the open option panel with its scroll window and
// overflow indicators. Returns "" while closed.
func (s SelectBox) ViewDropdown() string {
	if !s.IsOpen() {
		return ""
	}

	var b strings.Builder

	if len(s.options) == 0 {
		b.WriteString(styleSelectEmpty().Render("  No options"))
		return b.String()
	}

	if s.scrollOffset > 0 {
		b.WriteString(styleSelectHint().Render("  ▲ more above"))
		b.WriteString("\n")
	}

	end := s.scrollOffset + s.MaxVisible
	if end > len(s.options) {
		end = len(s.options)
	}

	active := s.ctrl.Active()
	checked := s.ctrl.Checked()
	labelWidth := s.Width - 8
	if labelWidth < 4 {
		labelWidth = 4
	}
	for i := s.scrollOffset; i < end; i++ {
		label := truncateLabel(s.options[i].Label, labelWidth)

		mark := " "
		if i == checked {
			mark = styleSelectCheckmark().Render("✓")
		}

		switch {
		case i == active:
			b.WriteString(styleSelectOptionActive().Render("▸ "+label) + " " + mark)
		case s.options[i].Disabled:
			b.WriteString(styleSelectOptionDisabled().Render("  "+label) + " " + mark)
		default:
			b.WriteString(styleSelectOption().Render("  "+label) + " " + mark)
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if end < len(s.options) {
		b.WriteString("\n")
		b.WriteString(styleSelectHint().Render("  ▼ more below"))
	}

	return b.String()
}
