package theme

import "github.com/charmbracelet/lipgloss"

// palette is a concrete Theme backed by plain color fields. Theme files
// declare one palette value and register it from init.
type palette struct {
	primary   lipgloss.AdaptiveColor
	secondary lipgloss.AdaptiveColor
	accent    lipgloss.AdaptiveColor

	err     lipgloss.AdaptiveColor
	warning lipgloss.AdaptiveColor
	success lipgloss.AdaptiveColor

	text      lipgloss.AdaptiveColor
	textMuted lipgloss.AdaptiveColor

	background          lipgloss.AdaptiveColor
	backgroundSecondary lipgloss.AdaptiveColor

	borderNormal  lipgloss.AdaptiveColor
	borderFocused lipgloss.AdaptiveColor
	borderDim     lipgloss.AdaptiveColor
}

func (p palette) Primary() lipgloss.AdaptiveColor   { return p.primary }
func (p palette) Secondary() lipgloss.AdaptiveColor { return p.secondary }
func (p palette) Accent() lipgloss.AdaptiveColor    { return p.accent }

func (p palette) Error() lipgloss.AdaptiveColor   { return p.err }
func (p palette) Warning() lipgloss.AdaptiveColor { return p.warning }
func (p palette) Success() lipgloss.AdaptiveColor { return p.success }

func (p palette) Text() lipgloss.AdaptiveColor      { return p.text }
func (p palette) TextMuted() lipgloss.AdaptiveColor { return p.textMuted }

func (p palette) Background() lipgloss.AdaptiveColor          { return p.background }
func (p palette) BackgroundSecondary() lipgloss.AdaptiveColor { return p.backgroundSecondary }

func (p palette) BorderNormal() lipgloss.AdaptiveColor  { return p.borderNormal }
func (p palette) BorderFocused() lipgloss.AdaptiveColor { return p.borderFocused }
func (p palette) BorderDim() lipgloss.AdaptiveColor     { return p.borderDim }

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}
