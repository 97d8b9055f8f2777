package theme

// Catppuccin palette: Latte for light terminals, Mocha for dark.
// https://catppuccin.com/palette
var catppuccin = palette{
	primary:   adaptive("#1e66f5", "#89b4fa"),
	secondary: adaptive("#8839ef", "#cba6f7"),
	accent:    adaptive("#179299", "#94e2d5"),

	err:     adaptive("#d20f39", "#f38ba8"),
	warning: adaptive("#df8e1d", "#f9e2af"),
	success: adaptive("#40a02b", "#a6e3a1"),

	text:      adaptive("#4c4f69", "#cdd6f4"),
	textMuted: adaptive("#8c8fa1", "#7f849c"),

	background:          adaptive("#eff1f5", "#1e1e2e"),
	backgroundSecondary: adaptive("#e6e9ef", "#313244"),

	borderNormal:  adaptive("#bcc0cc", "#45475a"),
	borderFocused: adaptive("#1e66f5", "#89b4fa"),
	borderDim:     adaptive("#ccd0da", "#313244"),
}

func init() {
	RegisterTheme("catppuccin", catppuccin)
}
