package theme

// Dracula palette. The official spec is dark-only, so the light variants
// lean on darker shades of the same hues.
// https://draculatheme.com/contribute
var dracula = palette{
	primary:   adaptive("#6f42c1", "#bd93f9"),
	secondary: adaptive("#d61f69", "#ff79c6"),
	accent:    adaptive("#036a96", "#8be9fd"),

	err:     adaptive("#cc342b", "#ff5555"),
	warning: adaptive("#b08800", "#f1fa8c"),
	success: adaptive("#1a8870", "#50fa7b"),

	text:      adaptive("#282a36", "#f8f8f2"),
	textMuted: adaptive("#6272a4", "#6272a4"),

	background:          adaptive("#f8f8f2", "#282a36"),
	backgroundSecondary: adaptive("#e8e8e2", "#44475a"),

	borderNormal:  adaptive("#c5c8d6", "#44475a"),
	borderFocused: adaptive("#6f42c1", "#bd93f9"),
	borderDim:     adaptive("#dcdde4", "#343746"),
}

func init() {
	RegisterTheme("dracula", dracula)
}
