package theme

// GitHub Primer palette.
// https://primer.style/primitives/colors
var githubTheme = palette{
	primary:   adaptive("#0969da", "#58a6ff"),
	secondary: adaptive("#8250df", "#bc8cff"),
	accent:    adaptive("#1b7c83", "#39c5cf"),

	err:     adaptive("#cf222e", "#f85149"),
	warning: adaptive("#9a6700", "#e3b341"),
	success: adaptive("#1a7f37", "#3fb950"),

	text:      adaptive("#24292f", "#c9d1d9"),
	textMuted: adaptive("#57606a", "#8b949e"),

	background:          adaptive("#ffffff", "#0d1117"),
	backgroundSecondary: adaptive("#f6f8fa", "#21262d"),

	borderNormal:  adaptive("#d0d7de", "#30363d"),
	borderFocused: adaptive("#0969da", "#58a6ff"),
	borderDim:     adaptive("#d8dee4", "#21262d"),
}

func init() {
	RegisterTheme("github", githubTheme)
}
