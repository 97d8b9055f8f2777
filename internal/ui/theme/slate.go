package theme

// Slate is the default theme: cool gray surfaces with a blue accent,
// tuned to stay readable on both dark and light terminals.
var slate = palette{
	primary:   adaptive("#3b82f6", "#60a5fa"),
	secondary: adaptive("#7c3aed", "#a78bfa"),
	accent:    adaptive("#0e7490", "#22d3ee"),

	err:     adaptive("#dc2626", "#f87171"),
	warning: adaptive("#b45309", "#fbbf24"),
	success: adaptive("#15803d", "#4ade80"),

	text:      adaptive("#1e293b", "#e2e8f0"),
	textMuted: adaptive("#64748b", "#94a3b8"),

	background:          adaptive("#f8fafc", "#0f172a"),
	backgroundSecondary: adaptive("#e2e8f0", "#1e293b"),

	borderNormal:  adaptive("#cbd5e1", "#334155"),
	borderFocused: adaptive("#3b82f6", "#60a5fa"),
	borderDim:     adaptive("#e2e8f0", "#1e293b"),
}

func init() {
	RegisterTheme("slate", slate)
}
