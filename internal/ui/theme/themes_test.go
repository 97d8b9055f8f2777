package theme

import (
	"strings"
	"testing"
)

func TestAllThemesRegistered(t *testing.T) {
	want := []string{"catppuccin", "dracula", "github", "slate"}
	got := Available()
	if len(got) != len(want) {
		t.Fatalf("Available() = %v, want %v", got, want)
	}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("Available()[%d] = %q, want %q", i, got[i], name)
		}
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme("slate") })

	if !SetTheme("dracula") {
		t.Fatal("SetTheme(dracula) failed for a registered theme")
	}
	if CurrentName() != "dracula" {
		t.Errorf("CurrentName() = %q, want dracula", CurrentName())
	}
	if SetTheme("no-such-theme") {
		t.Error("SetTheme should fail for an unregistered name")
	}
	if CurrentName() != "dracula" {
		t.Error("failed SetTheme must not change the active theme")
	}
}

func TestCycleTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme("slate") })

	SetTheme("slate")
	seen := map[string]bool{"slate": true}
	for i := 0; i < len(Available())-1; i++ {
		seen[CycleTheme()] = true
	}
	if len(seen) != len(Available()) {
		t.Errorf("cycling visited %d themes, want %d", len(seen), len(Available()))
	}
	if next := CycleTheme(); next != "slate" {
		t.Errorf("full cycle should return to slate, got %q", next)
	}
}

func TestThemeColorsNonEmpty(t *testing.T) {
	for _, name := range Available() {
		name := name
		t.Run(name, func(t *testing.T) {
			if !SetTheme(name) {
				t.Fatalf("SetTheme(%q) failed", name)
			}
			th := Current()
			colors := map[string]string{
				"Primary":             th.Primary().Dark,
				"Secondary":           th.Secondary().Dark,
				"Accent":              th.Accent().Dark,
				"Error":               th.Error().Dark,
				"Warning":             th.Warning().Dark,
				"Success":             th.Success().Dark,
				"Text":                th.Text().Dark,
				"TextMuted":           th.TextMuted().Dark,
				"Background":          th.Background().Dark,
				"BackgroundSecondary": th.BackgroundSecondary().Dark,
				"BorderNormal":        th.BorderNormal().Dark,
				"BorderFocused":       th.BorderFocused().Dark,
				"BorderDim":           th.BorderDim().Dark,
			}
			for role, hex := range colors {
				if !strings.HasPrefix(hex, "#") || len(hex) != 7 {
					t.Errorf("%s dark color = %q, want #rrggbb", role, hex)
				}
			}
		})
	}
	SetTheme("slate")
}

func TestBackgroundANSI(t *testing.T) {
	SetTheme("slate")
	seq := BackgroundANSI()
	if seq == "" {
		t.Fatal("BackgroundANSI() returned empty string")
	}
	if !strings.HasPrefix(seq, "\x1b[") || !strings.HasSuffix(seq, "m") {
		t.Errorf("BackgroundANSI() = %q, expected an SGR escape sequence", seq)
	}
	if sec := BackgroundSecondaryANSI(); sec == "" || sec == seq {
		t.Errorf("BackgroundSecondaryANSI() = %q, want a distinct sequence", sec)
	}
}
