package ui

import (
	"strings"
	"testing"
)

func demoTabs() []TabItem {
	return []TabItem{
		{Title: "Alpha", Body: "alpha body"},
		{Title: "Beta", Body: "beta body"},
		{Title: "Gamma", Body: "gamma body", Disabled: true},
		{Title: "Delta", Body: "delta body"},
	}
}

func TestTabBarSelection(t *testing.T) {
	t.Run("StartsOnFirstTab", func(t *testing.T) {
		tabs := NewTabBar(demoTabs())
		if tabs.Selected() != 0 {
			t.Errorf("Selected() = %d, want 0", tabs.Selected())
		}
	})

	t.Run("RightMovesAndSkipsDisabled", func(t *testing.T) {
		tabs := NewTabBar(demoTabs())
		tabs.Focus()
		tabs, _ = tabs.Update(keyRight())
		if tabs.Selected() != 1 {
			t.Fatalf("Selected() = %d, want 1", tabs.Selected())
		}
		tabs, _ = tabs.Update(keyRight())
		if tabs.Selected() != 3 {
			t.Errorf("Selected() = %d, want 3 (skipping disabled)", tabs.Selected())
		}
	})

	t.Run("WrapsAtBothEnds", func(t *testing.T) {
		tabs := NewTabBar(demoTabs())
		tabs.Focus()
		tabs, _ = tabs.Update(keyLeft())
		if tabs.Selected() != 3 {
			t.Errorf("Left from first should wrap to 3, got %d", tabs.Selected())
		}
		tabs, _ = tabs.Update(keyRight())
		if tabs.Selected() != 0 {
			t.Errorf("Right from last should wrap to 0, got %d", tabs.Selected())
		}
	})

	t.Run("HomeEndJumpToEdges", func(t *testing.T) {
		tabs := NewTabBar(demoTabs())
		tabs.Focus()
		tabs, _ = tabs.Update(keyEnd())
		if tabs.Selected() != 3 {
			t.Errorf("End should land on 3, got %d", tabs.Selected())
		}
		tabs, _ = tabs.Update(keyHome())
		if tabs.Selected() != 0 {
			t.Errorf("Home should land on 0, got %d", tabs.Selected())
		}
	})

	t.Run("EmitsTabChangedMsg", func(t *testing.T) {
		tabs := NewTabBar(demoTabs())
		tabs.Focus()
		tabs, cmd := tabs.Update(keyRight())
		_ = tabs
		msgs := drainCmd(cmd)
		if len(msgs) != 1 {
			t.Fatalf("expected one message, got %d", len(msgs))
		}
		changed, ok := msgs[0].(TabChangedMsg)
		if !ok {
			t.Fatalf("expected TabChangedMsg, got %T", msgs[0])
		}
		if changed.Index != 1 || changed.Title != "Beta" {
			t.Errorf("TabChangedMsg = %+v, want index 1 Beta", changed)
		}
	})

	t.Run("IgnoresKeysWhenBlurred", func(t *testing.T) {
		tabs := NewTabBar(demoTabs())
		tabs, cmd := tabs.Update(keyRight())
		if tabs.Selected() != 0 || cmd != nil {
			t.Error("blurred tab bar should ignore navigation")
		}
	})

	t.Run("ClickSelectsEnabledOnly", func(t *testing.T) {
		tabs := NewTabBar(demoTabs())
		if tabs.ClickTab(2) {
			t.Error("clicking a disabled tab should be rejected")
		}
		if !tabs.ClickTab(1) {
			t.Error("clicking an enabled tab should succeed")
		}
		if tabs.Selected() != 1 {
			t.Errorf("Selected() = %d, want 1", tabs.Selected())
		}
	})
}

func TestTabBarView(t *testing.T) {
	tabs := NewTabBar(demoTabs())
	tabs.SetSize(60, 12)
	tabs.Focus()

	view := stripANSI(tabs.View())
	for _, title := range []string{"Alpha", "Beta", "Gamma", "Delta"} {
		if !strings.Contains(view, title) {
			t.Errorf("view missing tab title %q", title)
		}
	}
	if !strings.Contains(view, "alpha body") {
		t.Error("view should contain the selected panel body")
	}
	if strings.Contains(view, "beta body") {
		t.Error("view should hide non-selected panel bodies")
	}

	tabs, _ = tabs.Update(keyRight())
	view = stripANSI(tabs.View())
	if !strings.Contains(view, "beta body") {
		t.Error("after switching, view should show the new panel body")
	}
}
