package control

import "testing"

func TestTabPolicy(t *testing.T) {
	cases := []struct {
		name string
		key  Key
		want Action
		ok   bool
	}{
		{"RightMovesNext", KeyRight, Action{Kind: ActionMove, Delta: 1, Commit: true}, true},
		{"DownMovesNext", KeyDown, Action{Kind: ActionMove, Delta: 1, Commit: true}, true},
		{"LeftMovesPrev", KeyLeft, Action{Kind: ActionMove, Delta: -1, Commit: true}, true},
		{"UpMovesPrev", KeyUp, Action{Kind: ActionMove, Delta: -1, Commit: true}, true},
		{"HomeJumpsFirst", KeyHome, Action{Kind: ActionEdge, Commit: true}, true},
		{"EndJumpsLast", KeyEnd, Action{Kind: ActionEdge, ToEnd: true, Commit: true}, true},
		{"EnterUnrecognized", KeyEnter, Action{}, false},
		{"EscapeUnrecognized", KeyEscape, Action{}, false},
		{"TabUnrecognized", KeyTab, Action{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := TabPolicy(tc.key)
			if ok != tc.ok || got != tc.want {
				t.Errorf("TabPolicy(%v) = %+v, %v; want %+v, %v", tc.key, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestListboxPolicy(t *testing.T) {
	cases := []struct {
		name string
		key  Key
		mode InteractionMode
		open bool
		want Action
		ok   bool
	}{
		// Overlay closed.
		{"DeferredClosedDownOpens", KeyDown, ModeDeferred, false, Action{Kind: ActionOpen}, true},
		{"DeferredClosedUpOpens", KeyUp, ModeDeferred, false, Action{Kind: ActionOpen}, true},
		{"ImmediateClosedDownCommitsMove", KeyDown, ModeImmediate, false, Action{Kind: ActionMove, Delta: 1, Commit: true}, true},
		{"ImmediateClosedUpCommitsMove", KeyUp, ModeImmediate, false, Action{Kind: ActionMove, Delta: -1, Commit: true}, true},
		{"ImmediateClosedEndCommitsEdge", KeyEnd, ModeImmediate, false, Action{Kind: ActionEdge, ToEnd: true, Commit: true}, true},
		{"DeferredClosedHomeOpens", KeyHome, ModeDeferred, false, Action{Kind: ActionOpen}, true},
		{"ClosedEnterOpens", KeyEnter, ModeDeferred, false, Action{Kind: ActionOpen}, true},
		{"ClosedSpaceOpens", KeySpace, ModeImmediate, false, Action{Kind: ActionOpen}, true},
		{"ClosedEscapeUnrecognized", KeyEscape, ModeDeferred, false, Action{}, false},
		{"ClosedTabUnrecognized", KeyTab, ModeImmediate, false, Action{}, false},

		// Overlay open.
		{"DeferredOpenDownMoves", KeyDown, ModeDeferred, true, Action{Kind: ActionMove, Delta: 1}, true},
		{"ImmediateOpenDownMovesAndCommits", KeyDown, ModeImmediate, true, Action{Kind: ActionMove, Delta: 1, Commit: true}, true},
		{"DeferredOpenHomeMoves", KeyHome, ModeDeferred, true, Action{Kind: ActionEdge}, true},
		{"ImmediateOpenEndCommits", KeyEnd, ModeImmediate, true, Action{Kind: ActionEdge, ToEnd: true, Commit: true}, true},
		{"DeferredOpenEnterCommitsAndCloses", KeyEnter, ModeDeferred, true, Action{Kind: ActionCommitClose}, true},
		{"DeferredOpenSpaceCommitsAndCloses", KeySpace, ModeDeferred, true, Action{Kind: ActionCommitClose}, true},
		{"ImmediateOpenEnterJustCloses", KeyEnter, ModeImmediate, true, Action{Kind: ActionClose}, true},
		{"OpenEscapeCloses", KeyEscape, ModeDeferred, true, Action{Kind: ActionClose}, true},
		{"OpenTabCloses", KeyTab, ModeImmediate, true, Action{Kind: ActionClose}, true},
		{"OpenLeftUnrecognized", KeyLeft, ModeDeferred, true, Action{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ListboxPolicy(tc.key, tc.mode, tc.open)
			if ok != tc.ok || got != tc.want {
				t.Errorf("ListboxPolicy(%v, %v, open=%v) = %+v, %v; want %+v, %v",
					tc.key, tc.mode, tc.open, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestModeForGOOS(t *testing.T) {
	if got := ModeForGOOS("darwin"); got != ModeDeferred {
		t.Errorf("darwin should map to deferred, got %v", got)
	}
	if got := ModeForGOOS("linux"); got != ModeImmediate {
		t.Errorf("linux should map to immediate, got %v", got)
	}
	if got := ModeForGOOS("windows"); got != ModeImmediate {
		t.Errorf("windows should map to immediate, got %v", got)
	}
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		name string
		in   string
		goos string
		want InteractionMode
		ok   bool
	}{
		{"AutoFollowsDarwin", "auto", "darwin", ModeDeferred, true},
		{"AutoFollowsLinux", "auto", "linux", ModeImmediate, true},
		{"EmptyFollowsPlatform", "", "windows", ModeImmediate, true},
		{"ExplicitDeferred", "deferred", "linux", ModeDeferred, true},
		{"ExplicitImmediate", "immediate", "darwin", ModeImmediate, true},
		{"UnknownFallsBack", "bogus", "linux", ModeImmediate, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseMode(tc.in, tc.goos)
			if got != tc.want || ok != tc.ok {
				t.Errorf("ParseMode(%q, %q) = %v, %v; want %v, %v", tc.in, tc.goos, got, ok, tc.want, tc.ok)
			}
		})
	}
}
