package control

// Key is the controller-level keyboard vocabulary. The widget layer maps
// terminal key events onto it; anything outside this set never reaches a
// policy function and keeps its default behavior.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyEnter
	KeySpace
	KeyEscape
	KeyTab
)

// InteractionMode selects the platform convention for whether arrow-key
// navigation commits immediately or only moves the highlight until an
// explicit commit key.
type InteractionMode int

const (
	// ModeDeferred: arrows move the highlight, Enter/Space commits.
	// The convention on macOS.
	ModeDeferred InteractionMode = iota
	// ModeImmediate: every navigation step also commits.
	// The convention on Windows and Linux.
	ModeImmediate
)

// String returns the config-facing name of the mode.
func (m InteractionMode) String() string {
	if m == ModeImmediate {
		return "immediate"
	}
	return "deferred"
}

// ModeForGOOS maps a host platform to its native interaction mode.
func ModeForGOOS(goos string) InteractionMode {
	if goos == "darwin" {
		return ModeDeferred
	}
	return ModeImmediate
}

// ParseMode resolves a config-facing mode name. The empty string and
// "auto" follow the host platform convention for goos. The second return
// is false for unknown names.
func ParseMode(name, goos string) (InteractionMode, bool) {
	switch name {
	case "", "auto":
		return ModeForGOOS(goos), true
	case "deferred":
		return ModeDeferred, true
	case "immediate":
		return ModeImmediate, true
	}
	return ModeForGOOS(goos), false
}

// ActionKind enumerates what a policy decision asks the controller to do.
type ActionKind int

const (
	ActionNone ActionKind = iota
	// ActionMove steps the active (or, overlay closed, the committed)
	// index by Delta, skipping disabled entries.
	ActionMove
	// ActionEdge jumps the active index to the first or last enabled
	// entry.
	ActionEdge
	// ActionCommitClose commits the active entry, then closes the
	// overlay.
	ActionCommitClose
	// ActionOpen opens the overlay without changing the committed index.
	ActionOpen
	// ActionClose closes the overlay without committing. Any pending
	// uncommitted highlight change is discarded.
	ActionClose
)

// Action is one policy decision. Delta and ToEnd qualify ActionMove and
// ActionEdge; Commit marks moves that also commit (immediate mode).
type Action struct {
	Kind   ActionKind
	Delta  int
	ToEnd  bool
	Commit bool
}

// TabPolicy maps a key to the tab-group action. Tabs are single-mode:
// every recognized movement commits, and navigation wraps around. The
// second return is false for keys the tab group does not recognize.
func TabPolicy(k Key) (Action, bool) {
	switch k {
	case KeyRight, KeyDown:
		return Action{Kind: ActionMove, Delta: 1, Commit: true}, true
	case KeyLeft, KeyUp:
		return Action{Kind: ActionMove, Delta: -1, Commit: true}, true
	case KeyHome:
		return Action{Kind: ActionEdge, Commit: true}, true
	case KeyEnd:
		return Action{Kind: ActionEdge, ToEnd: true, Commit: true}, true
	}
	return Action{}, false
}

// ListboxPolicy maps (key, interaction mode, overlay state) to the listbox
// action. It is a pure function; the controller applies the returned
// action against its index state. The second return is false for keys the
// listbox does not recognize in the given state.
func ListboxPolicy(k Key, mode InteractionMode, overlayOpen bool) (Action, bool) {
	if !overlayOpen {
		switch k {
		case KeyUp, KeyDown:
			if mode == ModeDeferred {
				return Action{Kind: ActionOpen}, true
			}
			delta := 1
			if k == KeyUp {
				delta = -1
			}
			return Action{Kind: ActionMove, Delta: delta, Commit: true}, true
		case KeyHome, KeyEnd:
			if mode == ModeDeferred {
				return Action{Kind: ActionOpen}, true
			}
			return Action{Kind: ActionEdge, ToEnd: k == KeyEnd, Commit: true}, true
		case KeyEnter, KeySpace:
			// Keyboard activation of the invoker button.
			return Action{Kind: ActionOpen}, true
		}
		return Action{}, false
	}

	switch k {
	case KeyUp:
		return Action{Kind: ActionMove, Delta: -1, Commit: mode == ModeImmediate}, true
	case KeyDown:
		return Action{Kind: ActionMove, Delta: 1, Commit: mode == ModeImmediate}, true
	case KeyHome:
		return Action{Kind: ActionEdge, Commit: mode == ModeImmediate}, true
	case KeyEnd:
		return Action{Kind: ActionEdge, ToEnd: true, Commit: mode == ModeImmediate}, true
	case KeyEnter, KeySpace:
		if mode == ModeDeferred {
			return Action{Kind: ActionCommitClose}, true
		}
		// Immediate mode already committed during navigation.
		return Action{Kind: ActionClose}, true
	case KeyEscape, KeyTab:
		return Action{Kind: ActionClose}, true
	}
	return Action{}, false
}
