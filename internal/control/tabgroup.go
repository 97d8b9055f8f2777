package control

import (
	"fmt"

	"switchboard/internal/debug"
	"switchboard/internal/errors"
)

// TabGroup is the selection controller for a flat set of mutually
// exclusive (trigger, content-panel) pairs. Exactly one pair is selected
// at a time; arrow navigation wraps and commits immediately.
type TabGroup struct {
	reg      *Registry
	selected int
	disabled bool
	synced   bool
	onChange func(Entry)
}

// NewTabGroup creates an empty controller with selection at index 0.
func NewTabGroup() *TabGroup {
	return &TabGroup{reg: NewRegistry("tab"), selected: 0}
}

// OnChange registers the observer notified after every successful commit.
func (g *TabGroup) OnChange(fn func(Entry)) {
	g.onChange = fn
}

// Rebuild replaces the registered entries from two ordered collections of
// equal length. A count mismatch is reported as a non-fatal diagnostic and
// the rebuild proceeds with the shorter length. Per-entry disablement is
// read from the trigger's disabled attribute. The synchronization pass run
// here never steals focus.
func (g *TabGroup) Rebuild(triggers, panels []Node) error {
	var diag error
	n := len(triggers)
	if len(panels) != n {
		diag = errors.New(errors.CodePanelCountMismatch,
			fmt.Sprintf("%d triggers but %d panels", len(triggers), len(panels)), nil)
		if len(panels) < n {
			n = len(panels)
		}
		debug.Logf("tabgroup: %v, continuing with %d pairs", diag, n)
	}

	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		entries[i] = Entry{
			Trigger:  triggers[i],
			Panel:    panels[i],
			Disabled: HasAttr(triggers[i], AttrDisabled),
		}
	}
	g.reg.Rebuild(entries)

	for _, e := range g.reg.Entries() {
		e.Trigger.SetAttr(AttrControls, e.PanelUID())
		e.Panel.SetAttr(AttrLabelledBy, e.UID)
	}

	if g.selected >= g.reg.Len() {
		g.selected = 0
	}
	g.sync(false)
	g.synced = true
	return diag
}

// Teardown detaches the controller from its nodes, stripping every wired
// attribute. Idempotent.
func (g *TabGroup) Teardown() {
	g.reg.Teardown()
}

// Selected returns the committed index.
func (g *TabGroup) Selected() int {
	return g.selected
}

// Len returns the number of registered tabs.
func (g *TabGroup) Len() int {
	return g.reg.Len()
}

// Entry returns the entry at i.
func (g *TabGroup) Entry(i int) (Entry, bool) {
	e := g.reg.Entry(i)
	if e == nil {
		return Entry{}, false
	}
	return *e, true
}

// SetDisabled toggles the whole group. A disabled group rejects keyboard
// and click interaction but keeps its committed state.
func (g *TabGroup) SetDisabled(disabled bool) {
	g.disabled = disabled
}

// SetSelected commits the tab at index i. Out-of-range and disabled
// targets are rejected without state change or notification. Re-selecting
// the current index is a no-op that still reports success.
func (g *TabGroup) SetSelected(i int) bool {
	e := g.reg.Entry(i)
	if e == nil || g.reg.disabledAt(i) {
		return false
	}
	if i == g.selected && g.synced {
		return true
	}
	g.selected = i
	g.sync(true)
	if g.onChange != nil {
		g.onChange(*e)
	}
	return true
}

// ClickTrigger is the click-equivalent of SetSelected, gated on the
// group-level disabled flag.
func (g *TabGroup) ClickTrigger(i int) bool {
	if g.disabled {
		return false
	}
	return g.SetSelected(i)
}

// HandleKey applies the tab keyboard policy. It reports whether the key
// was recognized, so the host suppresses default behavior only for keys
// the group actually handled.
func (g *TabGroup) HandleKey(k Key) bool {
	if g.disabled || g.reg.Len() == 0 {
		return false
	}
	action, ok := TabPolicy(k)
	if !ok {
		return false
	}
	switch action.Kind {
	case ActionMove:
		g.SetSelected(g.reg.step(g.selected, action.Delta, true))
	case ActionEdge:
		if target := g.reg.edge(action.ToEnd); target >= 0 {
			g.SetSelected(target)
		}
	}
	return true
}

// sync is the single synchronizer pass run after every index mutation:
// the selected trigger carries the selected attribute and tab-stop 0,
// every other trigger tab-stop -1, and only the selected panel is shown.
// Focus follows the selected trigger except during rebuild.
func (g *TabGroup) sync(focus bool) {
	for i, e := range g.reg.Entries() {
		if i == g.selected {
			e.Trigger.SetAttr(AttrSelected, "true")
			e.Trigger.SetAttr(AttrTabStop, "0")
			e.Panel.RemoveAttr(AttrHidden)
			if focus {
				e.Trigger.RequestFocus()
			}
			continue
		}
		e.Trigger.SetAttr(AttrSelected, "false")
		e.Trigger.SetAttr(AttrTabStop, "-1")
		e.Panel.SetAttr(AttrHidden, "true")
	}
}
