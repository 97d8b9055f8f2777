package control

import "fmt"

// Entry is one selectable unit owned by a Registry: a tab (trigger plus
// content panel) or a listbox option (self-contained, Panel is nil).
type Entry struct {
	// UID is the identifier wired as the trigger node's id attribute.
	// It is generated at rebuild and never reused while the registry
	// lives, even across rebuilds.
	UID string

	Trigger  Node
	Panel    Node
	Value    string
	Label    string
	Disabled bool
}

// PanelUID returns the identifier wired as the panel node's id attribute.
func (e Entry) PanelUID() string {
	return e.UID + "-panel"
}

// Registry holds the ordered entries of one controller instance. It owns
// identifier generation and the attribute strip performed on teardown.
// Order always equals the order of the collection handed to the last
// rebuild.
type Registry struct {
	prefix  string
	nextUID int
	entries []Entry
}

// NewRegistry creates an empty registry whose identifiers carry the given
// prefix.
func NewRegistry(prefix string) *Registry {
	return &Registry{prefix: prefix}
}

// Rebuild tears down the previous entries and takes ownership of the new
// ones, assigning each a fresh identifier. Attribute wiring beyond the id
// is the calling controller's job.
func (r *Registry) Rebuild(items []Entry) {
	r.Teardown()
	r.entries = make([]Entry, len(items))
	for i, item := range items {
		item.UID = fmt.Sprintf("%s-%d", r.prefix, r.nextUID)
		r.nextUID++
		if item.Trigger != nil {
			item.Trigger.SetAttr(AttrID, item.UID)
		}
		if item.Panel != nil {
			item.Panel.SetAttr(AttrID, item.PanelUID())
		}
		r.entries[i] = item
	}
}

// Teardown strips every controller-wired attribute from the registered
// nodes and drops the entries. Idempotent; safe on an empty registry.
func (r *Registry) Teardown() {
	for _, e := range r.entries {
		stripNode(e.Trigger)
		stripNode(e.Panel)
	}
	r.entries = nil
}

// wiredAttrs is the full set a controller may have placed on a node.
// Stripping an attribute that was never set is a no-op, so one list
// serves both controller variants.
var wiredAttrs = []string{
	AttrID,
	AttrSelected,
	AttrChecked,
	AttrActive,
	AttrHidden,
	AttrControls,
	AttrLabelledBy,
	AttrTabStop,
}

func stripNode(n Node) {
	if n == nil {
		return
	}
	for _, name := range wiredAttrs {
		n.RemoveAttr(name)
	}
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entry returns a pointer to the entry at i, or nil when out of range.
func (r *Registry) Entry(i int) *Entry {
	if i < 0 || i >= len(r.entries) {
		return nil
	}
	return &r.entries[i]
}

// Entries returns the registered entries in order. The returned slice is
// the registry's own; callers must not mutate it.
func (r *Registry) Entries() []Entry {
	return r.entries
}

// InRange reports whether i indexes a registered entry.
func (r *Registry) InRange(i int) bool {
	return i >= 0 && i < len(r.entries)
}

// disabledAt reports whether entry i is disabled, honoring both the flag
// captured at rebuild and a disabled attribute forced onto the trigger
// afterwards.
func (r *Registry) disabledAt(i int) bool {
	if !r.InRange(i) {
		return false
	}
	e := r.entries[i]
	return e.Disabled || HasAttr(e.Trigger, AttrDisabled)
}

// step walks from index i in the given direction until it finds an entry
// that is not disabled. When wrap is false the walk clamps at the bounds
// and returns i unchanged when no enabled entry lies in that direction.
// When wrap is true the walk cycles through the whole registry at most
// once.
func (r *Registry) step(i, delta int, wrap bool) int {
	if len(r.entries) == 0 || delta == 0 {
		return i
	}
	j := i
	for range r.entries {
		j += delta
		if wrap {
			j = (j + len(r.entries)) % len(r.entries)
		} else if j < 0 || j >= len(r.entries) {
			return i
		}
		if !r.disabledAt(j) {
			return j
		}
	}
	return i
}

// edge returns the first (or last) enabled entry index, or -1 when every
// entry is disabled or the registry is empty.
func (r *Registry) edge(last bool) int {
	if last {
		for i := len(r.entries) - 1; i >= 0; i-- {
			if !r.disabledAt(i) {
				return i
			}
		}
		return -1
	}
	for i := range r.entries {
		if !r.disabledAt(i) {
			return i
		}
	}
	return -1
}
