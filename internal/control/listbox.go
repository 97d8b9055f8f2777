package control

import (
	"strings"

	"switchboard/internal/debug"
)

// Option describes one listbox entry handed to Listbox.Rebuild. Options
// are self-contained: the option node is both trigger and content.
type Option struct {
	Node     Node
	Value    string
	Label    string
	Disabled bool
}

// Listbox is the selection controller for a rich single-select: a set of
// option entries inside a collapsible overlay, with a transient active
// index (highlight, activedescendant) kept distinct from the checked
// index (the committed value). Navigation semantics depend on the
// interaction mode; overlay open/close transitions seed and clear the
// active index.
type Listbox struct {
	reg       *Registry
	container Node
	mode      InteractionMode

	checked int
	active  int

	overlay  Overlay
	invoker  *Invoker
	onChange func(Entry)

	disabled bool
	readOnly bool

	typed string

	// modelValue is the form-facing committed value, written on every
	// commit and used to re-match the checked entry across rebuilds.
	modelValue string
	hasValue   bool
}

// NewListbox creates an empty controller. The container node hosts the
// activedescendant linkage while the overlay is open.
func NewListbox(container Node, mode InteractionMode) *Listbox {
	return &Listbox{
		reg:       NewRegistry("option"),
		container: container,
		mode:      mode,
		checked:   -1,
		active:    -1,
	}
}

// SetOverlay attaches the overlay collaborator. The overlay must report
// show/hide transitions through OverlayShown and OverlayHidden.
func (l *Listbox) SetOverlay(o Overlay) {
	l.overlay = o
}

// SetInvoker attaches the invoker mirror.
func (l *Listbox) SetInvoker(v *Invoker) {
	l.invoker = v
	l.invoker.SetDisabled(l.disabled)
	l.invoker.SetReadOnly(l.readOnly)
	l.mirror()
}

// OnChange registers the observer notified after every successful commit.
func (l *Listbox) OnChange(fn func(Entry)) {
	l.onChange = fn
}

// Mode returns the interaction mode.
func (l *Listbox) Mode() InteractionMode {
	return l.mode
}

// Rebuild replaces the registered options. The checked index is re-derived
// by matching the committed model value against the new collection; when
// no option matches, the listbox returns to the unset state and the
// invoker clears.
func (l *Listbox) Rebuild(opts []Option) {
	entries := make([]Entry, len(opts))
	for i, opt := range opts {
		entries[i] = Entry{
			Trigger:  opt.Node,
			Value:    opt.Value,
			Label:    opt.Label,
			Disabled: opt.Disabled,
		}
	}
	l.reg.Rebuild(entries)

	l.checked = -1
	if l.hasValue {
		for i, e := range l.reg.Entries() {
			if e.Value == l.modelValue {
				l.checked = i
				break
			}
		}
	}
	if l.active >= l.reg.Len() {
		l.active = -1
	}
	l.sync()
	l.mirror()
}

// Teardown detaches the controller from its nodes and clears the
// activedescendant linkage. Idempotent.
func (l *Listbox) Teardown() {
	l.reg.Teardown()
	if l.container != nil {
		l.container.RemoveAttr(AttrActiveDescendant)
	}
}

// Checked returns the committed index, or -1 when unset.
func (l *Listbox) Checked() int {
	return l.checked
}

// Active returns the highlight index, or -1 when unset.
func (l *Listbox) Active() int {
	return l.active
}

// Value returns the committed model value and whether one has been set.
func (l *Listbox) Value() (string, bool) {
	return l.modelValue, l.hasValue
}

// Len returns the number of registered options.
func (l *Listbox) Len() int {
	return l.reg.Len()
}

// Entry returns the entry at i.
func (l *Listbox) Entry(i int) (Entry, bool) {
	e := l.reg.Entry(i)
	if e == nil {
		return Entry{}, false
	}
	return *e, true
}

// CheckedEntry returns the committed entry, or false when unset.
func (l *Listbox) CheckedEntry() (Entry, bool) {
	return l.Entry(l.checked)
}

// SetDisabled toggles the whole control. Disabled swallows every
// interaction and propagates to the invoker.
func (l *Listbox) SetDisabled(disabled bool) {
	l.disabled = disabled
	l.invoker.SetDisabled(disabled)
	if disabled && l.overlayOpen() {
		l.overlay.Close()
	}
}

// SetReadOnly marks the control read-only: the overlay may still open for
// browsing, but commit requests are rejected. Propagates to the invoker.
func (l *Listbox) SetReadOnly(readOnly bool) {
	l.readOnly = readOnly
	l.invoker.SetReadOnly(readOnly)
}

// Disabled reports the control-level disabled flag.
func (l *Listbox) Disabled() bool {
	return l.disabled
}

// SetChecked commits the option at index i. Out-of-range and disabled
// targets, and any request while read-only, are rejected without state
// change or notification.
func (l *Listbox) SetChecked(i int) bool {
	e := l.reg.Entry(i)
	if e == nil || l.reg.disabledAt(i) || l.readOnly {
		return false
	}
	changed := i != l.checked || !l.hasValue
	l.checked = i
	l.modelValue = e.Value
	l.hasValue = true
	l.sync()
	l.mirror()
	if changed && l.onChange != nil {
		l.onChange(*e)
	}
	return true
}

// SetActive moves the highlight to index i without committing. Cheaper
// than SetChecked: only the active linkage is updated, focus stays on the
// container, and no change notification fires.
func (l *Listbox) SetActive(i int) bool {
	if !l.reg.InRange(i) || l.reg.disabledAt(i) {
		return false
	}
	l.active = i
	l.sync()
	return true
}

// ClickOption commits the clicked option and closes the overlay.
func (l *Listbox) ClickOption(i int) bool {
	if l.disabled {
		return false
	}
	if !l.SetChecked(i) {
		return false
	}
	if l.overlayOpen() {
		l.overlay.Close()
	}
	return true
}

// ClickInvoker toggles the overlay, the pointer-driven half of the
// overlay lifecycle.
func (l *Listbox) ClickInvoker() bool {
	if l.disabled {
		return false
	}
	if l.overlay == nil {
		debug.Logf("listbox: invoker activated without overlay collaborator, ignoring")
		return false
	}
	l.overlay.Toggle()
	return true
}

// HandleKey applies the listbox keyboard policy for the current mode and
// overlay state. It reports whether the key was consumed; Tab closes the
// overlay but is never consumed, so focus can leave the control.
func (l *Listbox) HandleKey(k Key) bool {
	if l.disabled {
		return false
	}
	action, ok := ListboxPolicy(k, l.mode, l.overlayOpen())
	if !ok {
		return false
	}
	l.apply(action)
	return k != KeyTab
}

// apply resolves one policy action against the index state.
func (l *Listbox) apply(action Action) {
	switch action.Kind {
	case ActionOpen:
		if l.overlay == nil {
			debug.Logf("listbox: open requested without overlay collaborator, ignoring")
			return
		}
		l.overlay.Open()

	case ActionClose:
		if l.overlayOpen() {
			l.overlay.Close()
		}

	case ActionCommitClose:
		l.SetChecked(l.active)
		if l.overlayOpen() {
			l.overlay.Close()
		}

	case ActionMove:
		from := l.navOrigin()
		target := l.reg.step(from, action.Delta, false)
		if from < 0 {
			// Nothing highlighted or committed yet: enter the list at
			// its first enabled entry regardless of direction.
			target = l.reg.edge(false)
		}
		l.moveTo(target, action.Commit)

	case ActionEdge:
		l.moveTo(l.reg.edge(action.ToEnd), action.Commit)
	}
}

// navOrigin returns the index navigation steps from: the highlight while
// the overlay is open, the committed index otherwise.
func (l *Listbox) navOrigin() int {
	if l.overlayOpen() {
		return l.active
	}
	return l.checked
}

func (l *Listbox) moveTo(target int, commit bool) {
	if target < 0 {
		return
	}
	if l.overlayOpen() {
		if !l.SetActive(target) {
			return
		}
		if commit {
			l.SetChecked(target)
		}
		return
	}
	// Overlay closed, immediate mode: arrows walk the committed index
	// directly.
	l.SetChecked(target)
}

// TypeChar feeds one printable character into the typeahead buffer and
// moves to the first enabled option whose label matches the buffer as a
// case-insensitive prefix. On no match the buffer restarts with the new
// character. Matching moves the highlight in deferred mode (or while the
// overlay is open) and commits in immediate mode with the overlay closed.
func (l *Listbox) TypeChar(r rune) bool {
	if l.disabled {
		return false
	}
	l.typed += strings.ToLower(string(r))
	target := l.typeaheadMatch(l.typed)
	if target < 0 {
		l.typed = strings.ToLower(string(r))
		target = l.typeaheadMatch(l.typed)
	}
	if target < 0 {
		l.typed = ""
		return false
	}
	l.moveTo(target, l.mode == ModeImmediate && !l.overlayOpen())
	return true
}

// ResetTypeahead clears the accumulated search buffer. The widget layer
// calls it on blur and on overlay close.
func (l *Listbox) ResetTypeahead() {
	l.typed = ""
}

func (l *Listbox) typeaheadMatch(prefix string) int {
	for i, e := range l.reg.Entries() {
		if l.reg.disabledAt(i) {
			continue
		}
		if strings.HasPrefix(strings.ToLower(e.Label), prefix) {
			return i
		}
	}
	return -1
}

// OverlayShown is the show notification from the overlay collaborator.
// It seeds the highlight from the committed index (or 0 when unset) and
// moves focus into the container.
func (l *Listbox) OverlayShown() {
	seed := l.checked
	if seed < 0 && l.reg.Len() > 0 {
		seed = 0
	}
	l.active = seed
	l.sync()
	if l.container != nil {
		l.container.RequestFocus()
	}
}

// OverlayHidden is the hide notification from the overlay collaborator.
// Any pending uncommitted highlight change is discarded, the
// activedescendant linkage clears, and focus returns to the invoker.
func (l *Listbox) OverlayHidden() {
	l.active = -1
	l.ResetTypeahead()
	l.sync()
	l.invoker.RequestFocus()
}

func (l *Listbox) overlayOpen() bool {
	return l.overlay != nil && l.overlay.IsOpen()
}

// sync is the single synchronizer pass run after every index mutation:
// exactly one option carries the checked attribute once committed, the
// active attribute tracks the highlight, and the container's
// activedescendant mirrors the active entry while the overlay is open.
func (l *Listbox) sync() {
	for i, e := range l.reg.Entries() {
		if i == l.checked {
			e.Trigger.SetAttr(AttrChecked, "true")
		} else {
			e.Trigger.SetAttr(AttrChecked, "false")
		}
		if i == l.active && l.overlayOpen() {
			e.Trigger.SetAttr(AttrActive, "true")
		} else {
			e.Trigger.RemoveAttr(AttrActive)
		}
	}
	if l.container == nil {
		return
	}
	if l.overlayOpen() && l.reg.InRange(l.active) {
		l.container.SetAttr(AttrActiveDescendant, l.reg.Entry(l.active).UID)
		return
	}
	l.container.RemoveAttr(AttrActiveDescendant)
}

// mirror pushes the committed entry's content into the invoker.
func (l *Listbox) mirror() {
	if e := l.reg.Entry(l.checked); e != nil {
		l.invoker.Mirror(e)
		return
	}
	l.invoker.Mirror(nil)
}
