package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"switchboard/internal/control"
)

// SelectOption is one entry offered by a SelectBox.
type SelectOption struct {
	Value    string
	Label    string
	Disabled bool
}

// SelectBox is the rich single-select widget: a bordered invoker showing
// the committed value, with a dropdown panel of options. All selection,
// keyboard, and overlay semantics live in the embedded listbox controller;
// this type adds rendering, the scroll window, and Bubble Tea wiring.
type SelectBox struct {
	ID          string // identifies this widget in commit messages
	Placeholder string
	Width       int
	MaxVisible  int

	keys        KeyMap
	ctrl        *control.Listbox
	overlay     *control.BasicOverlay
	container   *control.BasicNode
	invokerNode *control.BasicNode
	optionNodes []*control.BasicNode
	options     []SelectOption

	scrollOffset int
	focused      bool
}

// NewSelectBox creates a select box in the given interaction mode. Use
// control.ModeForGOOS(runtime.GOOS) to follow platform conventions.
func NewSelectBox(id string, options []SelectOption, mode control.InteractionMode) SelectBox {
	s := SelectBox{
		ID:         id,
		Width:      32,
		MaxVisible: 5,
		keys:       DefaultKeyMap(),
		container:  control.NewBasicNode(),
	}
	s.invokerNode = control.NewBasicNode()
	s.ctrl = control.NewListbox(s.container, mode)
	s.overlay = control.NewBasicOverlay(s.ctrl.OverlayShown, s.ctrl.OverlayHidden)
	s.ctrl.SetOverlay(s.overlay)
	s.ctrl.SetInvoker(control.NewInvoker(s.invokerNode))
	s.setOptions(options)
	return s
}

// WithPlaceholder sets the text shown before anything is committed.
func (s SelectBox) WithPlaceholder(p string) SelectBox {
	s.Placeholder = p
	return s
}

// WithWidth sets the display width.
func (s SelectBox) WithWidth(w int) SelectBox {
	s.Width = w
	return s
}

// WithMaxVisible sets the dropdown window size.
func (s SelectBox) WithMaxVisible(n int) SelectBox {
	if n > 0 {
		s.MaxVisible = n
	}
	return s
}

func (s *SelectBox) setOptions(options []SelectOption) {
	s.options = options
	s.optionNodes = make([]*control.BasicNode, len(options))
	opts := make([]control.Option, len(options))
	for i, o := range options {
		s.optionNodes[i] = control.NewBasicNode()
		opts[i] = control.Option{
			Node:     s.optionNodes[i],
			Value:    o.Value,
			Label:    o.Label,
			Disabled: o.Disabled,
		}
	}
	s.ctrl.Rebuild(opts)
	s.scrollOffset = 0
	s.ensureActiveVisible()
}

// SetOptions replaces the option collection. A committed value that still
// exists in the new collection stays committed.
func (s *SelectBox) SetOptions(options []SelectOption) {
	s.setOptions(options)
}

// SetValue commits the option with the given value, if present and enabled.
func (s *SelectBox) SetValue(value string) bool {
	for i, o := range s.options {
		if o.Value == value {
			return s.ctrl.SetChecked(i)
		}
	}
	return false
}

// Value returns the committed value, or "" when unset.
func (s SelectBox) Value() string {
	v, _ := s.ctrl.Value()
	return v
}

// Label returns the committed label, or the empty string.
func (s SelectBox) Label() string {
	if e, ok := s.ctrl.CheckedEntry(); ok {
		return e.Label
	}
	return ""
}

// IsOpen reports whether the dropdown is visible.
func (s SelectBox) IsOpen() bool {
	return s.overlay.IsOpen()
}

// SetDisabled toggles the whole control.
func (s *SelectBox) SetDisabled(disabled bool) {
	s.ctrl.SetDisabled(disabled)
}

// Disabled reports the control-level disabled flag.
func (s SelectBox) Disabled() bool {
	return s.ctrl.Disabled()
}

// SetReadOnly toggles read-only browsing.
func (s *SelectBox) SetReadOnly(readOnly bool) {
	s.ctrl.SetReadOnly(readOnly)
}

// Focus marks the widget focused.
func (s *SelectBox) Focus() {
	s.focused = true
}

// Blur removes focus, closing the dropdown and clearing typeahead.
func (s *SelectBox) Blur() {
	s.focused = false
	if s.overlay.IsOpen() {
		s.overlay.Close()
	}
	s.ctrl.ResetTypeahead()
}

// Focused reports whether the widget has focus.
func (s SelectBox) Focused() bool {
	return s.focused
}

// ClickInvoker handles a pointer press on the invoker.
func (s SelectBox) ClickInvoker() (SelectBox, tea.Cmd) {
	before, hadValue := s.ctrl.Value()
	wasOpen := s.overlay.IsOpen()
	if !s.ctrl.ClickInvoker() {
		return s, nil
	}
	s.ensureActiveVisible()
	return s, s.transitionCmd(before, hadValue, wasOpen)
}

// ClickOption handles a pointer press on option i in the dropdown.
func (s SelectBox) ClickOption(i int) (SelectBox, tea.Cmd) {
	before, hadValue := s.ctrl.Value()
	wasOpen := s.overlay.IsOpen()
	if !s.ctrl.ClickOption(i) {
		return s, nil
	}
	return s, s.transitionCmd(before, hadValue, wasOpen)
}

// Init implements tea.Model.
func (s SelectBox) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Printable characters feed the typeahead
// buffer; everything else goes through the keyboard policy.
func (s SelectBox) Update(msg tea.Msg) (SelectBox, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused {
		return s, nil
	}

	before, hadValue := s.ctrl.Value()
	wasOpen := s.overlay.IsOpen()

	if keyMsg.Type == tea.KeyRunes && len(keyMsg.Runes) == 1 && keyMsg.Runes[0] != ' ' {
		if !s.ctrl.TypeChar(keyMsg.Runes[0]) {
			return s, nil
		}
		s.ensureActiveVisible()
		return s, s.transitionCmd(before, hadValue, wasOpen)
	}

	k, ok := s.keys.ControlKey(keyMsg)
	if !ok {
		return s, nil
	}
	handled := s.ctrl.HandleKey(k)
	s.ensureActiveVisible()
	cmd := s.transitionCmd(before, hadValue, wasOpen)
	if !handled && cmd == nil {
		return s, nil
	}
	return s, cmd
}

// transitionCmd compares overlay and value state against the snapshot taken
// before an interaction and emits the matching messages.
func (s *SelectBox) transitionCmd(beforeValue string, hadValue, wasOpen bool) tea.Cmd {
	var msgs []tea.Msg

	after, hasValue := s.ctrl.Value()
	if hasValue && (!hadValue || after != beforeValue) {
		e, _ := s.ctrl.CheckedEntry()
		msgs = append(msgs, SelectCommittedMsg{
			ID:    s.ID,
			Index: s.ctrl.Checked(),
			Value: e.Value,
			Label: e.Label,
		})
	}

	isOpen := s.overlay.IsOpen()
	if isOpen && !wasOpen {
		msgs = append(msgs, SelectOpenedMsg{ID: s.ID})
	}
	if !isOpen && wasOpen {
		msgs = append(msgs, SelectClosedMsg{ID: s.ID})
	}

	if len(msgs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(msgs))
	for i, m := range msgs {
		m := m
		cmds[i] = func() tea.Msg { return m }
	}
	return tea.Batch(cmds...)
}

// ensureActiveVisible scrolls the dropdown window so the highlighted (or,
// when closed, committed) entry is inside it.
func (s *SelectBox) ensureActiveVisible() {
	target := s.ctrl.Active()
	if target < 0 {
		target = s.ctrl.Checked()
	}
	if target < 0 {
		s.scrollOffset = 0
		return
	}
	if target < s.scrollOffset {
		s.scrollOffset = target
	}
	if target >= s.scrollOffset+s.MaxVisible {
		s.scrollOffset = target - s.MaxVisible + 1
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
	maxOffset := len(s.options) - s.MaxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.scrollOffset > maxOffset {
		s.scrollOffset = maxOffset
	}
}
