package control

// Invoker is the always-visible control that mirrors the committed
// entry's display content and toggles the listbox overlay. The mirror is
// one-directional: the controller pushes content and disabled/read-only
// state down, the invoker never writes anything back.
type Invoker struct {
	node    Node
	content string
}

// NewInvoker wraps the given node as an invoker display region.
func NewInvoker(node Node) *Invoker {
	return &Invoker{node: node}
}

// Mirror copies the entry's display content into the invoker. A nil entry
// clears the display.
func (v *Invoker) Mirror(e *Entry) {
	if v == nil {
		return
	}
	if e == nil {
		v.content = ""
		return
	}
	v.content = e.Label
}

// Content returns the mirrored display content; empty when no entry is
// checked.
func (v *Invoker) Content() string {
	if v == nil {
		return ""
	}
	return v.content
}

// SetDisabled propagates the controller's disabled flag onto the invoker
// node.
func (v *Invoker) SetDisabled(disabled bool) {
	if v == nil || v.node == nil {
		return
	}
	if disabled {
		v.node.SetAttr(AttrDisabled, "true")
		return
	}
	v.node.RemoveAttr(AttrDisabled)
}

// SetReadOnly propagates the controller's read-only flag onto the invoker
// node.
func (v *Invoker) SetReadOnly(readOnly bool) {
	if v == nil || v.node == nil {
		return
	}
	if readOnly {
		v.node.SetAttr(AttrReadOnly, "true")
		return
	}
	v.node.RemoveAttr(AttrReadOnly)
}

// RequestFocus routes focus back to the invoker node, as done when the
// overlay closes.
func (v *Invoker) RequestFocus() {
	if v == nil || v.node == nil {
		return
	}
	v.node.RequestFocus()
}

// Node returns the wrapped node.
func (v *Invoker) Node() Node {
	if v == nil {
		return nil
	}
	return v.node
}
