// Package control implements the selection and keyboard-navigation state
// machines behind the switchboard widgets: a tab group and a rich
// single-select listbox. Controllers track which entry is active versus
// committed, apply platform-dependent keyboard policy, and keep link
// attributes and focus in sync after every mutation. Rendering, overlay
// positioning, and event sources live outside this package; controllers
// only read and write Node attributes and request focus.
package control

// Link attribute names wired onto trigger, panel, and container nodes.
// Renderers and assistive layers derive presentation state from these;
// they are never set directly by anything other than a controller.
const (
	AttrID               = "id"
	AttrSelected         = "selected"
	AttrChecked          = "checked"
	AttrActive           = "active"
	AttrDisabled         = "disabled"
	AttrReadOnly         = "readonly"
	AttrHidden           = "hidden"
	AttrControls         = "controls"
	AttrLabelledBy       = "labelledby"
	AttrActiveDescendant = "activedescendant"
	AttrTabStop          = "tabstop"
)

// Node is the controller's view of one element in the host UI tree: a
// small attribute store plus a focus request sink. Controllers never walk
// or query a tree; the host injects ordered Node collections on rebuild.
type Node interface {
	SetAttr(name, value string)
	RemoveAttr(name string)
	Attr(name string) (string, bool)
	RequestFocus()
}

// BasicNode is the standard in-memory Node used by the widget layer and by
// tests. It records the last focus request so hosts can route real focus.
type BasicNode struct {
	attrs   map[string]string
	focused bool
}

// NewBasicNode returns an empty BasicNode.
func NewBasicNode() *BasicNode {
	return &BasicNode{attrs: make(map[string]string)}
}

// SetAttr implements Node.
func (n *BasicNode) SetAttr(name, value string) {
	n.attrs[name] = value
}

// RemoveAttr implements Node.
func (n *BasicNode) RemoveAttr(name string) {
	delete(n.attrs, name)
}

// Attr implements Node.
func (n *BasicNode) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// RequestFocus implements Node.
func (n *BasicNode) RequestFocus() {
	n.focused = true
}

// Blur clears the recorded focus request.
func (n *BasicNode) Blur() {
	n.focused = false
}

// Focused reports whether a focus request has been recorded since the last
// Blur.
func (n *BasicNode) Focused() bool {
	return n.focused
}

// HasAttr reports whether the attribute is present with the value "true".
func HasAttr(n Node, name string) bool {
	if n == nil {
		return false
	}
	v, ok := n.Attr(name)
	return ok && v == "true"
}
