package control

import "testing"

func TestBasicNodeAttrs(t *testing.T) {
	n := NewBasicNode()

	if _, ok := n.Attr(AttrID); ok {
		t.Error("fresh node should have no attributes")
	}

	n.SetAttr(AttrID, "tab-3")
	if v, ok := n.Attr(AttrID); !ok || v != "tab-3" {
		t.Errorf("Attr(id) = %q, %v; want tab-3, true", v, ok)
	}

	n.RemoveAttr(AttrID)
	if _, ok := n.Attr(AttrID); ok {
		t.Error("attribute should be gone after RemoveAttr")
	}

	if HasAttr(n, AttrDisabled) {
		t.Error("HasAttr should be false for an absent attribute")
	}
	n.SetAttr(AttrDisabled, "false")
	if HasAttr(n, AttrDisabled) {
		t.Error("HasAttr should be false for disabled=false")
	}
	n.SetAttr(AttrDisabled, "true")
	if !HasAttr(n, AttrDisabled) {
		t.Error("HasAttr should be true for disabled=true")
	}
}

func TestBasicNodeFocus(t *testing.T) {
	n := NewBasicNode()
	if n.Focused() {
		t.Error("fresh node should not be focused")
	}
	n.RequestFocus()
	if !n.Focused() {
		t.Error("RequestFocus should mark the node focused")
	}
	n.Blur()
	if n.Focused() {
		t.Error("Blur should clear focus")
	}
}

func TestInvoker(t *testing.T) {
	t.Run("MirrorSetsAndClearsContent", func(t *testing.T) {
		v := NewInvoker(NewBasicNode())
		v.Mirror(&Entry{Label: "Green", Value: "green"})
		if got := v.Content(); got != "Green" {
			t.Errorf("Content() = %q, want Green", got)
		}
		v.Mirror(nil)
		if got := v.Content(); got != "" {
			t.Errorf("Content() = %q after clear, want empty", got)
		}
	})

	t.Run("FlagsReachTheNode", func(t *testing.T) {
		n := NewBasicNode()
		v := NewInvoker(n)
		v.SetDisabled(true)
		v.SetReadOnly(true)
		if !HasAttr(n, AttrDisabled) || !HasAttr(n, AttrReadOnly) {
			t.Error("flags should be written to the invoker node")
		}
		v.SetDisabled(false)
		v.SetReadOnly(false)
		if HasAttr(n, AttrDisabled) || HasAttr(n, AttrReadOnly) {
			t.Error("flags should be removed when cleared")
		}
	})

	t.Run("NilReceiverIsSafe", func(t *testing.T) {
		var v *Invoker
		v.Mirror(&Entry{Label: "x"})
		v.SetDisabled(true)
		v.SetReadOnly(true)
		v.RequestFocus()
		if got := v.Content(); got != "" {
			t.Errorf("nil invoker Content() = %q, want empty", got)
		}
	})
}
