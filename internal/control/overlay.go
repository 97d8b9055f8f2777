package control

// Overlay is the collapsible container collaborator. Positioning, focus
// trapping, and rendering belong to the implementation; the listbox
// controller only requests transitions and observes them through
// OverlayShown/OverlayHidden notifications.
type Overlay interface {
	Open()
	Close()
	Toggle()
	IsOpen() bool
}

// BasicOverlay is a minimal Overlay that tracks the open flag and forwards
// show/hide notifications to the owning listbox. The widget layer uses it
// as the state half of its rendered dropdown; tests use it directly.
type BasicOverlay struct {
	open   bool
	onShow func()
	onHide func()
}

// NewBasicOverlay creates a closed overlay with the given notification
// sinks. Either may be nil.
func NewBasicOverlay(onShow, onHide func()) *BasicOverlay {
	return &BasicOverlay{onShow: onShow, onHide: onHide}
}

// Open implements Overlay.
func (o *BasicOverlay) Open() {
	if o.open {
		return
	}
	o.open = true
	if o.onShow != nil {
		o.onShow()
	}
}

// Close implements Overlay.
func (o *BasicOverlay) Close() {
	if !o.open {
		return
	}
	o.open = false
	if o.onHide != nil {
		o.onHide()
	}
}

// Toggle implements Overlay.
func (o *BasicOverlay) Toggle() {
	if o.open {
		o.Close()
		return
	}
	o.Open()
}

// IsOpen implements Overlay.
func (o *BasicOverlay) IsOpen() bool {
	return o.open
}
