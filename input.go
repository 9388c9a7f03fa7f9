package bough

import "time"

// PointerInput is a raw pointer notification from the host. X and Y are
// absolute surface coordinates. A zero Time is replaced by the driver clock.
type PointerInput struct {
	X, Y      float64
	Button    MouseButton
	Modifiers KeyModifiers
	Time      time.Time
}

func (d *Driver) pointerEvent(typ EventType, in PointerInput) Event {
	if in.Time.IsZero() {
		in.Time = d.now()
	}
	return Event{
		Type: typ,
		Pointer: PointerArgs{
			ScreenX:         in.X,
			ScreenY:         in.Y,
			Time:            in.Time,
			PrimaryButton:   in.Button == ButtonPrimary,
			SecondaryButton: in.Button == ButtonSecondary,
			Modifiers:       in.Modifiers,
		},
	}
}

// PointerMove queues a pointer move. Safe to call from any goroutine.
func (d *Driver) PointerMove(in PointerInput) {
	d.queue.push(d.pointerEvent(EventPointerMove, in))
}

// PointerDown queues a button press. Safe to call from any goroutine.
func (d *Driver) PointerDown(in PointerInput) {
	d.queue.push(d.pointerEvent(EventPointerDown, in))
}

// PointerUp queues a button release. Safe to call from any goroutine.
func (d *Driver) PointerUp(in PointerInput) {
	d.queue.push(d.pointerEvent(EventPointerUp, in))
}

// KeyDown queues a key press for the focused node. Safe to call from any goroutine.
func (d *Driver) KeyDown(k KeyArgs) {
	if k.Time.IsZero() {
		k.Time = d.now()
	}
	d.queue.push(Event{Type: EventKeyDown, Key: k})
}

// KeyUp queues a key release for the focused node. Safe to call from any goroutine.
func (d *Driver) KeyUp(k KeyArgs) {
	if k.Time.IsZero() {
		k.Time = d.now()
	}
	d.queue.push(Event{Type: EventKeyUp, Key: k})
}

// invalidate queues a paint event for r, given in the root's parent space.
func (d *Driver) invalidate(r Rect, source *Node) {
	if !r.Paintable() {
		return
	}
	d.queue.push(Event{
		Source: source,
		Type:   EventPaint,
		Paint:  PaintArgs{Time: d.now(), Bounds: r},
	})
}
