package bough

import (
	"fmt"
	"math"
)

// ListenerPanicError reports a listener that panicked during dispatch.
type ListenerPanicError struct {
	Event EventType
	Value any
}

func (e *ListenerPanicError) Error() string {
	return fmt.Sprintf("bough: listener panicked during %s: %v", e.Event, e.Value)
}

// dispatchSafe dispatches ev and converts a listener panic into an error so
// the drain can continue with the next event.
func (d *Driver) dispatchSafe(ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ListenerPanicError{Event: ev.Type, Value: r}
		}
	}()
	return d.dispatch(ev)
}

func (d *Driver) dispatch(ev Event) error {
	switch ev.Type {
	case EventPointerMove:
		return d.dispatchPointerMove(ev)
	case EventPointerDown:
		return d.dispatchPointerDown(ev)
	case EventPointerUp:
		return d.dispatchPointerUp(ev)
	case EventKeyDown, EventKeyUp:
		return d.dispatchKey(ev)
	}
	return nil
}

// target resolves the node under ev's screen position and rewrites the
// pointer args into that node's local space.
func (d *Driver) target(ev Event) (Event, bool) {
	h, ok := Tunnel(d.root, ev.Pointer.ScreenX, ev.Pointer.ScreenY, 0, 0)
	if !ok {
		return ev, false
	}
	ev.Source = h.Node
	ev.Pointer.X = h.LocalX
	ev.Pointer.Y = h.LocalY
	return ev, true
}

// retarget re-expresses ev for a node that is not the hit node, such as the
// node being left by the pointer.
func retarget(ev Event, n *Node) Event {
	abs := n.AbsoluteBounds()
	ev.Source = n
	ev.Pointer.X = ev.Pointer.ScreenX - abs.X
	ev.Pointer.Y = ev.Pointer.ScreenY - abs.Y
	return ev
}

// attached reports whether n still belongs to the driven tree.
func (d *Driver) attached(n *Node) bool {
	return n != nil && n.Root() == d.root
}

func (d *Driver) dispatchPointerMove(ev Event) error {
	d.pointerX, d.pointerY = ev.Pointer.ScreenX, ev.Pointer.ScreenY
	hit, ok := d.target(ev)
	var over *Node
	if ok {
		over = hit.Source
	}

	if over != d.hover {
		prev := d.hover
		d.hover = over
		if d.attached(prev) {
			leave := retarget(ev, prev)
			leave.Type = EventPointerLeave
			if err := prev.Raise(leave); err != nil {
				return err
			}
		}
		if over != nil {
			enter := hit
			enter.Type = EventPointerEnter
			if err := over.Raise(enter); err != nil {
				return err
			}
		}
	}

	if !ok {
		return nil
	}
	return over.Raise(hit)
}

func (d *Driver) dispatchPointerDown(ev Event) error {
	d.pointerX, d.pointerY = ev.Pointer.ScreenX, ev.Pointer.ScreenY
	d.pressed = ev.Pointer.Button()
	d.downX, d.downY = ev.Pointer.ScreenX, ev.Pointer.ScreenY
	d.downTime = ev.Pointer.Time

	hit, ok := d.target(ev)
	if !ok {
		return nil
	}
	return hit.Source.Raise(hit)
}

func (d *Driver) dispatchPointerUp(ev Event) error {
	pressed := d.pressed
	defer func() { d.pressed = ButtonNone }()
	d.pointerX, d.pointerY = ev.Pointer.ScreenX, ev.Pointer.ScreenY

	hit, ok := d.target(ev)
	if !ok {
		return nil
	}
	node := hit.Source
	hit.Pointer.PrimaryButton = pressed == ButtonPrimary
	hit.Pointer.SecondaryButton = pressed == ButtonSecondary
	if err := node.Raise(hit); err != nil {
		return err
	}

	if pressed == ButtonNone || !d.withinMoveThreshold(ev.Pointer.ScreenX, ev.Pointer.ScreenY) {
		return nil
	}

	click := hit
	click.Type = EventClick
	if err := node.Raise(click); err != nil {
		return err
	}

	if d.lastClickNode == node && click.Pointer.Time.Sub(d.lastClickTime) <= d.cfg.DoubleClickInterval {
		d.lastClickNode = nil
		dbl := hit
		dbl.Type = EventDoubleClick
		if err := node.Raise(dbl); err != nil {
			return err
		}
	} else {
		d.lastClickNode = node
		d.lastClickTime = click.Pointer.Time
	}

	if pressed != ButtonPrimary {
		return nil
	}
	return d.transferFocus(node, hit)
}

// withinMoveThreshold compares each axis of the pointer's travel since the
// last pointerDown against the move threshold independently.
func (d *Driver) withinMoveThreshold(x, y float64) bool {
	return math.Abs(x-d.downX) <= d.cfg.MoveThreshold &&
		math.Abs(y-d.downY) <= d.cfg.MoveThreshold
}

// transferFocus moves focus to n, raising lostFocus on the previous holder
// and gotFocus on n. Nothing is raised when n already has focus.
func (d *Driver) transferFocus(n *Node, cause Event) error {
	if n == d.focus {
		return nil
	}
	prev := d.focus
	d.focus = n
	if d.attached(prev) {
		lost := cause
		lost.Source = prev
		lost.Type = EventLostFocus
		if err := prev.Raise(lost); err != nil {
			return err
		}
	}
	if n == nil {
		return nil
	}
	got := cause
	got.Source = n
	got.Type = EventGotFocus
	return n.Raise(got)
}

// SetFocus moves keyboard focus to n, or clears it when n is nil, raising the
// same lostFocus and gotFocus events as a primary click. Nodes outside the
// driven tree are ignored. Call it from the tree's goroutine.
func (d *Driver) SetFocus(n *Node) error {
	if n != nil && !d.attached(n) {
		return nil
	}
	return d.transferFocus(n, Event{Pointer: PointerArgs{Time: d.now()}})
}

func (d *Driver) dispatchKey(ev Event) error {
	if d.focus == nil {
		return nil
	}
	if !d.attached(d.focus) {
		d.focus = nil
		return nil
	}
	ev.Source = d.focus
	return d.focus.Raise(ev)
}
