package bough

import "fmt"

// Listener handles an event raised on a node. A non-nil error stops the
// remaining listeners for that event and is returned from Raise.
type Listener func(Event) error

type listenerEntry struct {
	id uint32
	fn Listener
}

// CallbackHandle allows removing a registered listener.
type CallbackHandle struct {
	id    uint32
	node  *Node
	event EventType
}

// Remove unregisters this listener so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.node == nil || h.event >= numEventTypes {
		return
	}
	h.node.listeners[h.event] = removeListener(h.node.listeners[h.event], h.id)
}

func removeListener(s []listenerEntry, id uint32) []listenerEntry {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listenerEntry{}
			return s[:len(s)-1]
		}
	}
	return s
}

// AddEventListener registers fn for events of type typ. Listeners fire in
// registration order.
func (n *Node) AddEventListener(typ EventType, fn Listener) CallbackHandle {
	if fn == nil || typ >= numEventTypes {
		return CallbackHandle{}
	}
	n.nextListenerID++
	id := n.nextListenerID
	n.listeners[typ] = append(n.listeners[typ], listenerEntry{id: id, fn: fn})
	return CallbackHandle{id: id, node: n, event: typ}
}

// On is a shorthand for AddEventListener with a listener that cannot fail.
func (n *Node) On(typ EventType, fn func(Event)) CallbackHandle {
	return n.AddEventListener(typ, func(ev Event) error {
		fn(ev)
		return nil
	})
}

// HasListeners reports whether any listener is registered for typ.
func (n *Node) HasListeners(typ EventType) bool {
	return typ < numEventTypes && len(n.listeners[typ]) > 0
}

// Raise delivers ev to the listeners registered for ev.Type, synchronously and
// in registration order. A nil ev.Source is filled in with n. The first error
// ends delivery and is returned wrapped with the event and node names.
func (n *Node) Raise(ev Event) error {
	if ev.Type >= numEventTypes {
		return nil
	}
	if ev.Source == nil {
		ev.Source = n
	}
	ls := n.listeners[ev.Type]
	if len(ls) == 0 {
		return nil
	}
	// Snapshot so listeners may add or remove handlers while being called.
	snapshot := make([]listenerEntry, len(ls))
	copy(snapshot, ls)
	for _, l := range snapshot {
		if err := l.fn(ev); err != nil {
			return fmt.Errorf("%s on %q: %w", ev.Type, n.Name, err)
		}
	}
	return nil
}
