package bough

import (
	"errors"
	"testing"
)

func TestRaiseOrderAndSource(t *testing.T) {
	n := NewView("n")
	var got []int
	n.On(EventClick, func(ev Event) {
		if ev.Source != n {
			t.Errorf("Source = %v, want n", ev.Source)
		}
		got = append(got, 1)
	})
	n.On(EventClick, func(Event) { got = append(got, 2) })
	n.On(EventPointerDown, func(Event) { got = append(got, 99) })

	if err := n.Raise(Event{Type: EventClick}); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("calls = %v, want [1 2]", got)
	}
}

func TestRaiseStopsAtFirstError(t *testing.T) {
	n := NewView("btn")
	boom := errors.New("boom")
	second := false
	n.AddEventListener(EventClick, func(Event) error { return boom })
	n.On(EventClick, func(Event) { second = true })

	err := n.Raise(Event{Type: EventClick})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapping boom", err)
	}
	if err.Error() != `click on "btn": boom` {
		t.Errorf("err = %q", err.Error())
	}
	if second {
		t.Error("listener after the failing one should not run")
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	n := NewView("n")
	calls := 0
	h := n.On(EventClick, func(Event) { calls++ })
	keep := n.On(EventClick, func(Event) { calls += 10 })

	h.Remove()
	_ = n.Raise(Event{Type: EventClick})
	if calls != 10 {
		t.Errorf("calls = %d, want 10", calls)
	}
	h.Remove() // second removal is a no-op
	keep.Remove()
	if n.HasListeners(EventClick) {
		t.Error("HasListeners should be false after removing all")
	}
	CallbackHandle{}.Remove()
}

func TestListenerMayRemoveItselfDuringRaise(t *testing.T) {
	n := NewView("n")
	calls := 0
	var h CallbackHandle
	h = n.On(EventClick, func(Event) {
		calls++
		h.Remove()
	})
	n.On(EventClick, func(Event) { calls++ })

	_ = n.Raise(Event{Type: EventClick})
	_ = n.Raise(Event{Type: EventClick})
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestAddEventListenerIgnoresInvalid(t *testing.T) {
	n := NewView("n")
	if h := n.AddEventListener(EventClick, nil); h.node != nil {
		t.Error("nil listener should not register")
	}
	if h := n.AddEventListener(numEventTypes, func(Event) error { return nil }); h.node != nil {
		t.Error("out-of-range type should not register")
	}
	if err := n.Raise(Event{Type: numEventTypes}); err != nil {
		t.Errorf("Raise(invalid) = %v", err)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventDoubleClick.String() != "doubleClick" {
		t.Errorf("String = %q", EventDoubleClick.String())
	}
	if EventType(200).String() != "EventType(200)" {
		t.Errorf("unknown String = %q", EventType(200).String())
	}
}
