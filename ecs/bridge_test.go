package ecs

import (
	"testing"

	"github.com/yohamta/donburi"

	"github.com/phanxgames/bough"
	"github.com/phanxgames/bough/raster"
)

func collect(world donburi.World) *[]NodeEvent {
	var received []NodeEvent
	NodeEventType.Subscribe(world, func(w donburi.World, e NodeEvent) {
		received = append(received, e)
	})
	return &received
}

func TestNewBridge(t *testing.T) {
	world := donburi.NewWorld()
	b := NewBridge(world)
	if b == nil {
		t.Fatal("NewBridge returned nil")
	}
	if b.World() != world {
		t.Error("World() should return the bridged world")
	}
	if b.Len() != 0 {
		t.Errorf("Len = %d, want 0", b.Len())
	}
}

func TestBridge_BindPublishes(t *testing.T) {
	world := donburi.NewWorld()
	b := NewBridge(world)
	received := collect(world)

	btn := bough.NewButton("ok", "OK")
	btn.ID = "ok-btn"
	e := b.Bind(btn, bough.EventClick)

	err := btn.Raise(bough.Event{
		Type:    bough.EventClick,
		Pointer: bough.PointerArgs{X: 3, Y: 4, ScreenX: 13, ScreenY: 24},
	})
	if err != nil {
		t.Fatalf("Raise: %v", err)
	}

	// Events are queued until processed.
	if len(*received) != 0 {
		t.Fatalf("expected no events before Flush, got %d", len(*received))
	}
	b.Flush()

	if len(*received) != 1 {
		t.Fatalf("expected 1 event, got %d", len(*received))
	}
	got := (*received)[0]
	if got.Type != bough.EventClick || got.Entity != e {
		t.Errorf("event: %+v", got)
	}
	if got.NodeID != "ok-btn" || got.Name != "ok" {
		t.Errorf("identity: %q %q", got.NodeID, got.Name)
	}
	if got.X != 3 || got.Y != 4 || got.ScreenX != 13 || got.ScreenY != 24 {
		t.Errorf("position: (%v,%v) screen (%v,%v)", got.X, got.Y, got.ScreenX, got.ScreenY)
	}
}

func TestBridge_UnboundTypesIgnored(t *testing.T) {
	world := donburi.NewWorld()
	b := NewBridge(world)
	received := collect(world)

	n := bough.NewView("v")
	b.Bind(n, bough.EventClick)
	_ = n.Raise(bough.Event{Type: bough.EventPointerDown})
	b.Flush()

	if len(*received) != 0 {
		t.Errorf("expected 0 events, got %d", len(*received))
	}
}

func TestBridge_DefaultEvents(t *testing.T) {
	world := donburi.NewWorld()
	b := NewBridge(world)
	received := collect(world)

	n := bough.NewTextField("field")
	b.Bind(n)
	for _, typ := range DefaultEvents {
		if !n.HasListeners(typ) {
			t.Errorf("no listener for %s", typ)
		}
	}
	_ = n.Raise(bough.Event{Type: bough.EventGotFocus})
	b.Flush()
	if len(*received) != 1 || (*received)[0].Type != bough.EventGotFocus {
		t.Errorf("received %+v", *received)
	}
}

func TestBridge_BindTwiceReturnsSameEntity(t *testing.T) {
	world := donburi.NewWorld()
	b := NewBridge(world)

	n := bough.NewView("v")
	e1 := b.Bind(n, bough.EventClick)
	e2 := b.Bind(n, bough.EventClick)
	if e1 != e2 {
		t.Errorf("entities differ: %v vs %v", e1, e2)
	}
	if b.Len() != 1 {
		t.Errorf("Len = %d, want 1", b.Len())
	}
	if got, ok := b.Entity(n); !ok || got != e1 {
		t.Errorf("Entity = %v, %v", got, ok)
	}
	if b.Node(e1) != n {
		t.Error("Node should return the bound node")
	}
}

func TestBridge_Unbind(t *testing.T) {
	world := donburi.NewWorld()
	b := NewBridge(world)
	received := collect(world)

	n := bough.NewView("v")
	e := b.Bind(n, bough.EventClick)
	b.Unbind(n)

	if n.HasListeners(bough.EventClick) {
		t.Error("listener should be removed")
	}
	if world.Valid(e) {
		t.Error("entity should be removed")
	}
	if b.Node(e) != nil {
		t.Error("Node should be nil for a removed entity")
	}
	if _, ok := b.Entity(n); ok {
		t.Error("Entity should report unbound")
	}
	_ = n.Raise(bough.Event{Type: bough.EventClick})
	b.Flush()
	if len(*received) != 0 {
		t.Errorf("expected 0 events, got %d", len(*received))
	}

	// Unbinding twice is a no-op.
	b.Unbind(n)
}

func TestBridge_AttachFlushesEachTick(t *testing.T) {
	world := donburi.NewWorld()
	b := NewBridge(world)
	received := collect(world)

	root := bough.NewView("root")
	root.SetBounds(bough.NewRect(0, 0, 100, 100))
	btn := bough.NewButton("btn", "Go")
	btn.SetBounds(bough.NewRect(10, 10, 40, 20))
	root.AddChild(btn)

	d, err := bough.NewDriver(raster.NewCanvas(100, 100), root, bough.DriverConfig{})
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	b.Bind(btn, bough.EventClick)
	b.Attach(d)
	d.Start()

	d.InjectClick(20, 15)
	d.Tick()

	if len(*received) != 1 {
		t.Fatalf("expected 1 event after tick, got %d", len(*received))
	}
	got := (*received)[0]
	if got.X != 10 || got.Y != 5 {
		t.Errorf("local position: (%v,%v), want (10,5)", got.X, got.Y)
	}
}
