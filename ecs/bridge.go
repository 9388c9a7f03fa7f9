package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/bough"
)

// NodeEvent is the Donburi payload for a bough event raised on a bound node.
type NodeEvent struct {
	Type   bough.EventType
	Entity donburi.Entity
	NodeID string
	Name   string
	// X and Y are node-local; ScreenX and ScreenY are surface coordinates.
	X, Y             float64
	ScreenX, ScreenY float64
	Key              string
}

// NodeEventType is the Donburi event type bridged events are published on.
var NodeEventType = events.NewEventType[NodeEvent]()

// NodeRef is the component linking an entity to its node.
type NodeRef struct {
	Node *bough.Node
}

// NodeComponent stores a NodeRef on every entity created by Bind.
var NodeComponent = donburi.NewComponentType[NodeRef]()

// DefaultEvents are forwarded when Bind is called without event types.
var DefaultEvents = []bough.EventType{
	bough.EventClick, bough.EventDoubleClick, bough.EventGotFocus, bough.EventLostFocus,
}

type binding struct {
	entity  donburi.Entity
	handles []bough.CallbackHandle
}

// Bridge forwards events from bound nodes into a world. Like the tree it
// serves, a Bridge is used from one goroutine.
type Bridge struct {
	world    donburi.World
	bindings map[*bough.Node]*binding
}

// NewBridge creates a bridge publishing into world.
func NewBridge(world donburi.World) *Bridge {
	return &Bridge{world: world, bindings: make(map[*bough.Node]*binding)}
}

// World returns the bridged world.
func (b *Bridge) World() donburi.World {
	return b.world
}

// Bind creates an entity carrying a NodeRef for n, registers listeners for
// the given event types (DefaultEvents when none are given) and returns the
// entity. Binding an already bound node returns its existing entity.
func (b *Bridge) Bind(n *bough.Node, types ...bough.EventType) donburi.Entity {
	if bd, ok := b.bindings[n]; ok {
		return bd.entity
	}
	if len(types) == 0 {
		types = DefaultEvents
	}
	e := b.world.Create(NodeComponent)
	NodeComponent.SetValue(b.world.Entry(e), NodeRef{Node: n})

	bd := &binding{entity: e}
	for _, typ := range types {
		bd.handles = append(bd.handles, n.On(typ, func(ev bough.Event) {
			b.publish(e, n, ev)
		}))
	}
	b.bindings[n] = bd
	return e
}

func (b *Bridge) publish(e donburi.Entity, n *bough.Node, ev bough.Event) {
	NodeEventType.Publish(b.world, NodeEvent{
		Type:    ev.Type,
		Entity:  e,
		NodeID:  n.ID,
		Name:    n.Name,
		X:       ev.Pointer.X,
		Y:       ev.Pointer.Y,
		ScreenX: ev.Pointer.ScreenX,
		ScreenY: ev.Pointer.ScreenY,
		Key:     ev.Key.Key,
	})
}

// Entity returns the entity bound to n.
func (b *Bridge) Entity(n *bough.Node) (donburi.Entity, bool) {
	bd, ok := b.bindings[n]
	if !ok {
		return 0, false
	}
	return bd.entity, true
}

// Node returns the node an entity was bound to, or nil.
func (b *Bridge) Node(e donburi.Entity) *bough.Node {
	if !b.world.Valid(e) {
		return nil
	}
	entry := b.world.Entry(e)
	if !entry.HasComponent(NodeComponent) {
		return nil
	}
	return NodeComponent.Get(entry).Node
}

// Unbind removes n's listeners and its entity.
func (b *Bridge) Unbind(n *bough.Node) {
	bd, ok := b.bindings[n]
	if !ok {
		return
	}
	for _, h := range bd.handles {
		h.Remove()
	}
	if b.world.Valid(bd.entity) {
		b.world.Remove(bd.entity)
	}
	delete(b.bindings, n)
}

// Len returns the number of bound nodes.
func (b *Bridge) Len() int {
	return len(b.bindings)
}

// Flush delivers queued events to subscribers.
func (b *Bridge) Flush() {
	NodeEventType.ProcessEvents(b.world)
}

// Attach flushes the bridge at the end of every tick of d.
func (b *Bridge) Attach(d *bough.Driver) {
	d.AfterTick(func(bough.TickStats) { b.Flush() })
}
