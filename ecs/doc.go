// Package ecs bridges bough node events into a Donburi world.
//
// A [Bridge] binds nodes to entities and publishes the events those nodes
// raise as [NodeEvent] values on [NodeEventType]. Systems subscribe to the
// event type and call ProcessEvents once per frame; [Bridge.Attach] does that
// at the end of every driver tick.
//
// Usage:
//
//	world := donburi.NewWorld()
//	bridge := ecs.NewBridge(world)
//	entity := bridge.Bind(button, bough.EventClick)
//	bridge.Attach(driver)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
