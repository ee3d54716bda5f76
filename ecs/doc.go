// Package ecs lets willow-aml animate entities in a [Donburi] world.
//
// Give each animated entity a [Bounds] component, wrap it with [NewTarget]
// and create the engine with the Donburi applier. Frames land in the
// [PlacementComponent]; completions can be routed into the world as
// [CompletedEvent]s:
//
//	engine := aml.NewEngine(aml.Config{Applier: ecs.NewDonburiApplier()})
//	h, err := engine.Bind(ecs.NewTarget(world, e), "fade", ecs.OnComplete(world), nil)
//
//	// later, in a system
//	ecs.CompletedEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
