// Package ecs provides ECS adapters for willow-aml.
package ecs

import (
	"image/color"

	aml "github.com/phanxgames/willow-aml"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Placement is what the applier writes onto an animated entity.
type Placement struct {
	Transform aml.Transform
	Color     color.NRGBA
	// Enabled is true while the entity is in transform mode. Systems
	// should draw from Transform while it is set and from Bounds otherwise.
	Enabled bool
}

// Bounds holds an entity's own placement. It is read at bind time and
// receives the final position and size when the transform is released.
var Bounds = donburi.NewComponentType[aml.Rect]()

// PlacementComponent is added to an entity the first time a frame is
// applied to it.
var PlacementComponent = donburi.NewComponentType[Placement]()

// CompletedEvent is published when a binding created with OnComplete
// finishes its animation.
type CompletedEvent struct {
	Entity donburi.Entity
	Data   any
}

// CompletedEventType is the Donburi event type for animation completions.
// Events are queued and delivered by ProcessEvents.
var CompletedEventType = events.NewEventType[CompletedEvent]()

// Target adapts an entity to aml.Target. An entity removed from its world
// counts as disposed.
type Target struct {
	world  donburi.World
	entity donburi.Entity
}

// NewTarget wraps entity. The entity should carry the Bounds component.
func NewTarget(world donburi.World, entity donburi.Entity) *Target {
	return &Target{world: world, entity: entity}
}

// Entity returns the wrapped entity.
func (t *Target) Entity() donburi.Entity {
	return t.entity
}

// Bounds implements aml.Target.
func (t *Target) Bounds() aml.Rect {
	entry, ok := t.entry()
	if !ok || !entry.HasComponent(Bounds) {
		return aml.Rect{}
	}
	return *Bounds.Get(entry)
}

// IsDisposed reports whether the entity is gone.
func (t *Target) IsDisposed() bool {
	return !t.world.Valid(t.entity)
}

func (t *Target) entry() (*donburi.Entry, bool) {
	if !t.world.Valid(t.entity) {
		return nil, false
	}
	return t.world.Entry(t.entity), true
}

type donburiApplier struct{}

// NewDonburiApplier returns an aml.Applier writing Placement components onto
// *Target entities. Other targets are ignored.
func NewDonburiApplier() aml.Applier {
	return donburiApplier{}
}

func (donburiApplier) placement(target aml.Target) *Placement {
	t, ok := target.(*Target)
	if !ok {
		return nil
	}
	entry, ok := t.entry()
	if !ok {
		return nil
	}
	if !entry.HasComponent(PlacementComponent) {
		entry.AddComponent(PlacementComponent)
	}
	return PlacementComponent.Get(entry)
}

func (a donburiApplier) Apply(target aml.Target, tr aml.Transform) {
	if p := a.placement(target); p != nil {
		p.Transform = tr
		p.Enabled = true
	}
}

func (a donburiApplier) ApplyColor(target aml.Target, c color.NRGBA) {
	if p := a.placement(target); p != nil {
		p.Color = c
	}
}

// Release bakes the last position and size into Bounds.
func (a donburiApplier) Release(target aml.Target) {
	p := a.placement(target)
	if p == nil || !p.Enabled {
		return
	}
	p.Enabled = false
	entry, _ := target.(*Target).entry()
	r := aml.Rect{X: p.Transform.X, Y: p.Transform.Y, Width: p.Transform.Width, Height: p.Transform.Height}
	if entry.HasComponent(Bounds) {
		Bounds.SetValue(entry, r)
	}
}

// OnComplete returns a completion callback that publishes a CompletedEvent
// to world for *Target bindings.
func OnComplete(world donburi.World) aml.CompleteFunc {
	return func(data any, target aml.Target) {
		t, ok := target.(*Target)
		if !ok {
			return
		}
		CompletedEventType.Publish(world, CompletedEvent{Entity: t.entity, Data: data})
	}
}
