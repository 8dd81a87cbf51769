package ecs

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/phanxgames/softwillow"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// ModeEventType is the Donburi event type for softwillow mode events.
// Subscribe to this in your ECS systems to react to render-flag toggles and
// quit requests.
var ModeEventType = events.NewEventType[softwillow.ModeEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Mode events are published to ModeEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) softwillow.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event softwillow.ModeEvent) {
	ModeEventType.Publish(s.world, event)
}

// Drawable attaches a renderable entity to a Donburi entry. Order is the
// spawn sequence; Populate adds drawables in ascending Order.
type Drawable struct {
	Entity *softwillow.Entity
	Order  int
}

// DrawableComponent is the component type holding a Drawable.
var DrawableComponent = donburi.NewComponentType[Drawable]()

var drawables = donburi.NewQuery(filter.Contains(DrawableComponent))

// Spawn creates a world entry carrying e.
func Spawn(world donburi.World, e *softwillow.Entity) donburi.Entity {
	entity := world.Create(DrawableComponent)
	DrawableComponent.SetValue(world.Entry(entity), Drawable{
		Entity: e,
		Order:  drawables.Count(world) - 1,
	})
	return entity
}

// CollectEntities returns every spawned entity in spawn order.
func CollectEntities(world donburi.World) []*softwillow.Entity {
	var ds []Drawable
	drawables.Each(world, func(entry *donburi.Entry) {
		ds = append(ds, *DrawableComponent.Get(entry))
	})
	slices.SortStableFunc(ds, func(a, b Drawable) int { return cmp.Compare(a.Order, b.Order) })

	out := make([]*softwillow.Entity, 0, len(ds))
	for _, d := range ds {
		if d.Entity != nil {
			out = append(out, d.Entity)
		}
	}
	return out
}

// Populate adds every spawned entity to r. It stops at the first entity the
// renderer rejects.
func Populate(world donburi.World, r *softwillow.Renderer) error {
	for _, e := range CollectEntities(world) {
		if err := r.AddEntity(e); err != nil {
			return fmt.Errorf("populate: %w", err)
		}
	}
	return nil
}
