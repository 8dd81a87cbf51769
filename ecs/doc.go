// Package ecs provides ECS adapters for softwillow.
//
// [NewDonburiStore] bridges the renderer's handled input events (mode
// toggles and quit) into a [Donburi] world as typed events. Subscribe to
// [ModeEventType] in your ECS systems to receive them.
//
// Scene content can also live in the world: [Spawn] stores a
// softwillow.Entity as a [Drawable] component and [Populate] hands every
// drawable to a renderer in spawn order.
//
// Usage:
//
//	world := donburi.NewWorld()
//	ecs.Spawn(world, softwillow.NewEntity("cube", softwillow.NewCubeMesh(1)))
//	if err := ecs.Populate(world, renderer); err != nil {
//		log.Fatal(err)
//	}
//	renderer.SetEventStore(ecs.NewDonburiStore(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
