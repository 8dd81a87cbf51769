package softwillow

import "fmt"

// Entity is one drawable object: a mesh, its transform, and an optional
// per-frame update hook.
type Entity struct {
	Name      string
	Mesh      *Mesh
	Transform Transform
	Updater   TransformUpdater
}

// NewEntity creates an entity at the origin with unit scale.
func NewEntity(name string, mesh *Mesh) *Entity {
	return &Entity{Name: name, Mesh: mesh, Transform: NewTransform()}
}

// Scene is the ordered collection of entities the renderer draws.
type Scene struct {
	entities []*Entity
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add validates e's mesh and appends it. Entities are updated and drawn in
// insertion order.
func (s *Scene) Add(e *Entity) error {
	if e == nil {
		return fmt.Errorf("add entity: nil entity")
	}
	if e.Mesh == nil {
		e.Mesh = &Mesh{}
	}
	if err := e.Mesh.Validate(); err != nil {
		return fmt.Errorf("add entity %q: %w", e.Name, err)
	}
	s.entities = append(s.entities, e)
	return nil
}

// Entities returns the scene's entities. The returned slice MUST NOT be
// mutated.
func (s *Scene) Entities() []*Entity {
	return s.entities
}

// Len returns the number of entities.
func (s *Scene) Len() int {
	return len(s.entities)
}

// Update runs every entity's updater, in entity order.
func (s *Scene) Update(dt float32) {
	for _, e := range s.entities {
		if e.Updater != nil {
			e.Updater.UpdateTransform(&e.Transform, dt)
		}
	}
}
