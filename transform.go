package softwillow

import "github.com/phanxgames/softwillow/math3d"

// Transform places an entity in the world. Rotation holds Euler angles in
// radians.
type Transform struct {
	Position math3d.Float3
	Rotation math3d.Float3
	Scale    math3d.Float3
}

// NewTransform returns a transform at the origin with unit scale.
func NewTransform() Transform {
	return Transform{Scale: math3d.Float3{X: 1, Y: 1, Z: 1}}
}

// WorldMatrix returns Translate * RotateY * RotateX * RotateZ * Scale.
func (t Transform) WorldMatrix() math3d.Float4x4 {
	return math3d.MakeWorldMatrix(t.Scale, t.Rotation, t.Position)
}

// TransformUpdater advances an entity's transform once per frame. dt is the
// time since the previous frame in seconds (zero on the first frame).
type TransformUpdater interface {
	UpdateTransform(t *Transform, dt float32)
}

// TransformUpdaterFunc adapts a function to TransformUpdater.
type TransformUpdaterFunc func(t *Transform, dt float32)

// UpdateTransform calls f(t, dt).
func (f TransformUpdaterFunc) UpdateTransform(t *Transform, dt float32) { f(t, dt) }

// Spin rotates continuously. Rate is in radians per second per axis; Step is
// added once per frame regardless of dt.
type Spin struct {
	Rate math3d.Float3
	Step math3d.Float3
}

// UpdateTransform implements TransformUpdater.
func (s Spin) UpdateTransform(t *Transform, dt float32) {
	t.Rotation = t.Rotation.Add(s.Rate.Scale(dt)).Add(s.Step)
}

// Updaters runs several updaters in order.
type Updaters []TransformUpdater

// UpdateTransform implements TransformUpdater.
func (u Updaters) UpdateTransform(t *Transform, dt float32) {
	for _, up := range u {
		if up != nil {
			up.UpdateTransform(t, dt)
		}
	}
}
