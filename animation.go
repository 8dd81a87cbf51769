package softwillow

import (
	"github.com/phanxgames/softwillow/math3d"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenUpdater is a TransformUpdater that eases one Transform vector
// (position, rotation or scale) between two values. Create one with
// TweenPosition, TweenRotation or TweenScale and assign it to
// Entity.Updater.
//
// With Loop set the tween restarts when finished; Yoyo additionally swaps
// the endpoints on every restart.
type TweenUpdater struct {
	tweens   [3]*gween.Tween
	field    func(*Transform) *math3d.Float3
	from, to math3d.Float3
	duration float32
	fn       ease.TweenFunc

	Loop bool
	Yoyo bool
	Done bool
}

func newTweenUpdater(field func(*Transform) *math3d.Float3, from, to math3d.Float3, duration float32, fn ease.TweenFunc) *TweenUpdater {
	if fn == nil {
		fn = ease.Linear
	}
	u := &TweenUpdater{field: field, from: from, to: to, duration: duration, fn: fn}
	u.restart()
	return u
}

func (u *TweenUpdater) restart() {
	u.tweens[0] = gween.New(u.from.X, u.to.X, u.duration, u.fn)
	u.tweens[1] = gween.New(u.from.Y, u.to.Y, u.duration, u.fn)
	u.tweens[2] = gween.New(u.from.Z, u.to.Z, u.duration, u.fn)
}

// UpdateTransform advances the tween by dt seconds and writes the eased
// value into the target field.
func (u *TweenUpdater) UpdateTransform(t *Transform, dt float32) {
	if u.Done {
		return
	}

	x, doneX := u.tweens[0].Update(dt)
	y, doneY := u.tweens[1].Update(dt)
	z, doneZ := u.tweens[2].Update(dt)
	*u.field(t) = math3d.Float3{X: x, Y: y, Z: z}

	if !(doneX && doneY && doneZ) {
		return
	}
	if !u.Loop {
		u.Done = true
		return
	}
	if u.Yoyo {
		u.from, u.to = u.to, u.from
	}
	u.restart()
}

// TweenPosition eases Transform.Position from -> to over duration seconds.
func TweenPosition(from, to math3d.Float3, duration float32, fn ease.TweenFunc) *TweenUpdater {
	return newTweenUpdater(func(t *Transform) *math3d.Float3 { return &t.Position }, from, to, duration, fn)
}

// TweenRotation eases Transform.Rotation from -> to over duration seconds.
func TweenRotation(from, to math3d.Float3, duration float32, fn ease.TweenFunc) *TweenUpdater {
	return newTweenUpdater(func(t *Transform) *math3d.Float3 { return &t.Rotation }, from, to, duration, fn)
}

// TweenScale eases Transform.Scale from -> to over duration seconds.
func TweenScale(from, to math3d.Float3, duration float32, fn ease.TweenFunc) *TweenUpdater {
	return newTweenUpdater(func(t *Transform) *math3d.Float3 { return &t.Scale }, from, to, duration, fn)
}
