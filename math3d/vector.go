package math3d

import "math"

// Float is the set of component types vectors and matrices can hold.
type Float interface {
	~float32 | ~float64
}

// Vec2 is a 2 component vector.
type Vec2[T Float] struct {
	X, Y T
}

// Vec3 is a 3 component vector.
type Vec3[T Float] struct {
	X, Y, Z T
}

// Vec4 is a 4 component vector. W is 1 for points and 0 for directions.
type Vec4[T Float] struct {
	X, Y, Z, W T
}

// Single-precision aliases used throughout the renderer.
type (
	Float2 = Vec2[float32]
	Float3 = Vec3[float32]
	Float4 = Vec4[float32]
)

// --- Vec2 ---

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-v.X, -v.Y} }

// Scale returns v * s.
func (v Vec2[T]) Scale(s T) Vec2[T] { return Vec2[T]{v.X * s, v.Y * s} }

// Div returns v / s.
func (v Vec2[T]) Div(s T) Vec2[T] { return Vec2[T]{v.X / s, v.Y / s} }

// --- Vec3 ---

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-v.X, -v.Y, -v.Z} }

// Scale returns v * s.
func (v Vec3[T]) Scale(s T) Vec3[T] { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }

// Div returns v / s.
func (v Vec3[T]) Div(s T) Vec3[T] { return Vec3[T]{v.X / s, v.Y / s, v.Z / s} }

// Vec4 extends v with the given w component.
func (v Vec3[T]) Vec4(w T) Vec4[T] { return Vec4[T]{v.X, v.Y, v.Z, w} }

// RotateX rotates v around the X axis by angle radians.
func (v Vec3[T]) RotateX(angle T) Vec3[T] {
	sin, cos := sincos(angle)
	return Vec3[T]{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}

// RotateY rotates v around the Y axis by angle radians.
func (v Vec3[T]) RotateY(angle T) Vec3[T] {
	sin, cos := sincos(angle)
	return Vec3[T]{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// RotateZ rotates v around the Z axis by angle radians.
func (v Vec3[T]) RotateZ(angle T) Vec3[T] {
	sin, cos := sincos(angle)
	return Vec3[T]{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// --- Vec4 ---

// Add returns v + o.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] { return Vec4[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W} }

// Sub returns v - o.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] { return Vec4[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W} }

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] { return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W} }

// Scale returns v * s.
func (v Vec4[T]) Scale(s T) Vec4[T] { return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// Div returns v / s.
func (v Vec4[T]) Div(s T) Vec4[T] { return Vec4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s} }

// Vec3 drops the w component.
func (v Vec4[T]) Vec3() Vec3[T] { return Vec3[T]{v.X, v.Y, v.Z} }

// --- free functions ---

// Dot returns the dot product of a and b.
func Dot[T Float](a, b Vec3[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Dot2 returns the dot product of two 2D vectors.
func Dot2[T Float](a, b Vec2[T]) T {
	return a.X*b.X + a.Y*b.Y
}

// Dot4 returns the dot product of two 4D vectors.
func Dot4[T Float](a, b Vec4[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Cross returns a x b using the right-hand rule. The formula does not depend
// on the configured handedness; only the projection builder does.
func Cross[T Float](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Cross2 returns the z component of the 3D cross product of a and b, i.e. the
// signed area of the parallelogram they span.
func Cross2[T Float](a, b Vec2[T]) T {
	return a.X*b.Y - a.Y*b.X
}

// Magnitude returns the euclidean length of v.
func Magnitude[T Float](v Vec3[T]) T {
	return T(math.Sqrt(float64(Dot(v, v))))
}

// Magnitude2 returns the euclidean length of a 2D vector.
func Magnitude2[T Float](v Vec2[T]) T {
	return T(math.Sqrt(float64(Dot2(v, v))))
}

// Magnitude4 returns the euclidean length of a 4D vector.
func Magnitude4[T Float](v Vec4[T]) T {
	return T(math.Sqrt(float64(Dot4(v, v))))
}

// Normalize returns v scaled to unit length. A zero vector yields NaN
// components.
func Normalize[T Float](v Vec3[T]) Vec3[T] {
	return v.Div(Magnitude(v))
}

// Normalize2 returns a 2D vector scaled to unit length.
func Normalize2[T Float](v Vec2[T]) Vec2[T] {
	return v.Div(Magnitude2(v))
}

// Normalize4 returns a 4D vector scaled to unit length.
func Normalize4[T Float](v Vec4[T]) Vec4[T] {
	return v.Div(Magnitude4(v))
}

func sincos[T Float](angle T) (sin, cos T) {
	s, c := math.Sincos(float64(angle))
	return T(s), T(c)
}
