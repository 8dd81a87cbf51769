package math3d

// MakeScale returns a matrix scaling by s along each axis.
func MakeScale[T Float](s Vec3[T]) Mat4[T] {
	m := Identity4[T]()
	m[0].X = s.X
	m[1].Y = s.Y
	m[2].Z = s.Z
	return m
}

// MakeTranslate returns a matrix translating by p.
//
//	| 1  0  0  px |
//	| 0  1  0  py |
//	| 0  0  1  pz |
//	| 0  0  0  1  |
func MakeTranslate[T Float](p Vec3[T]) Mat4[T] {
	m := Identity4[T]()
	m[3].X = p.X
	m[3].Y = p.Y
	m[3].Z = p.Z
	return m
}

// MakeRotateX returns a rotation of angle radians around the X axis.
//
//	| 1  0     0     0 |
//	| 0  cos  -sin   0 |
//	| 0  sin   cos   0 |
//	| 0  0     0     1 |
func MakeRotateX[T Float](angle T) Mat4[T] {
	sin, cos := sincos(angle)
	m := Identity4[T]()
	m[1].Y, m[2].Y = cos, -sin
	m[1].Z, m[2].Z = sin, cos
	return m
}

// MakeRotateY returns a rotation of angle radians around the Y axis.
//
//	|  cos  0  sin  0 |
//	|  0    1  0    0 |
//	| -sin  0  cos  0 |
//	|  0    0  0    1 |
func MakeRotateY[T Float](angle T) Mat4[T] {
	sin, cos := sincos(angle)
	m := Identity4[T]()
	m[0].X, m[2].X = cos, sin
	m[0].Z, m[2].Z = -sin, cos
	return m
}

// MakeRotateZ returns a rotation of angle radians around the Z axis.
//
//	| cos  -sin  0  0 |
//	| sin   cos  0  0 |
//	| 0     0    1  0 |
//	| 0     0    0  1 |
func MakeRotateZ[T Float](angle T) Mat4[T] {
	sin, cos := sincos(angle)
	m := Identity4[T]()
	m[0].X, m[1].X = cos, -sin
	m[0].Y, m[1].Y = sin, cos
	return m
}

// MakeWorldMatrix composes the local-to-world transform of an entity.
//
// Composition order is fixed:
//
//	World = Translate * RotateY * RotateX * RotateZ * Scale
//
// so a vertex is scaled first, then rotated around Z, X and Y, and finally
// translated.
func MakeWorldMatrix[T Float](scale, rotation, position Vec3[T]) Mat4[T] {
	return MakeTranslate(position).
		Mul(MakeRotateY(rotation.Y)).
		Mul(MakeRotateX(rotation.X)).
		Mul(MakeRotateZ(rotation.Z)).
		Mul(MakeScale(scale))
}
