package math3d

// Mat3 is a column-major 3x3 matrix: m[c] is column c.
//
//	| m[0].X  m[1].X  m[2].X |
//	| m[0].Y  m[1].Y  m[2].Y |
//	| m[0].Z  m[1].Z  m[2].Z |
type Mat3[T Float] [3]Vec3[T]

// Mat4 is a column-major 4x4 matrix: m[c] is column c.
//
//	| m[0].X  m[1].X  m[2].X  m[3].X |
//	| m[0].Y  m[1].Y  m[2].Y  m[3].Y |
//	| m[0].Z  m[1].Z  m[2].Z  m[3].Z |
//	| m[0].W  m[1].W  m[2].W  m[3].W |
type Mat4[T Float] [4]Vec4[T]

// Single-precision matrix aliases.
type (
	Float3x3 = Mat3[float32]
	Float4x4 = Mat4[float32]
)

// Identity3 returns the 3x3 identity matrix.
func Identity3[T Float]() Mat3[T] {
	return Mat3[T]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4[T Float]() Mat4[T] {
	return Mat4[T]{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// --- Mat3 ---

// Column returns column c.
func (m Mat3[T]) Column(c int) Vec3[T] { return m[c] }

// Add returns the component-wise sum m + n.
func (m Mat3[T]) Add(n Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Add(n[0]), m[1].Add(n[1]), m[2].Add(n[2])}
}

// Sub returns the component-wise difference m - n.
func (m Mat3[T]) Sub(n Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Sub(n[0]), m[1].Sub(n[1]), m[2].Sub(n[2])}
}

// Scale multiplies every component by s.
func (m Mat3[T]) Scale(s T) Mat3[T] {
	return Mat3[T]{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s)}
}

// Div divides every component by s.
func (m Mat3[T]) Div(s T) Mat3[T] {
	return Mat3[T]{m[0].Div(s), m[1].Div(s), m[2].Div(s)}
}

// MulVec returns m * v.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: m[0].X*v.X + m[1].X*v.Y + m[2].X*v.Z,
		Y: m[0].Y*v.X + m[1].Y*v.Y + m[2].Y*v.Z,
		Z: m[0].Z*v.X + m[1].Z*v.Y + m[2].Z*v.Z,
	}
}

// Mul returns the matrix product m * n. Column c of the result is m applied
// to column c of n.
func (m Mat3[T]) Mul(n Mat3[T]) Mat3[T] {
	return Mat3[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2])}
}

// Transpose swaps rows and columns.
func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{
		{m[0].X, m[1].X, m[2].X},
		{m[0].Y, m[1].Y, m[2].Y},
		{m[0].Z, m[1].Z, m[2].Z},
	}
}

// --- Mat4 ---

// Column returns column c.
func (m Mat4[T]) Column(c int) Vec4[T] { return m[c] }

// Add returns the component-wise sum m + n.
func (m Mat4[T]) Add(n Mat4[T]) Mat4[T] {
	return Mat4[T]{m[0].Add(n[0]), m[1].Add(n[1]), m[2].Add(n[2]), m[3].Add(n[3])}
}

// Sub returns the component-wise difference m - n.
func (m Mat4[T]) Sub(n Mat4[T]) Mat4[T] {
	return Mat4[T]{m[0].Sub(n[0]), m[1].Sub(n[1]), m[2].Sub(n[2]), m[3].Sub(n[3])}
}

// Scale multiplies every component by s.
func (m Mat4[T]) Scale(s T) Mat4[T] {
	return Mat4[T]{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s), m[3].Scale(s)}
}

// Div divides every component by s.
func (m Mat4[T]) Div(s T) Mat4[T] {
	return Mat4[T]{m[0].Div(s), m[1].Div(s), m[2].Div(s), m[3].Div(s)}
}

// MulVec returns m * v.
func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: m[0].X*v.X + m[1].X*v.Y + m[2].X*v.Z + m[3].X*v.W,
		Y: m[0].Y*v.X + m[1].Y*v.Y + m[2].Y*v.Z + m[3].Y*v.W,
		Z: m[0].Z*v.X + m[1].Z*v.Y + m[2].Z*v.Z + m[3].Z*v.W,
		W: m[0].W*v.X + m[1].W*v.Y + m[2].W*v.Z + m[3].W*v.W,
	}
}

// Mul returns the matrix product m * n. Column c of the result is m applied
// to column c of n.
func (m Mat4[T]) Mul(n Mat4[T]) Mat4[T] {
	return Mat4[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2]), m.MulVec(n[3])}
}

// MulPoint transforms p as a point (w = 1) and drops the resulting w.
func (m Mat4[T]) MulPoint(p Vec3[T]) Vec3[T] {
	return m.MulVec(p.Vec4(1)).Vec3()
}

// Transpose swaps rows and columns.
func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{
		{m[0].X, m[1].X, m[2].X, m[3].X},
		{m[0].Y, m[1].Y, m[2].Y, m[3].Y},
		{m[0].Z, m[1].Z, m[2].Z, m[3].Z},
		{m[0].W, m[1].W, m[2].W, m[3].W},
	}
}
