package math3d

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec3(t *testing.T, name string, got, want Vec3[float64]) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon || math.Abs(got.Z-want.Z) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3[float64]{1, 2, 3}
	b := Vec3[float64]{4, 5, 6}

	if got := a.Add(b); got != (Vec3[float64]{5, 7, 9}) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != (Vec3[float64]{3, 3, 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Neg(); got != (Vec3[float64]{-1, -2, -3}) {
		t.Errorf("Neg = %v", got)
	}
	if got := a.Scale(2); got != (Vec3[float64]{2, 4, 6}) {
		t.Errorf("Scale = %v", got)
	}
	if got := b.Div(2); got != (Vec3[float64]{2, 2.5, 3}) {
		t.Errorf("Div = %v", got)
	}
}

func TestVecEqualityIsExact(t *testing.T) {
	a := Vec3[float32]{0.1, 0.2, 0.3}
	b := Vec3[float32]{0.1, 0.2, 0.3 + 1e-6}
	if a == b {
		t.Error("vectors differing in the last component compared equal")
	}
	if a != (Float3{0.1, 0.2, 0.3}) {
		t.Error("identical vectors compared unequal")
	}
}

func TestDot(t *testing.T) {
	assertNear(t, "dot", Dot(Vec3[float64]{1, 2, 3}, Vec3[float64]{4, -5, 6}), 12)
	assertNear(t, "dot2", Dot2(Vec2[float64]{1, 2}, Vec2[float64]{3, 4}), 11)
	assertNear(t, "dot4", Dot4(Vec4[float64]{1, 2, 3, 4}, Vec4[float64]{1, 1, 1, 1}), 10)
}

func TestCrossRightHandRule(t *testing.T) {
	x := Vec3[float64]{1, 0, 0}
	y := Vec3[float64]{0, 1, 0}
	assertVec3(t, "x cross y", Cross(x, y), Vec3[float64]{0, 0, 1})
}

func TestCrossAntiCommutative(t *testing.T) {
	pairs := [][2]Vec3[float64]{
		{{1, 2, 3}, {4, 5, 6}},
		{{-1, 0.5, 2}, {3, -7, 0.25}},
		{{0, 0, 0}, {1, 1, 1}},
		{{2, 2, 2}, {2, 2, 2}},
	}
	for _, p := range pairs {
		ab := Cross(p[0], p[1])
		ba := Cross(p[1], p[0])
		assertVec3(t, "a x b + b x a", ab.Add(ba), Vec3[float64]{})
	}
}

func TestCross2(t *testing.T) {
	assertNear(t, "cross2", Cross2(Vec2[float64]{2, 0}, Vec2[float64]{0, 3}), 6)
	assertNear(t, "cross2 swapped", Cross2(Vec2[float64]{0, 3}, Vec2[float64]{2, 0}), -6)
}

func TestNormalizeUnitLength(t *testing.T) {
	for _, v := range []Vec3[float64]{
		{3, 4, 0},
		{1, 1, 1},
		{-0.001, 0.002, 0.0005},
		{1e6, -2e6, 3e6},
	} {
		assertNear(t, "magnitude", Magnitude(Normalize(v)), 1)
	}
	assertNear(t, "magnitude2", Magnitude2(Normalize2(Vec2[float64]{5, -12})), 1)
	assertNear(t, "magnitude4", Magnitude4(Normalize4(Vec4[float64]{1, 2, 3, 4})), 1)
}

func TestNormalizeZeroPropagatesNaN(t *testing.T) {
	n := Normalize(Vec3[float64]{})
	if !math.IsNaN(n.X) || !math.IsNaN(n.Y) || !math.IsNaN(n.Z) {
		t.Errorf("Normalize(0) = %v, want NaN components", n)
	}
}

func TestVec3Rotate(t *testing.T) {
	v := Vec3[float64]{0, 1, 0}
	assertVec3(t, "rotX 90", v.RotateX(math.Pi/2), Vec3[float64]{0, 0, 1})
	assertVec3(t, "rotY 90", Vec3[float64]{0, 0, 1}.RotateY(math.Pi/2), Vec3[float64]{1, 0, 0})
	assertVec3(t, "rotZ 90", Vec3[float64]{1, 0, 0}.RotateZ(math.Pi/2), Vec3[float64]{0, 1, 0})
}

func TestRotateMatchesMatrix(t *testing.T) {
	v := Vec3[float64]{1, -2, 3}
	angle := 0.7
	assertVec3(t, "X", v.RotateX(angle), MakeRotateX(angle).MulPoint(v))
	assertVec3(t, "Y", v.RotateY(angle), MakeRotateY(angle).MulPoint(v))
	assertVec3(t, "Z", v.RotateZ(angle), MakeRotateZ(angle).MulPoint(v))
}
