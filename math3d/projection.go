package math3d

import (
	"fmt"
	"math"
)

// Handedness selects the coordinate system a projection is built for.
type Handedness uint8

const (
	RightHanded Handedness = iota // camera looks down -Z; clip w = -z
	LeftHanded                    // camera looks down +Z; clip w = z
)

// DepthRange selects the normalized device depth range.
type DepthRange uint8

const (
	DepthNegativeOneToOne DepthRange = iota // OpenGL-style [-1, 1]
	DepthZeroToOne                          // Direct3D/Vulkan-style [0, 1]
)

// String returns the config name of h.
func (h Handedness) String() string {
	switch h {
	case RightHanded:
		return "right"
	case LeftHanded:
		return "left"
	default:
		return fmt.Sprintf("Handedness(%d)", uint8(h))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (h Handedness) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts "right" and
// "left".
func (h *Handedness) UnmarshalText(text []byte) error {
	switch string(text) {
	case "right", "right-handed":
		*h = RightHanded
	case "left", "left-handed":
		*h = LeftHanded
	default:
		return fmt.Errorf("unknown handedness %q", text)
	}
	return nil
}

// String returns the config name of d.
func (d DepthRange) String() string {
	switch d {
	case DepthNegativeOneToOne:
		return "negative-one-to-one"
	case DepthZeroToOne:
		return "zero-to-one"
	default:
		return fmt.Sprintf("DepthRange(%d)", uint8(d))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d DepthRange) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts
// "negative-one-to-one" and "zero-to-one".
func (d *DepthRange) UnmarshalText(text []byte) error {
	switch string(text) {
	case "negative-one-to-one", "-1..1":
		*d = DepthNegativeOneToOne
	case "zero-to-one", "0..1":
		*d = DepthZeroToOne
	default:
		return fmt.Errorf("unknown depth range %q", text)
	}
	return nil
}

// MakeProjection returns a perspective projection matrix.
//
// aspect is width/height and fovy the vertical field of view in radians.
// All four variants share the layout
//
//	| n/r  0    0  0 |
//	| 0    n/b  0  0 |
//	| 0    0    A  B |
//	| 0    0    s  0 |
//
// where n/r = 1/(aspect*tan(fovy/2)), n/b = 1/tan(fovy/2), s is -1 for
// right-handed and +1 for left-handed, and A, B are:
//
//	right, [-1,1]:  A = (f+n)/(n-f)   B = 2fn/(n-f)
//	right, [0,1]:   A = f/(n-f)       B = fn/(n-f)
//	left,  [-1,1]:  A = (f+n)/(f-n)   B = -2fn/(f-n)
//	left,  [0,1]:   A = f/(f-n)       B = -fn/(f-n)
//
// A zero aspect or fovy divides by zero; callers must avoid both.
func MakeProjection[T Float](aspect, fovy, near, far T, h Handedness, d DepthRange) Mat4[T] {
	tanHalf := T(math.Tan(float64(fovy) / 2))

	var a, b, s T
	switch h {
	case LeftHanded:
		s = 1
		if d == DepthZeroToOne {
			a = far / (far - near)
			b = -far * near / (far - near)
		} else {
			a = (far + near) / (far - near)
			b = -2 * far * near / (far - near)
		}
	default:
		s = -1
		if d == DepthZeroToOne {
			a = far / (near - far)
			b = far * near / (near - far)
		} else {
			a = (far + near) / (near - far)
			b = 2 * far * near / (near - far)
		}
	}

	var m Mat4[T]
	m[0].X = 1 / (aspect * tanHalf)
	m[1].Y = 1 / tanHalf
	m[2].Z = a
	m[3].Z = b
	m[2].W = s
	return m
}
