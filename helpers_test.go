package softwillow

import (
	"math"
	"testing"

	"github.com/phanxgames/softwillow/math3d"
)

const testEpsilon = 1e-4

func approxEqual(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

// newTestRenderer builds a square renderer with a 90 degree field of view so
// projected coordinates are easy to compute by hand: at depth d, world x maps
// to screen x = (x/d)*size/2 + size/2.
func newTestRenderer(t *testing.T, size int, opts RenderOptions) *Renderer {
	t.Helper()
	r, err := NewRenderer(RendererConfig{
		Width:      size,
		Height:     size,
		Projection: ProjectionConfig{FovY: math.Pi / 2, Near: 0.1, Far: 100},
		Options:    &opts,
	})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

// captureFrames installs a presenter that copies every presented buffer and
// returns a pointer to the most recent copy.
func captureFrames(r *Renderer) *[]uint32 {
	var last []uint32
	r.SetPresenter(PresenterFunc(func(pixels []uint32, _, _ int) {
		last = append(last[:0], pixels...)
	}))
	return &last
}

// frontTriangle returns a one-triangle mesh at z whose normal points toward
// the camera at the origin (+Z).
func frontTriangle(half, z float32) *Mesh {
	return &Mesh{
		Vertices: []Vertex{
			{Position: math3d.Float3{X: -half, Y: -half, Z: z}, UV: math3d.Float2{X: 0, Y: 1}},
			{Position: math3d.Float3{X: half, Y: -half, Z: z}, UV: math3d.Float2{X: 1, Y: 1}},
			{Position: math3d.Float3{X: 0, Y: half, Z: z}, UV: math3d.Float2{X: 0.5, Y: 0}},
		},
		Indices: []uint32{0, 1, 2},
	}
}

func addEntity(t *testing.T, r *Renderer, name string, m *Mesh) *Entity {
	t.Helper()
	e := NewEntity(name, m)
	if err := r.AddEntity(e); err != nil {
		t.Fatalf("AddEntity(%s): %v", name, err)
	}
	return e
}
