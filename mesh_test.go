package softwillow

import (
	"errors"
	"testing"

	"github.com/phanxgames/softwillow/math3d"
)

func TestMeshValidate(t *testing.T) {
	verts := make([]Vertex, 3)
	cases := []struct {
		name string
		mesh Mesh
		ok   bool
	}{
		{"empty", Mesh{}, true},
		{"one triangle", Mesh{Vertices: verts, Indices: []uint32{0, 1, 2}}, true},
		{"partial triangle", Mesh{Vertices: verts, Indices: []uint32{0, 1, 2, 0}}, false},
		{"index out of range", Mesh{Vertices: verts, Indices: []uint32{0, 1, 3}}, false},
		{"bad texture", Mesh{Texture: &Texture{Width: 2, Height: 2, Texels: make([]uint32, 1)}}, false},
	}
	for _, tc := range cases {
		err := tc.mesh.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidMesh) {
			t.Errorf("%s: expected ErrInvalidMesh, got %v", tc.name, err)
		}
	}
}

func TestMeshTriangleCount(t *testing.T) {
	m := Mesh{Indices: make([]uint32, 9)}
	if m.TriangleCount() != 3 {
		t.Errorf("expected 3 triangles, got %d", m.TriangleCount())
	}
}

func TestVertexEqualIgnoresUV(t *testing.T) {
	a := Vertex{Position: math3d.Float3{X: 1, Y: 2, Z: 3}, UV: math3d.Float2{X: 0}}
	b := Vertex{Position: math3d.Float3{X: 1, Y: 2, Z: 3}, UV: math3d.Float2{X: 1}}
	c := Vertex{Position: math3d.Float3{X: 1, Y: 2, Z: 4}}
	if !a.Equal(b) {
		t.Error("vertices with the same position should be equal")
	}
	if a.Equal(c) {
		t.Error("vertices with different positions should differ")
	}
}

func TestMeshBuilderDedup(t *testing.T) {
	p0 := Vertex{Position: math3d.Float3{X: 0, Y: 0}, UV: math3d.Float2{X: 0, Y: 0}}
	p1 := Vertex{Position: math3d.Float3{X: 1, Y: 0}, UV: math3d.Float2{X: 1, Y: 0}}
	p2 := Vertex{Position: math3d.Float3{X: 1, Y: 1}, UV: math3d.Float2{X: 1, Y: 1}}
	p3 := Vertex{Position: math3d.Float3{X: 0, Y: 1}, UV: math3d.Float2{X: 0, Y: 1}}

	// Same position as p2 with another UV: deduplicated, first UV kept.
	p2b := p2
	p2b.UV = math3d.Float2{X: 0.5, Y: 0.5}

	b := NewMeshBuilder()
	b.AddTriangle(p0, p1, p2)
	b.AddTriangle(p0, p2b, p3)
	tex, _ := NewTexture(1, 1, []uint32{ColorWhite})
	b.SetTexture(tex)
	m := b.Build()

	if len(m.Vertices) != 4 {
		t.Fatalf("expected 4 unique vertices, got %d", len(m.Vertices))
	}
	want := []uint32{0, 1, 2, 0, 2, 3}
	for i, idx := range want {
		if m.Indices[i] != idx {
			t.Errorf("index %d = %d, want %d", i, m.Indices[i], idx)
		}
	}
	if m.Vertices[2].UV != p2.UV {
		t.Errorf("expected first UV %v to win, got %v", p2.UV, m.Vertices[2].UV)
	}
	if m.Texture != tex {
		t.Error("texture not carried into the mesh")
	}
	if err := m.Validate(); err != nil {
		t.Errorf("built mesh invalid: %v", err)
	}
}
